package service

import (
	"math"
	"sort"

	"github.com/atinyakov/staffdeck/internal/models"
)

// Summary is the aggregate view over the employee collection and the
// bookmark set.
type Summary struct {
	// DepartmentStats holds one entry per non-empty department name, sorted
	// by name; employees without a department appear in no entry but still
	// count toward the overall figures. Unrated employees contribute a zero
	// rating.
	DepartmentStats []models.DepartmentStat
	TotalEmployees  int
	TotalBookmarks  int
	// OverallAverageRating averages across all employees; 0 for an empty
	// collection.
	OverallAverageRating float64
	// BookmarkedAverageRating averages across the bookmarked employees
	// only; 0 when nothing is bookmarked.
	BookmarkedAverageRating float64
	// AverageRating is the headline figure: the bookmarked average when
	// bookmarks exist, else the overall average.
	AverageRating float64
}

// Summarize computes the analytics view. It is a pure function of its
// arguments.
func Summarize(employees, bookmarked []models.Employee) Summary {
	byDept := make(map[string]*models.DepartmentStat)
	totals := make(map[string]int)
	for _, e := range employees {
		dept := e.Company.Department
		if dept == "" {
			continue
		}
		stat, ok := byDept[dept]
		if !ok {
			stat = &models.DepartmentStat{Name: dept}
			byDept[dept] = stat
		}
		stat.EmployeeCount++
		totals[dept] += e.Rating()
	}

	stats := make([]models.DepartmentStat, 0, len(byDept))
	for dept, stat := range byDept {
		stat.AverageRating = round1(float64(totals[dept]) / float64(stat.EmployeeCount))
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })

	overall := averageRating(employees)
	marked := averageRating(bookmarked)

	headline := overall
	if len(bookmarked) > 0 {
		headline = marked
	}

	return Summary{
		DepartmentStats:         stats,
		TotalEmployees:          len(employees),
		TotalBookmarks:          len(bookmarked),
		OverallAverageRating:    overall,
		BookmarkedAverageRating: marked,
		AverageRating:           headline,
	}
}

// averageRating returns the rounded mean rating of the input, 0 when the
// input is empty.
func averageRating(employees []models.Employee) float64 {
	if len(employees) == 0 {
		return 0
	}
	sum := 0
	for _, e := range employees {
		sum += e.Rating()
	}
	return round1(float64(sum) / float64(len(employees)))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
