package directory

import (
	"hash/fnv"
	"strconv"

	"github.com/atinyakov/staffdeck/internal/models"
)

// departments is the dashboard's department vocabulary. Records arriving
// with a department outside this set are reassigned deterministically.
var departments = []string{
	"Engineering", "Sales", "Marketing", "Product", "Design", "HR", "Finance",
}

// Enhance fills in the derived fields an upstream record lacks: a
// performance block and a normalized department. The derivation is seeded
// by the employee id, so the same record always yields the same figures
// across fetches.
func Enhance(e models.Employee) models.Employee {
	seed := recordSeed(e.ID)

	if e.Performance == nil {
		e.Performance = &models.Performance{
			Rating:         int(seed%5) + 1,
			Projects:       int(seed/5%10) + 1,
			CompletionRate: int(seed/50%40) + 60,
		}
	}
	if !knownDepartment(e.Company.Department) {
		e.Company.Department = departments[seed%uint64(len(departments))]
	}
	if e.Image == "" {
		e.Image = portraitURL(e.ID)
	}
	return e
}

func knownDepartment(dept string) bool {
	for _, d := range departments {
		if d == dept {
			return true
		}
	}
	return false
}

// recordSeed hashes the employee id into a stable seed for field synthesis.
func recordSeed(id int) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strconv.Itoa(id)))
	return h.Sum64()
}

// portraitURL derives a stable portrait image for records created without
// one.
func portraitURL(id int) string {
	seed := recordSeed(id)
	gender := "men"
	if seed%2 == 0 {
		gender = "women"
	}
	return "https://randomuser.me/api/portraits/" + gender + "/" + strconv.FormatUint(seed%100, 10) + ".jpg"
}

// Departments returns the department vocabulary used for employee creation.
func Departments() []string {
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}
