package service

import (
	"sort"
	"strings"

	"github.com/atinyakov/staffdeck/internal/models"
)

// FilterEngine computes the derived views over the employee collection: the
// stable filtered list and the sorted distinct department list. Both are
// memoized and recomputed only when the collection or the spec changes; the
// source collection is never mutated.
type FilterEngine struct {
	employees []models.Employee
	spec      models.FilterSpec

	filtered      []models.Employee
	departments   []string
	filteredOK    bool
	departmentsOK bool
}

// NewFilterEngine returns an engine with the identity filter applied.
func NewFilterEngine() *FilterEngine {
	return &FilterEngine{spec: models.DefaultFilterSpec()}
}

// SetEmployees replaces the source collection and invalidates both derived
// views.
func (f *FilterEngine) SetEmployees(employees []models.Employee) {
	f.employees = employees
	f.filteredOK = false
	f.departmentsOK = false
}

// SetSpec replaces the filter spec. Setting an equal spec keeps the
// memoized filtered view.
func (f *FilterEngine) SetSpec(spec models.FilterSpec) {
	if spec == f.spec {
		return
	}
	f.spec = spec
	f.filteredOK = false
}

// Spec returns the current filter spec.
func (f *FilterEngine) Spec() models.FilterSpec {
	return f.spec
}

// Filtered returns the employees passing all three predicates, preserving
// the source order.
func (f *FilterEngine) Filtered() []models.Employee {
	if !f.filteredOK {
		f.filtered = Filter(f.employees, f.spec)
		f.filteredOK = true
	}
	return f.filtered
}

// Departments returns the distinct department names of the source
// collection, sorted ascending.
func (f *FilterEngine) Departments() []string {
	if !f.departmentsOK {
		f.departments = Departments(f.employees)
		f.departmentsOK = true
	}
	return f.departments
}

// Filter returns the employees of the input satisfying every predicate of
// spec, in input order. It is a pure function of its arguments.
func Filter(employees []models.Employee, spec models.FilterSpec) []models.Employee {
	search := strings.ToLower(spec.Search)
	out := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if !matchesSearch(e, search) {
			continue
		}
		if spec.Department != models.DepartmentAll && e.Company.Department != spec.Department {
			continue
		}
		if e.Rating() < spec.MinRating {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesSearch(e models.Employee, search string) bool {
	if search == "" {
		return true
	}
	fullName := strings.ToLower(e.FirstName + " " + e.LastName)
	return strings.Contains(fullName, search) ||
		strings.Contains(strings.ToLower(e.Email), search)
}

// Departments returns the sorted distinct department names of the input.
// The result is deterministic regardless of input order and never contains
// duplicates or the empty string.
func Departments(employees []models.Employee) []string {
	seen := make(map[string]struct{}, len(employees))
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		dept := e.Company.Department
		if dept == "" {
			continue
		}
		if _, ok := seen[dept]; ok {
			continue
		}
		seen[dept] = struct{}{}
		out = append(out, dept)
	}
	sort.Strings(out)
	return out
}
