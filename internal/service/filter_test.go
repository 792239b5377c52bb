package service

import (
	"reflect"
	"testing"

	"github.com/atinyakov/staffdeck/internal/models"
)

func sampleEmployees() []models.Employee {
	unrated := emp(4, "Enoch", "Lynch", "Engineering", 0)
	unrated.Performance = nil
	return []models.Employee{
		emp(1, "Terry", "Medhurst", "Sales", 4),
		emp(2, "Sheldon", "Quigley", "Engineering", 2),
		emp(3, "Terrill", "Hills", "Sales", 5),
		unrated,
	}
}

func TestFilter_IdentitySpecReturnsInputUnchanged(t *testing.T) {
	in := sampleEmployees()
	out := Filter(in, models.DefaultFilterSpec())

	if !reflect.DeepEqual(out, in) {
		t.Errorf("identity filter changed content or order:\n got %v\nwant %v", out, in)
	}
}

func TestFilter_SearchMatchesNameAndEmail(t *testing.T) {
	in := sampleEmployees()

	tests := []struct {
		search string
		want   []int
	}{
		{"terr", []int{1, 3}},            // first names, case-insensitive
		{"TERRILL HILLS", []int{3}},      // full "first last"
		{"quigley@example.com", []int{2}}, // email
		{"zzz", nil},
	}
	for _, tc := range tests {
		got := Filter(in, models.FilterSpec{Search: tc.search, Department: models.DepartmentAll})
		ids := make([]int, 0, len(got))
		for _, e := range got {
			ids = append(ids, e.ID)
		}
		if !reflect.DeepEqual(ids, tc.want) && !(len(ids) == 0 && len(tc.want) == 0) {
			t.Errorf("search %q: ids = %v; want %v", tc.search, ids, tc.want)
		}
	}
}

func TestFilter_DepartmentExactMatch(t *testing.T) {
	in := sampleEmployees()
	got := Filter(in, models.FilterSpec{Department: "Sales"})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("Sales filter = %v; want employees 1 and 3 in order", got)
	}
}

func TestFilter_MinRatingTreatsUnratedAsZero(t *testing.T) {
	in := sampleEmployees()

	got := Filter(in, models.FilterSpec{Department: models.DepartmentAll, MinRating: 1})
	for _, e := range got {
		if e.ID == 4 {
			t.Error("unrated employee passed a minRating=1 filter")
		}
	}

	all := Filter(in, models.FilterSpec{Department: models.DepartmentAll, MinRating: 0})
	if len(all) != len(in) {
		t.Errorf("minRating=0 excluded employees: got %d of %d", len(all), len(in))
	}
}

func TestFilter_AllPredicatesMustPass(t *testing.T) {
	in := sampleEmployees()
	spec := models.FilterSpec{Search: "terr", Department: "Sales", MinRating: 5}
	got := Filter(in, spec)
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("conjunction filter = %v; want only employee 3", got)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sampleEmployees()
	snapshot := make([]models.Employee, len(in))
	copy(snapshot, in)

	Filter(in, models.FilterSpec{Search: "terr", Department: "Sales", MinRating: 3})
	if !reflect.DeepEqual(in, snapshot) {
		t.Error("Filter mutated its input")
	}
}

func TestDepartments(t *testing.T) {
	if got := Departments(nil); len(got) != 0 {
		t.Errorf("Departments(nil) = %v; want empty", got)
	}

	in := []models.Employee{
		emp(1, "A", "A", "Sales", 1),
		emp(2, "B", "B", "Engineering", 1),
		emp(3, "C", "C", "Sales", 1),
		emp(4, "D", "D", "Design", 1),
	}
	want := []string{"Design", "Engineering", "Sales"}
	if got := Departments(in); !reflect.DeepEqual(got, want) {
		t.Errorf("Departments = %v; want %v", got, want)
	}

	// Deterministic regardless of input order.
	reversed := []models.Employee{in[3], in[2], in[1], in[0]}
	if got := Departments(reversed); !reflect.DeepEqual(got, want) {
		t.Errorf("Departments(reversed) = %v; want %v", got, want)
	}
}

func TestFilterEngine_MemoizesUntilInputsChange(t *testing.T) {
	f := NewFilterEngine()
	f.SetEmployees(sampleEmployees())

	first := f.Filtered()
	second := f.Filtered()
	if len(first) > 0 && &first[0] != &second[0] {
		t.Error("repeated Filtered() recomputed despite unchanged inputs")
	}

	// Setting an equal spec keeps the memoized view.
	f.SetSpec(f.Spec())
	third := f.Filtered()
	if len(first) > 0 && &first[0] != &third[0] {
		t.Error("equal spec invalidated the memoized view")
	}

	// A changed spec recomputes.
	f.SetSpec(models.FilterSpec{Search: "terr", Department: models.DepartmentAll})
	if got := f.Filtered(); len(got) != 2 {
		t.Errorf("filtered after spec change = %v; want 2 entries", got)
	}

	// A changed collection invalidates both views.
	f.SetEmployees(nil)
	if got := f.Filtered(); len(got) != 0 {
		t.Errorf("filtered after collection change = %v; want empty", got)
	}
	if got := f.Departments(); len(got) != 0 {
		t.Errorf("departments after collection change = %v; want empty", got)
	}
}
