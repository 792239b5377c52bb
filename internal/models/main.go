// Package models defines the core data structures for users, employees and
// derived dashboard values.
package models

// Role is an access tag attached to a user and checked by the route guard.
type Role string

const (
	// RoleAdmin grants access to every view, including analytics.
	RoleAdmin Role = "admin"
	// RoleHR grants access to analytics alongside the regular views.
	RoleHR Role = "hr"
	// RoleEmployee grants access to the regular directory views only.
	RoleEmployee Role = "employee"
)

// User is the authenticated identity held by a session. It never carries the
// credential secret; the secret is stripped when the session is issued.
type User struct {
	// ID is the unique identifier for the user.
	ID int `json:"id"`
	// Username is the login name the user authenticates with.
	Username string `json:"username"`
	// Name is the display name shown in notifications.
	Name string `json:"name"`
	// Role controls route access.
	Role Role `json:"role"`
}

// Address is the postal address part of an employee record.
type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// Company describes an employee's position.
type Company struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Title      string `json:"title"`
}

// Performance holds derived performance figures for an employee.
// A nil Performance on Employee means "unrated" and contributes a zero
// rating to every aggregate.
type Performance struct {
	// Rating is the performance score, 1..5.
	Rating int `json:"rating"`
	// Projects is the number of projects completed.
	Projects int `json:"projects"`
	// CompletionRate is a percentage, 0..100.
	CompletionRate int `json:"completionRate"`
}

// Employee is a directory record sourced from the employee API.
// Identity fields are never mutated by the core.
type Employee struct {
	ID          int          `json:"id"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Age         int          `json:"age"`
	Image       string       `json:"image"`
	Address     Address      `json:"address"`
	Company     Company      `json:"company"`
	Performance *Performance `json:"performance,omitempty"`
}

// FullName returns the employee's display name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Rating returns the performance rating, or 0 when the employee is unrated.
func (e Employee) Rating() int {
	if e.Performance == nil {
		return 0
	}
	return e.Performance.Rating
}

// DepartmentAll is the FilterSpec wildcard matching every department.
const DepartmentAll = "all"

// FilterSpec holds the user-chosen predicate parameters for narrowing the
// employee list. It is UI-session-scoped and never persisted.
type FilterSpec struct {
	// Search matches case-insensitively against "First Last" or the email.
	// Empty matches everything.
	Search string
	// Department must equal the employee's department exactly,
	// or be DepartmentAll.
	Department string
	// MinRating is the inclusive lower bound on the rating, 0..5.
	MinRating int
}

// DefaultFilterSpec returns the identity filter that passes every employee.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{Search: "", Department: DepartmentAll, MinRating: 0}
}

// DepartmentStat is a derived per-department aggregate.
type DepartmentStat struct {
	Name string `json:"name"`
	// EmployeeCount is always > 0; empty departments never appear.
	EmployeeCount int `json:"employeeCount"`
	// AverageRating is rounded to one decimal.
	AverageRating float64 `json:"averageRating"`
}

// CreateEmployeeRequest is the payload for creating an employee record
// through the employee API.
type CreateEmployeeRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Age       int     `json:"age"`
	Address   Address `json:"address"`
	Company   Company `json:"company"`
	Image     string  `json:"image"`
}
