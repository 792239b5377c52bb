package directory

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atinyakov/staffdeck/internal/models"
)

// ErrValidation wraps all client-side rejections of an employee creation
// payload; callers branch on it to keep the form populated for correction.
var ErrValidation = errors.New("invalid employee")

// ValidateCreate rejects a creation payload with malformed or missing
// required fields before any submission attempt.
func ValidateCreate(r models.CreateEmployeeRequest) error {
	var missing []string
	for field, value := range map[string]string{
		"firstName":  r.FirstName,
		"lastName":   r.LastName,
		"email":      r.Email,
		"phone":      r.Phone,
		"address":    r.Address.Address,
		"city":       r.Address.City,
		"state":      r.Address.State,
		"department": r.Company.Department,
		"title":      r.Company.Title,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	if r.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrValidation)
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: malformed email", ErrValidation)
	}
	if !knownDepartment(r.Company.Department) {
		return fmt.Errorf("%w: unknown department %q", ErrValidation, r.Company.Department)
	}
	return nil
}
