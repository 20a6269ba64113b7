// Package review defines the performance review record and its derived,
// read-only views (tier classification and search filtering).
package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Department is one of the fixed departments a review can be filed against.
type Department string

// Supported departments.
const (
	DepartmentHR          Department = "HR"
	DepartmentLogistic    Department = "Logistic"
	DepartmentDevelopment Department = "Development"
	DepartmentAdmin       Department = "Admin"
	DepartmentITSupport   Department = "IT Support"
)

// Departments returns all departments in display order.
func Departments() []Department {
	return []Department{
		DepartmentHR,
		DepartmentLogistic,
		DepartmentDevelopment,
		DepartmentAdmin,
		DepartmentITSupport,
	}
}

// Valid reports whether d is one of the supported departments.
func (d Department) Valid() bool {
	for _, known := range Departments() {
		if d == known {
			return true
		}
	}
	return false
}

// Period is the calendar date range a review covers. Both ends are stored
// as serialized RFC 3339 strings, never as native time values, so the
// record shape stays stable regardless of how input widgets represent
// dates.
type Period struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Review represents one employee performance review.
type Review struct {
	ID           string     `yaml:"id"`
	EmployeeName string     `yaml:"employee_name"`
	Department   Department `yaml:"department"`
	Period       Period     `yaml:"period"`
	Rating       int        `yaml:"rating"` // 1..10 inclusive
	Comments     string     `yaml:"comments"`
}

// NewID returns a fresh unique review ID. IDs are assigned once at
// creation and never reused.
func NewID() string {
	return uuid.NewString()
}

// dateLayout is the calendar date format accepted from input widgets.
const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form or an RFC 3339
// timestamp. The result is normalized to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// CanonicalDate normalizes a date string to its stored RFC 3339 form.
func CanonicalDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(time.RFC3339), nil
}

// DateOnly converts a stored RFC 3339 date back to YYYY-MM-DD for
// editing widgets. Unparseable input is returned unchanged so a partial
// edit never destroys what the user typed.
func DateOnly(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format(dateLayout)
}
