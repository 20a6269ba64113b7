// Package validate provides field-level validation for review input.
// These rules run at submit time (and on seed records); the store itself
// performs no validation and trusts its callers.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/appraise/internal/core/review"
	"github.com/colonyops/appraise/pkg/markup"
)

// EmployeeName validates a name is non-empty after trimming whitespace.
func EmployeeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("employee name is required")
	}
	return nil
}

// Department validates a department selection against the fixed set.
func Department(value string) error {
	if value == "" {
		return errors.New("department is required")
	}
	if !review.Department(value).Valid() {
		return fmt.Errorf("unknown department %q", value)
	}
	return nil
}

// Date validates a review period endpoint: present, parseable, and not
// later than the current date.
func Date(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("date is required")
	}
	t, err := review.ParseDate(value)
	if err != nil {
		return err
	}
	if t.After(endOfToday()) {
		return errors.New("date cannot be in the future")
	}
	return nil
}

// PeriodOrder validates that the period's end does not precede its
// start. Endpoints that fail Date on their own are skipped here so each
// field surfaces its own error first.
func PeriodOrder(from, to string) error {
	fromT, err := review.ParseDate(from)
	if err != nil {
		return nil
	}
	toT, err := review.ParseDate(to)
	if err != nil {
		return nil
	}
	if toT.Before(fromT) {
		return errors.New("to date cannot be before from date")
	}
	return nil
}

// Rating validates a rating is within the inclusive 1..10 range.
func Rating(rating int) error {
	if rating < 1 || rating > 10 {
		return fmt.Errorf("rating must be between 1 and 10, got %d", rating)
	}
	return nil
}

// Comments validates comment markup has visible content once tags and
// whitespace are stripped.
func Comments(value string) error {
	if markup.IsBlank(value) {
		return errors.New("comments are required")
	}
	return nil
}

// Record validates a complete review record field by field. Used for
// seed entries, which bypass the interactive form.
func Record(r review.Review) error {
	return criterio.ValidateStruct(
		criterio.Run("employee_name", r.EmployeeName, EmployeeName),
		criterio.Run("department", string(r.Department), Department),
		criterio.Run("period.from", r.Period.From, Date),
		criterio.Run("period.to", r.Period.To, Date),
		periodField(r.Period),
		criterio.Run("rating", r.Rating, Rating),
		criterio.Run("comments", r.Comments, Comments),
	)
}

func periodField(p review.Period) error {
	if err := PeriodOrder(p.From, p.To); err != nil {
		return criterio.NewFieldErrors("period", err)
	}
	return nil
}

func endOfToday() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}
