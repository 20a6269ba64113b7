package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	row := DisplayRow{
		Review: Review{
			EmployeeName: "Alice Johnson",
			Department:   DepartmentITSupport,
			Rating:       9,
		},
		PerformanceTier: TierExcellent,
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches everything", "", true},
		{"name substring", "john", true},
		{"name case-insensitive", "ALICE", true},
		{"department substring", "it sup", true},
		{"tier substring", "excel", true},
		{"tier case-insensitive", "EXCELLENT", true},
		{"no match", "logistic", false},
		{"rating is not searched", "9", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(row, tt.query))
		})
	}
}

func TestFilterRows(t *testing.T) {
	rows := Derive([]Review{
		{ID: "1", EmployeeName: "Alice", Department: DepartmentHR, Rating: 9},
		{ID: "2", EmployeeName: "Bob", Department: DepartmentITSupport, Rating: 5},
	})

	t.Run("hr matches only the HR record", func(t *testing.T) {
		got := FilterRows(rows, "hr")
		assert.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("empty query returns all rows", func(t *testing.T) {
		assert.Len(t, FilterRows(rows, ""), 2)
	})

	t.Run("order is preserved", func(t *testing.T) {
		got := FilterRows(rows, "e") // Alice + Excellent, Average
		assert.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
	})
}
