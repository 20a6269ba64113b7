package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		rating int
		want   Tier
	}{
		{1, TierPoor},
		{2, TierPoor},
		{3, TierPoor}, // upper boundary of Poor
		{4, TierAverage},
		{5, TierAverage},
		{6, TierAverage}, // upper boundary of Average
		{7, TierGood},
		{8, TierGood}, // upper boundary of Good
		{9, TierExcellent},
		{10, TierExcellent},
	}

	for _, tt := range tests {
		got := TierFor(tt.rating)
		assert.Equal(t, tt.want, got, "TierFor(%d)", tt.rating)
	}
}

func TestDerive(t *testing.T) {
	records := []Review{
		{ID: "a", EmployeeName: "Alice", Rating: 9},
		{ID: "b", EmployeeName: "Bob", Rating: 5},
	}

	rows := Derive(records)

	assert.Len(t, rows, 2)
	assert.Equal(t, TierExcellent, rows[0].PerformanceTier)
	assert.Equal(t, TierAverage, rows[1].PerformanceTier)

	// Derivation must not mutate the underlying records.
	assert.Equal(t, "Alice", records[0].EmployeeName)
	assert.Equal(t, 9, records[0].Rating)
}

func TestDerive_Empty(t *testing.T) {
	assert.Empty(t, Derive(nil))
}
