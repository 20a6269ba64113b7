package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/appraise/internal/core/review"
	"github.com/colonyops/appraise/internal/stores"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeed(t *testing.T) {
	store := stores.NewReviewStore(0)
	path := writeSeed(t, `
- employee_name: Alice
  department: HR
  period:
    from: "2024-01-01"
    to: "2024-06-01"
  rating: 9
  comments: "<p>great</p>"
- employee_name: Bob
  department: IT Support
  period:
    from: "2024-02-01"
    to: "2024-03-01"
  rating: 5
  comments: solid
`)

	n, err := LoadSeed(path, store)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records := store.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Alice", records[0].EmployeeName)
	assert.NotEmpty(t, records[0].ID, "missing IDs are assigned")
	assert.Equal(t, "2024-01-01T00:00:00Z", records[0].Period.From, "dates are canonicalized")
	assert.Equal(t, review.DepartmentITSupport, records[1].Department)
}

func TestLoadSeed_SkipsInvalidEntries(t *testing.T) {
	store := stores.NewReviewStore(0)
	path := writeSeed(t, `
- employee_name: Alice
  department: HR
  period:
    from: "2024-01-01"
    to: "2024-06-01"
  rating: 9
  comments: fine
- employee_name: ""
  department: HR
  period:
    from: "2024-01-01"
    to: "2024-06-01"
  rating: 9
  comments: nameless
- employee_name: Carol
  department: Basketweaving
  period:
    from: "2024-01-01"
    to: "2024-06-01"
  rating: 3
  comments: bad department
`)

	n, err := LoadSeed(path, store)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, store.Len())
}

func TestLoadSeed_Errors(t *testing.T) {
	store := stores.NewReviewStore(0)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "nope.yaml"), store)
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadSeed(writeSeed(t, "- ["), store)
		assert.Error(t, err)
	})
}
