package stores

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/appraise/internal/core/review"
)

func testReview(name string, rating int) review.Review {
	return review.Review{
		ID:           review.NewID(),
		EmployeeName: name,
		Department:   review.DepartmentHR,
		Period:       review.Period{From: "2024-01-01T00:00:00Z", To: "2024-06-01T00:00:00Z"},
		Rating:       rating,
		Comments:     "<p>fine</p>",
	}
}

func TestReviewStore_Add(t *testing.T) {
	t.Run("record lands only after the latency elapses", func(t *testing.T) {
		store := NewReviewStore(50 * time.Millisecond)
		rec := testReview("Alice", 9)

		done := make(chan struct{})
		go func() {
			store.Add(rec)
			close(done)
		}()

		assert.Equal(t, 0, store.Len(), "collection unchanged before the delay")

		<-done
		require.Equal(t, 1, store.Len())
		assert.Equal(t, rec, store.Records()[0])
		assert.False(t, store.InFlight())
	})

	t.Run("in-flight flag is set during the delay", func(t *testing.T) {
		store := NewReviewStore(50 * time.Millisecond)

		go store.Add(testReview("Alice", 9))

		assert.Eventually(t, store.InFlight, time.Second, time.Millisecond)
		assert.Eventually(t, func() bool { return store.Len() == 1 }, time.Second, 5*time.Millisecond)
		assert.False(t, store.InFlight())
	})

	t.Run("concurrent adds each land in issue order", func(t *testing.T) {
		store := NewReviewStore(20 * time.Millisecond)
		first := testReview("First", 5)
		second := testReview("Second", 6)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); store.Add(first) }()
		time.Sleep(5 * time.Millisecond)
		go func() { defer wg.Done(); store.Add(second) }()
		wg.Wait()

		records := store.Records()
		require.Len(t, records, 2)
		assert.Equal(t, first.ID, records[0].ID)
		assert.Equal(t, second.ID, records[1].ID)
	})

	t.Run("zero latency commits immediately", func(t *testing.T) {
		store := NewReviewStore(0)
		store.Add(testReview("Alice", 9))
		assert.Equal(t, 1, store.Len())
	})
}

func TestReviewStore_Edit(t *testing.T) {
	t.Run("replaces in place preserving position", func(t *testing.T) {
		store := NewReviewStore(0)
		a := testReview("Alice", 5)
		b := testReview("Bob", 7)
		store.Seed([]review.Review{a, b})

		updated := a
		updated.Rating = 8
		store.Edit(updated)

		records := store.Records()
		require.Len(t, records, 2)
		assert.Equal(t, updated, records[0], "record stays at its index")
		assert.Equal(t, b, records[1])
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		store := NewReviewStore(0)
		a := testReview("Alice", 5)
		store.Seed([]review.Review{a})

		ghost := testReview("Ghost", 1)
		store.Edit(ghost)

		records := store.Records()
		require.Len(t, records, 1)
		assert.Equal(t, a, records[0])
	})
}

func TestReviewStore_Delete(t *testing.T) {
	store := NewReviewStore(0)
	a := testReview("Alice", 5)
	b := testReview("Bob", 7)
	store.Seed([]review.Review{a, b})

	store.Delete(a.ID)
	require.Equal(t, 1, store.Len())
	assert.Equal(t, b.ID, store.Records()[0].ID)

	// Idempotent: deleting again changes nothing.
	store.Delete(a.ID)
	assert.Equal(t, 1, store.Len())

	store.Delete("never-existed")
	assert.Equal(t, 1, store.Len())
}

func TestReviewStore_EditMode(t *testing.T) {
	store := NewReviewStore(0)
	assert.False(t, store.Editing())

	store.SetEditMode(true)
	assert.True(t, store.Editing())
	assert.Equal(t, 0, store.Len(), "flag does not touch the collection")

	store.SetEditMode(false)
	assert.False(t, store.Editing())
}

func TestReviewStore_RecordsIsSnapshot(t *testing.T) {
	store := NewReviewStore(0)
	store.Seed([]review.Review{testReview("Alice", 5)})

	snapshot := store.Records()
	snapshot[0].EmployeeName = "Mallory"

	assert.Equal(t, "Alice", store.Records()[0].EmployeeName)
}

func TestReviewStore_DerivedPipeline(t *testing.T) {
	// Store -> Derive -> Filter, the table controller's read path.
	store := NewReviewStore(0)
	hr := testReview("Alice", 9)
	it := testReview("Bob", 5)
	it.Department = review.DepartmentITSupport
	store.Seed([]review.Review{hr, it})

	rows := review.FilterRows(review.Derive(store.Records()), "hr")
	require.Len(t, rows, 1)
	assert.Equal(t, hr.ID, rows[0].ID)
	assert.Equal(t, review.TierExcellent, rows[0].PerformanceTier)
}
