package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/appraise/internal/core/review"
)

func TestEmployeeName(t *testing.T) {
	assert.NoError(t, EmployeeName("Alice"))
	assert.NoError(t, EmployeeName("  Alice  "))
	assert.Error(t, EmployeeName(""))
	assert.Error(t, EmployeeName("   "))
}

func TestDepartment(t *testing.T) {
	assert.NoError(t, Department("HR"))
	assert.NoError(t, Department("IT Support"))
	assert.Error(t, Department(""))
	assert.Error(t, Department("Engineering"))
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date("2024-01-15"))
	assert.NoError(t, Date(time.Now().UTC().Format("2006-01-02")), "today is allowed")

	assert.Error(t, Date(""))
	assert.Error(t, Date("not-a-date"))

	future := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	assert.Error(t, Date(future), "future dates are rejected")
}

func TestPeriodOrder(t *testing.T) {
	assert.NoError(t, PeriodOrder("2024-01-01", "2024-06-01"))
	assert.NoError(t, PeriodOrder("2024-01-01", "2024-01-01"), "same day is allowed")
	assert.Error(t, PeriodOrder("2024-06-01", "2024-01-01"))

	// Unparseable endpoints are reported by Date, not here.
	assert.NoError(t, PeriodOrder("garbage", "2024-01-01"))
	assert.NoError(t, PeriodOrder("2024-01-01", "garbage"))
}

func TestRating(t *testing.T) {
	for r := 1; r <= 10; r++ {
		assert.NoError(t, Rating(r), "rating %d", r)
	}
	assert.Error(t, Rating(0))
	assert.Error(t, Rating(11))
	assert.Error(t, Rating(-1))
}

func TestComments(t *testing.T) {
	assert.NoError(t, Comments("<p>great</p>"))
	assert.NoError(t, Comments("solid quarter"))
	assert.Error(t, Comments(""))
	assert.Error(t, Comments("<p> </p>"), "markup with no visible text is empty")
	assert.Error(t, Comments("   \n"))
}

func TestRecord(t *testing.T) {
	valid := review.Review{
		ID:           review.NewID(),
		EmployeeName: "Alice",
		Department:   review.DepartmentHR,
		Period:       review.Period{From: "2024-01-01T00:00:00Z", To: "2024-06-01T00:00:00Z"},
		Rating:       9,
		Comments:     "<p>great</p>",
	}
	assert.NoError(t, Record(valid))

	t.Run("each broken field fails", func(t *testing.T) {
		broken := []func(r *review.Review){
			func(r *review.Review) { r.EmployeeName = " " },
			func(r *review.Review) { r.Department = "Engineering" },
			func(r *review.Review) { r.Period.From = "" },
			func(r *review.Review) { r.Period.To = "never" },
			func(r *review.Review) { r.Period.From, r.Period.To = r.Period.To, r.Period.From },
			func(r *review.Review) { r.Rating = 0 },
			func(r *review.Review) { r.Comments = "<p></p>" },
		}
		for i, mutate := range broken {
			r := valid
			mutate(&r)
			assert.Error(t, Record(r), "case %d", i)
		}
	})
}
