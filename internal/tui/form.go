package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/colonyops/appraise/internal/core/review"
	"github.com/colonyops/appraise/internal/core/validate"
)

const defaultRating = 5

// formController owns the review form: input capture, field-level
// validation, and construction of the record dispatched to the store.
// It is a two-state machine: create mode (no target) and edit mode
// (target set by the table controller).
type formController struct {
	form *huh.Form

	name       string
	department string
	fromDate   string
	toDate     string
	rating     int
	comments   string

	// target is the record being edited, nil in create mode. Its ID is
	// preserved on submit.
	target *review.Review

	width int
}

func newFormController() *formController {
	f := &formController{rating: defaultRating}
	f.rebuild()
	return f
}

// rebuild constructs a fresh huh form bound to the controller's fields.
// huh forms are single-shot, so every create/edit session gets its own.
func (f *formController) rebuild() {
	departmentOptions := []huh.Option[string]{huh.NewOption("Select department", "")}
	for _, d := range review.Departments() {
		departmentOptions = append(departmentOptions, huh.NewOption(string(d), string(d)))
	}

	ratingOptions := make([]huh.Option[int], 0, 10)
	for r := 1; r <= 10; r++ {
		ratingOptions = append(ratingOptions, huh.NewOption(fmt.Sprintf("%d", r), r))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Employee Name").
				Placeholder("Enter name").
				Value(&f.name).
				Validate(validate.EmployeeName),
			huh.NewSelect[string]().
				Key("department").
				Title("Department").
				Options(departmentOptions...).
				Value(&f.department).
				Validate(validate.Department),
			huh.NewInput().
				Key("from").
				Title("From Date").
				Placeholder("YYYY-MM-DD").
				Value(&f.fromDate).
				Validate(validate.Date),
			huh.NewInput().
				Key("to").
				Title("To Date").
				Placeholder("YYYY-MM-DD").
				Value(&f.toDate).
				Validate(f.validateToDate),
			huh.NewSelect[int]().
				Key("rating").
				Title("Performance Rating").
				Options(ratingOptions...).
				Value(&f.rating).
				Validate(validate.Rating),
			huh.NewText().
				Key("comments").
				Title("Reviewer Comments").
				Placeholder("Markdown supported").
				Value(&f.comments).
				Validate(validate.Comments),
		),
	).
		WithShowHelp(false).
		WithShowErrors(true)

	if f.width > 0 {
		f.form = f.form.WithWidth(f.width)
	}
}

// validateToDate applies the single-field date rules plus the explicit
// cross-field ordering rule against the current from value.
func (f *formController) validateToDate(value string) error {
	if err := validate.Date(value); err != nil {
		return err
	}
	return validate.PeriodOrder(f.fromDate, value)
}

// Init starts the form.
func (f *formController) Init() tea.Cmd {
	return f.form.Init()
}

// Update feeds a message to the form and reports whether the form
// completed with all fields valid.
func (f *formController) Update(msg tea.Msg) (tea.Cmd, bool) {
	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}
	return cmd, f.form.State == huh.StateCompleted
}

// View renders the form.
func (f *formController) View() string {
	return f.form.View()
}

// SetWidth resizes the form.
func (f *formController) SetWidth(width int) {
	f.width = width
	if width > 0 {
		f.form = f.form.WithWidth(width)
	}
}

// Editing reports whether the form is bound to an existing record.
func (f *formController) Editing() bool {
	return f.target != nil
}

// Target returns the record under edit, or nil in create mode.
func (f *formController) Target() *review.Review {
	return f.target
}

// Prefill binds the form to an existing record for editing. Stored
// dates come back in calendar form for the input widgets.
func (f *formController) Prefill(target review.Review) tea.Cmd {
	f.target = &target
	f.name = target.EmployeeName
	f.department = string(target.Department)
	f.fromDate = review.DateOnly(target.Period.From)
	f.toDate = review.DateOnly(target.Period.To)
	f.rating = target.Rating
	f.comments = target.Comments
	f.rebuild()
	return f.form.Init()
}

// Reset returns the form to an empty create-mode session.
func (f *formController) Reset() tea.Cmd {
	f.target = nil
	f.name = ""
	f.department = ""
	f.fromDate = ""
	f.toDate = ""
	f.rating = defaultRating
	f.comments = ""
	f.rebuild()
	return f.form.Init()
}

// Record assembles the validated record for dispatch. In edit mode the
// target's ID is preserved; in create mode the caller assigns a fresh
// one. Dates are normalized to their canonical serialized form so the
// store never sees widget representations.
func (f *formController) Record() review.Review {
	id := ""
	if f.target != nil {
		id = f.target.ID
	}

	from, _ := review.CanonicalDate(f.fromDate)
	to, _ := review.CanonicalDate(f.toDate)

	return review.Review{
		ID:           id,
		EmployeeName: strings.TrimSpace(f.name),
		Department:   review.Department(f.department),
		Period:       review.Period{From: from, To: to},
		Rating:       f.rating,
		Comments:     f.comments,
	}
}
