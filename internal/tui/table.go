package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/appraise/internal/core/config"
	"github.com/colonyops/appraise/internal/core/review"
	"github.com/colonyops/appraise/internal/core/styles"
)

type sortColumn int

const (
	sortNone sortColumn = iota
	sortName
	sortDepartment
	sortRating
)

func (c sortColumn) String() string {
	switch c {
	case sortName:
		return "name"
	case sortDepartment:
		return "department"
	case sortRating:
		return "rating"
	default:
		return "none"
	}
}

// tableController renders the filtered, tier-annotated review rows and
// owns the search query, sort order, pagination, and the current edit
// target selection.
type tableController struct {
	table  table.Model
	search textinput.Model
	pager  paginator.Model

	pageSizeIdx int
	sortCol     sortColumn
	sortAsc     bool
	searching   bool

	// records is the last store snapshot; filtered is the derived view
	// after search and sort; visible is the current page, parallel to
	// the table's rows.
	records  []review.Review
	filtered []review.DisplayRow
	visible  []review.DisplayRow

	width int
}

func newTableController(pageSize int) *tableController {
	search := textinput.New()
	search.Placeholder = "Search by name, department, or tier"
	search.Prompt = "/ "
	search.CharLimit = 64

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = styles.TextPrimaryBoldStyle.Render("•")
	pager.InactiveDot = styles.TextMutedStyle.Render("•")

	idx := 0
	for i, size := range config.PageSizes {
		if size == pageSize {
			idx = i
			break
		}
	}
	pager.PerPage = config.PageSizes[idx]

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(pager.PerPage),
	)
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(styles.ColorSurface).
		Bold(true).
		Foreground(styles.ColorSecondary)
	ts.Selected = ts.Selected.
		Foreground(styles.ColorForeground).
		Background(styles.ColorSurface).
		Bold(false)
	t.SetStyles(ts)

	tc := &tableController{
		table:       t,
		search:      search,
		pager:       pager,
		pageSizeIdx: idx,
		sortAsc:     true,
	}
	tc.SetWidth(60)
	return tc
}

// Refresh recomputes the derived view from a fresh store snapshot.
func (t *tableController) Refresh(records []review.Review) {
	t.records = records
	t.recompute()
}

// recompute runs the derive -> filter -> sort -> paginate pipeline over
// the held snapshot.
func (t *tableController) recompute() {
	rows := review.FilterRows(review.Derive(t.records), t.search.Value())

	if t.sortCol != sortNone {
		rows = append([]review.DisplayRow(nil), rows...)
		sort.SliceStable(rows, func(i, j int) bool {
			var c int
			switch t.sortCol {
			case sortName:
				c = strings.Compare(strings.ToLower(rows[i].EmployeeName), strings.ToLower(rows[j].EmployeeName))
			case sortDepartment:
				c = strings.Compare(strings.ToLower(string(rows[i].Department)), strings.ToLower(string(rows[j].Department)))
			case sortRating:
				c = rows[i].Rating - rows[j].Rating
			}
			if t.sortAsc {
				return c < 0
			}
			return c > 0
		})
	}
	t.filtered = rows

	// SetTotalPages ignores zero, so an empty result set must be handled
	// before the slice-bounds math.
	if len(rows) == 0 {
		t.pager.Page = 0
		t.pager.TotalPages = 1
		t.visible = nil
		t.table.SetRows(nil)
		return
	}

	t.pager.SetTotalPages(len(rows))
	if t.pager.Page >= t.pager.TotalPages {
		t.pager.Page = t.pager.TotalPages - 1
	}
	if t.pager.Page < 0 {
		t.pager.Page = 0
	}

	start, end := t.pager.GetSliceBounds(len(rows))
	t.visible = rows[start:end]

	tableRows := make([]table.Row, len(t.visible))
	for i, row := range t.visible {
		tier := styles.TierStyle(string(row.PerformanceTier)).Render(string(row.PerformanceTier))
		tableRows[i] = table.Row{
			row.EmployeeName,
			string(row.Department),
			strconv.Itoa(row.Rating),
			tier,
		}
	}
	t.table.SetRows(tableRows)
	if cursor := t.table.Cursor(); cursor >= len(tableRows) && len(tableRows) > 0 {
		t.table.SetCursor(len(tableRows) - 1)
	}
}

// Selected returns the row under the cursor.
func (t *tableController) Selected() (review.DisplayRow, bool) {
	cursor := t.table.Cursor()
	if cursor < 0 || cursor >= len(t.visible) {
		return review.DisplayRow{}, false
	}
	return t.visible[cursor], true
}

// Query returns the current search text.
func (t *tableController) Query() string {
	return t.search.Value()
}

// Searching reports whether the search input has focus.
func (t *tableController) Searching() bool {
	return t.searching
}

// StartSearch focuses the search input.
func (t *tableController) StartSearch() tea.Cmd {
	t.searching = true
	return t.search.Focus()
}

// EndSearch blurs the search input, optionally clearing the query.
func (t *tableController) EndSearch(clear bool) {
	t.searching = false
	t.search.Blur()
	if clear {
		t.search.SetValue("")
		t.recompute()
	}
}

// CyclePageSize advances through the offered page sizes.
func (t *tableController) CyclePageSize() {
	t.pageSizeIdx = (t.pageSizeIdx + 1) % len(config.PageSizes)
	t.pager.PerPage = config.PageSizes[t.pageSizeIdx]
	t.pager.Page = 0
	t.table.SetHeight(t.pager.PerPage)
	t.recompute()
}

// CycleSort advances the sort column: none, name, department, rating.
func (t *tableController) CycleSort() {
	t.sortCol = (t.sortCol + 1) % 4
	t.recompute()
}

// ToggleSortDir flips between ascending and descending.
func (t *tableController) ToggleSortDir() {
	t.sortAsc = !t.sortAsc
	t.recompute()
}

// Update routes input to the search box when searching, otherwise to
// the table cursor and the paginator.
func (t *tableController) Update(msg tea.Msg) tea.Cmd {
	if t.searching {
		var cmd tea.Cmd
		t.search, cmd = t.search.Update(msg)
		// Recompute on every keystroke; linear rescans are fine here.
		t.recompute()
		return cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	cmds = append(cmds, cmd)

	page := t.pager.Page
	t.pager, cmd = t.pager.Update(msg)
	cmds = append(cmds, cmd)
	if t.pager.Page != page {
		t.recompute()
	}

	return tea.Batch(cmds...)
}

// SetWidth resizes the table columns to fit the pane.
func (t *tableController) SetWidth(width int) {
	t.width = width

	const deptWidth, ratingWidth, tierWidth = 13, 7, 10
	nameWidth := width - deptWidth - ratingWidth - tierWidth - 8
	if nameWidth < 12 {
		nameWidth = 12
	}

	t.table.SetColumns([]table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Department", Width: deptWidth},
		{Title: "Rating", Width: ratingWidth},
		{Title: "Tier", Width: tierWidth},
	})
	t.table.SetWidth(width)
	t.search.Width = width - 4
}

// View renders the search line, the table, and the pagination footer.
func (t *tableController) View() string {
	var search string
	if t.searching || t.search.Value() != "" {
		search = t.search.View()
	} else {
		search = styles.TextMutedStyle.Render("press / to search")
	}

	footer := fmt.Sprintf("%d review(s) · %d/page · sort: %s", len(t.filtered), t.pager.PerPage, t.sortCol)
	if t.sortCol != sortNone {
		if t.sortAsc {
			footer += " ↑"
		} else {
			footer += " ↓"
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		search,
		t.table.View(),
		t.pager.View(),
		styles.TextMutedStyle.Render(footer),
	)
}
