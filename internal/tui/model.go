// Package tui implements the interactive review desk: a form pane for
// adding and editing reviews next to a searchable, paginated table of
// the collection.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/appraise/internal/core/config"
	"github.com/colonyops/appraise/internal/core/review"
	"github.com/colonyops/appraise/internal/core/styles"
	"github.com/colonyops/appraise/internal/stores"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusTable
)

const statusTTL = 3 * time.Second

// Model is the root Bubble Tea model. All store mutations flow through
// its update loop; the only asynchronous path is the delayed add commit.
type Model struct {
	cfg   *config.Config
	store *stores.ReviewStore

	form  *formController
	table *tableController

	confirm       *ConfirmModal
	pendingDelete string
	preview       *PreviewModal

	spin spinner.Model
	keys keyMap
	help help.Model

	focus       focusArea
	status      string
	statusStyle lipgloss.Style
	statusSeq   int

	width  int
	height int
}

// NewModel creates the root model over the given store.
func NewModel(cfg *config.Config, store *stores.ReviewStore) Model {
	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	tc := newTableController(cfg.TUI.PageSize)
	tc.Refresh(store.Records())

	return Model{
		cfg:   cfg,
		store: store,
		form:  newFormController(),
		table: tc,
		spin:  spin,
		keys:  defaultKeyMap(),
		help:  help.New(),
		focus: focusForm,
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case reviewAddedMsg:
		m.table.Refresh(m.store.Records())
		return m.setStatus("Review added successfully.", styles.StatusSuccessStyle)

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if m.store.InFlight() {
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-key messages keep the sub-components animating.
	var cmds []tea.Cmd
	formCmd, submitted := m.form.Update(msg)
	cmds = append(cmds, formCmd)
	if submitted {
		model, cmd := m.submit()
		return model, tea.Batch(append(cmds, cmd)...)
	}
	cmds = append(cmds, m.table.Update(msg))
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.preview != nil {
		switch msg.String() {
		case "esc", "q", "enter", "v":
			m.preview = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	if m.focus == focusTable && m.table.Searching() {
		switch msg.String() {
		case "esc":
			m.table.EndSearch(true)
			return m, nil
		case "enter":
			m.table.EndSearch(false)
			return m, nil
		}
		return m, m.table.Update(msg)
	}

	if key.Matches(msg, m.keys.Tab) {
		if m.focus == focusForm {
			m.focus = focusTable
		} else {
			m.focus = focusForm
		}
		return m, nil
	}

	if m.focus == focusTable {
		return m.handleTableKey(msg)
	}
	return m.handleFormKey(msg)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	updated, cmd := m.confirm.Update(msg)
	m.confirm = &updated

	switch {
	case updated.Confirmed():
		id := m.pendingDelete
		m.confirm = nil
		m.pendingDelete = ""
		m.store.Delete(id)
		m.table.Refresh(m.store.Records())
		return m.setStatus("Review has been deleted.", styles.StatusSuccessStyle)

	case updated.Cancelled():
		// Declined: no mutation.
		m.confirm = nil
		m.pendingDelete = ""
		return m, nil
	}

	return m, cmd
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		return m, m.table.StartSearch()

	case key.Matches(msg, m.keys.Edit):
		row, ok := m.table.Selected()
		if !ok {
			return m, nil
		}
		m.store.SetEditMode(true)
		cmd := m.form.Prefill(row.Review)
		m.focus = focusForm
		model, statusCmd := m.setStatus(fmt.Sprintf("Editing review for %s.", row.EmployeeName), styles.TextMutedStyle)
		return model, tea.Batch(cmd, statusCmd)

	case key.Matches(msg, m.keys.Delete):
		row, ok := m.table.Selected()
		if !ok {
			return m, nil
		}
		confirm := NewConfirmModal(fmt.Sprintf("You are about to delete the review for %s.", row.EmployeeName))
		m.confirm = &confirm
		m.pendingDelete = row.ID
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		row, ok := m.table.Selected()
		if !ok {
			return m, nil
		}
		preview := NewPreviewModal(row, m.width/2)
		m.preview = &preview
		return m, nil

	case key.Matches(msg, m.keys.PageSize):
		m.table.CyclePageSize()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.table.CycleSort()
		return m, nil

	case key.Matches(msg, m.keys.SortDir):
		m.table.ToggleSortDir()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, m.table.Update(msg)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		if m.form.Editing() {
			m.store.SetEditMode(false)
			cmd := m.form.Reset()
			model, statusCmd := m.setStatus("Edit cancelled.", styles.TextMutedStyle)
			return model, tea.Batch(cmd, statusCmd)
		}
		return m, m.form.Reset()
	}

	cmd, submitted := m.form.Update(msg)
	if submitted {
		model, submitCmd := m.submit()
		return model, tea.Batch(cmd, submitCmd)
	}
	return m, cmd
}

// submit dispatches the completed form into the store: edit replaces in
// place synchronously, create goes through the simulated-latency add.
func (m Model) submit() (Model, tea.Cmd) {
	rec := m.form.Record()

	if m.form.Editing() {
		m.store.Edit(rec)
		m.store.SetEditMode(false)
		resetCmd := m.form.Reset()
		m.table.Refresh(m.store.Records())
		model, statusCmd := m.setStatus("Review updated successfully.", styles.StatusSuccessStyle)
		return model, tea.Batch(resetCmd, statusCmd)
	}

	rec.ID = review.NewID()
	store := m.store
	addCmd := func() tea.Msg {
		store.Add(rec)
		return reviewAddedMsg{record: rec}
	}

	resetCmd := m.form.Reset()
	model, statusCmd := m.setStatus("Saving review…", styles.TextMutedStyle)
	return model, tea.Batch(resetCmd, addCmd, model.spin.Tick, statusCmd)
}

func (m Model) setStatus(text string, style lipgloss.Style) (Model, tea.Cmd) {
	m.status = text
	m.statusStyle = style
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// layout distributes the window between the form and table panes.
func (m *Model) layout() {
	formWidth := m.width * 2 / 5
	if formWidth < 40 {
		formWidth = 40
	}
	tableWidth := m.width - formWidth - 6
	if tableWidth < 40 {
		tableWidth = 40
	}

	m.form.SetWidth(formWidth - 4)
	m.table.SetWidth(tableWidth - 4)
	m.help.Width = m.width
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading…"
	}

	if m.confirm != nil {
		return m.overlay(styles.ModalStyle.Render(m.confirm.View()))
	}
	if m.preview != nil {
		return m.overlay(styles.ModalStyle.Render(m.preview.View()))
	}

	header := styles.TitleStyle.Render("Employee Performance Reviews")
	if m.store.InFlight() {
		header += "  " + m.spin.View() + styles.TextMutedStyle.Render("saving…")
	}

	formTitle := "New Review"
	if m.store.Editing() {
		formTitle = "Edit Review"
	}

	formPane := m.paneStyle(focusForm).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.TextPrimaryBoldStyle.Render(formTitle),
			m.form.View(),
		),
	)
	tablePane := m.paneStyle(focusTable).Render(m.table.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, formPane, tablePane)

	statusLine := ""
	if m.status != "" {
		statusLine = m.statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		statusLine,
		m.help.View(m.keys),
	)
}

func (m Model) paneStyle(area focusArea) lipgloss.Style {
	if m.focus == area {
		return styles.PaneFocusedStyle
	}
	return styles.PaneStyle
}

func (m Model) overlay(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
