package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/appraise/internal/core/styles"
)

// ConfirmModal asks a yes/no question before a destructive action runs.
// It stays open until the user answers; the owner reads the outcome via
// Confirmed and Cancelled.
type ConfirmModal struct {
	message   string
	confirmed bool
	cancelled bool
}

// NewConfirmModal creates a modal showing the given message.
func NewConfirmModal(message string) ConfirmModal {
	return ConfirmModal{
		message: message,
	}
}

// Update reads the answer keys: y/Y/enter accepts, n/N/esc declines.
// Anything else leaves the modal open.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.confirmed = true
		return m, nil
	case "n", "N", "esc":
		m.cancelled = true
		return m, nil
	}

	return m, nil
}

// View renders the message above the answer prompt.
func (m ConfirmModal) View() string {
	message := styles.ConfirmMessageStyle.Render(m.message)
	prompt := styles.TextPrimaryBoldStyle.Render("Confirm? (y/n)")

	return message + "\n\n" + prompt
}

// Confirmed reports whether the user accepted.
func (m ConfirmModal) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports whether the user declined.
func (m ConfirmModal) Cancelled() bool {
	return m.cancelled
}
