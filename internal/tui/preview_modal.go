package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/appraise/internal/core/review"
	"github.com/colonyops/appraise/internal/core/styles"
	"github.com/colonyops/appraise/pkg/markup"
)

// PreviewModal renders a review's comment markup for reading.
type PreviewModal struct {
	title string
	body  string
}

// NewPreviewModal renders the comments of the given row. Markup that
// glamour cannot render falls back to its stripped text.
func NewPreviewModal(row review.DisplayRow, width int) PreviewModal {
	if width <= 0 || width > 72 {
		width = 72
	}

	body := row.Comments
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, rerr := renderer.Render(row.Comments); rerr == nil {
			body = rendered
		} else {
			body = markup.Strip(row.Comments)
		}
	} else {
		body = markup.Strip(row.Comments)
	}

	tier := styles.TierStyle(string(row.PerformanceTier)).Render(string(row.PerformanceTier))
	header := fmt.Sprintf("%s · %s · %d/10 %s",
		row.EmployeeName, row.Department, row.Rating, tier)

	return PreviewModal{
		title: header,
		body:  body,
	}
}

// View renders the preview modal content.
func (m PreviewModal) View() string {
	title := styles.TitleStyle.Render(m.title)
	hint := styles.TextMutedStyle.Render("esc to close")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.body, hint)
}
