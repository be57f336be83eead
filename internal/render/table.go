package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/strrl/wherewasi/pkg/models"
)

// Table formats projects as a two column terminal table.
// A positive width stretches the table to that many columns.
func Table(projects []models.Project, width int) string {
	s := newStyles()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		BorderRow(true).
		Headers("Directory", "Sessions").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header
			case col == 0:
				return s.directory
			default:
				return s.cell
			}
		})

	for _, project := range projects {
		t.Row(ShortPath(project.Path), sessionsCell(project.Sessions, s))
	}
	if width > 0 {
		t.Width(width)
	}

	rendered := t.Render()
	title := lipgloss.PlaceHorizontal(lipgloss.Width(rendered), lipgloss.Center, s.title.Render(Title))
	return lipgloss.JoinVertical(lipgloss.Left, title, rendered)
}

func sessionsCell(sessions []models.Session, s styles) string {
	blocks := make([]string, 0, len(sessions))
	for _, session := range sessions {
		block := s.date.Render(FormatDate(session.Modified)) + "  " + SessionTitle(session)
		if session.FirstPrompt != "" {
			block += "\n" + s.prompt.Render(`  "`+TruncatePrompt(session.FirstPrompt)+`"`)
		}
		blocks = append(blocks, block)
	}

	width := 0
	for _, block := range blocks {
		width = max(width, lipgloss.Width(block))
	}
	rule := "\n" + s.rule.Render(strings.Repeat("─", width)) + "\n"
	return strings.Join(blocks, rule)
}
