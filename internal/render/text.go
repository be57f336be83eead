package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/strrl/wherewasi/pkg/models"
)

const (
	columnGap   = "  "
	indent      = "    "
	dateColumn  = len("Jan 02")
	headProject = "PROJECT"
	headActive  = "LAST ACTIVE"
	headDir     = "DIRECTORY"
)

// Text formats projects as fixed-width plain text
func Text(projects []models.Project) string {
	nameWidth := lipgloss.Width(headProject)
	for _, project := range projects {
		nameWidth = max(nameWidth, lipgloss.Width(project.Name))
	}
	activeWidth := lipgloss.Width(headActive)

	var b strings.Builder
	b.WriteString(Title + "\n\n")
	writeRow(&b, nameWidth, activeWidth, headProject, headActive, headDir)
	writeRow(&b, nameWidth, activeWidth,
		strings.Repeat("-", nameWidth), strings.Repeat("-", activeWidth), strings.Repeat("-", len(headDir)))

	for _, project := range projects {
		writeRow(&b, nameWidth, activeWidth, project.Name, FormatDate(project.LastActive), ShortPath(project.Path))
		if project.Description != "" {
			b.WriteString(indent + project.Description + "\n")
		}
		for _, session := range project.Sessions {
			b.WriteString(indent + FormatDate(session.Modified) + columnGap + SessionTitle(session) + "\n")
			if session.FirstPrompt != "" {
				b.WriteString(indent + strings.Repeat(" ", dateColumn) + columnGap +
					`"` + TruncatePrompt(session.FirstPrompt) + `"` + "\n")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeRow(b *strings.Builder, nameWidth, activeWidth int, name, active, dir string) {
	b.WriteString(pad(name, nameWidth) + columnGap + pad(active, activeWidth) + columnGap + dir + "\n")
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
