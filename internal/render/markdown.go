package render

import (
	"fmt"
	"strings"

	"github.com/strrl/wherewasi/pkg/models"
)

// Markdown formats projects as a Markdown document
func Markdown(projects []models.Project) string {
	lines := []string{"# " + Title, ""}

	for _, project := range projects {
		lines = append(lines,
			"## "+project.Name,
			"",
			fmt.Sprintf("**Last Active:** %s | **Directory:** `%s`", FormatDate(project.LastActive), ShortPath(project.Path)),
			"",
		)

		if project.Description != "" {
			lines = append(lines, "*"+project.Description+"*", "")
		}

		lines = append(lines, "### Sessions", "")
		for _, session := range project.Sessions {
			lines = append(lines, fmt.Sprintf("- **%s** — %s", FormatDate(session.Modified), SessionTitle(session)))
			if session.FirstPrompt != "" {
				lines = append(lines, fmt.Sprintf(`  > "%s"`, TruncatePrompt(session.FirstPrompt)))
			}
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
