package render

import (
	"os"
	"strings"
	"time"

	"github.com/strrl/wherewasi/pkg/models"
)

// Title heads every report
const Title = "Where Was I?"

const (
	noSummary       = "(no summary)"
	maxPromptLength = 70
	ellipsis        = "..."
)

// userHomeDir is swapped in tests
var userHomeDir = os.UserHomeDir

// FormatDate renders "Jan  3" / "Jan 19"; the day is space padded so columns line up
func FormatDate(t time.Time) string {
	return t.Format("Jan _2")
}

// ShortPath replaces the home directory prefix with ~
func ShortPath(path string) string {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return path
	}
	home = strings.TrimRight(home, "/")
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+"/") {
		return "~" + path[len(home):]
	}
	return path
}

// TruncatePrompt shortens prompts longer than 70 characters to 67 plus an ellipsis
func TruncatePrompt(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= maxPromptLength {
		return prompt
	}
	return string(runes[:maxPromptLength-len(ellipsis)]) + ellipsis
}

// SessionTitle is the session summary, or "(no summary)" when there is none
func SessionTitle(session models.Session) string {
	if session.Summary == "" {
		return noSummary
	}
	return session.Summary
}
