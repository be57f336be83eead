package render

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strrl/wherewasi/pkg/models"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	userHomeDir = func() (string, error) { return "/home/alice", nil }
	os.Exit(m.Run())
}

var longPrompt = strings.Repeat("abcdefghij", 8) // 80 characters

func sampleProjects() []models.Project {
	jan19 := time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)
	jan3 := time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)
	return []models.Project{
		{
			Name:        "app",
			Path:        "/home/alice/code/app",
			Description: "An app",
			LastActive:  jan19,
			Sessions: []models.Session{
				{Summary: "Fix bug", FirstPrompt: "please fix", Modified: jan19},
				{Modified: jan3},
			},
		},
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 19", FormatDate(time.Date(2026, 1, 19, 1, 51, 54, 0, time.UTC)))
	assert.Equal(t, "Jan  3", FormatDate(time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Dec 10", FormatDate(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)))
}

func TestShortPath(t *testing.T) {
	tests := map[string]string{
		"/home/alice/code/app": "~/code/app",
		"/home/alice":          "~",
		"/home/alicex/code":    "/home/alicex/code",
		"/tmp/project":         "/tmp/project",
		"":                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ShortPath(in), in)
	}
}

func TestShortPathWithoutHome(t *testing.T) {
	previous := userHomeDir
	t.Cleanup(func() { userHomeDir = previous })
	userHomeDir = func() (string, error) { return "", errors.New("no home") }

	assert.Equal(t, "/home/alice/code", ShortPath("/home/alice/code"))
}

func TestTruncatePrompt(t *testing.T) {
	truncated := TruncatePrompt(longPrompt)
	assert.Len(t, truncated, 70)
	assert.Equal(t, longPrompt[:67]+"...", truncated)

	exact := strings.Repeat("x", 70)
	assert.Equal(t, exact, TruncatePrompt(exact))
	assert.Equal(t, "short", TruncatePrompt("short"))

	wide := strings.Repeat("é", 71)
	assert.Equal(t, strings.Repeat("é", 67)+"...", TruncatePrompt(wide))
}

func TestMarkdown(t *testing.T) {
	want := strings.Join([]string{
		"# Where Was I?",
		"",
		"## app",
		"",
		"**Last Active:** Jan 19 | **Directory:** `~/code/app`",
		"",
		"*An app*",
		"",
		"### Sessions",
		"",
		"- **Jan 19** — Fix bug",
		`  > "please fix"`,
		"- **Jan  3** — (no summary)",
		"",
	}, "\n")
	assert.Equal(t, want, Markdown(sampleProjects()))
}

func TestMarkdownWithoutDescription(t *testing.T) {
	projects := sampleProjects()
	projects[0].Description = ""

	out := Markdown(projects)
	assert.NotContains(t, out, "*An app*")
	assert.Contains(t, out, "`~/code/app`\n\n### Sessions")
}

func TestText(t *testing.T) {
	want := strings.Join([]string{
		"Where Was I?",
		"",
		"PROJECT  LAST ACTIVE  DIRECTORY",
		"-------  -----------  ---------",
		"app      Jan 19       ~/code/app",
		"    An app",
		"    Jan 19  Fix bug",
		`            "please fix"`,
		"    Jan  3  (no summary)",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, Text(sampleProjects()))
}

func TestTextWidensProjectColumn(t *testing.T) {
	projects := sampleProjects()
	projects[0].Name = "a-much-longer-name"

	lines := strings.Split(Text(projects), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "PROJECT             LAST ACTIVE  DIRECTORY", lines[2])
	assert.Equal(t, "a-much-longer-name  Jan 19       ~/code/app", lines[4])
}

func TestTable(t *testing.T) {
	out := Table(sampleProjects(), 0)

	assert.Contains(t, out, Title)
	assert.Contains(t, out, "Directory")
	assert.Contains(t, out, "Sessions")
	assert.Contains(t, out, "~/code/app")
	assert.Contains(t, out, "Jan 19  Fix bug")
	assert.Contains(t, out, `"please fix"`)
	assert.Contains(t, out, "Jan  3  (no summary)")
	assert.NotContains(t, out, "/home/alice")
}

func TestTableSeparatesSessionsWithRule(t *testing.T) {
	cell := sessionsCell(sampleProjects()[0].Sessions, newStyles())

	want := strings.Join([]string{
		"Jan 19  Fix bug",
		`  "please fix"`,
		strings.Repeat("─", len("Jan  3  (no summary)")),
		"Jan  3  (no summary)",
	}, "\n")
	assert.Equal(t, want, cell)

	single := sessionsCell(sampleProjects()[0].Sessions[:1], newStyles())
	assert.NotContains(t, single, "─")
}

func TestSessionTitle(t *testing.T) {
	assert.Equal(t, "Fix bug", SessionTitle(models.Session{Summary: "Fix bug"}))
	assert.Equal(t, "(no summary)", SessionTitle(models.Session{}))
}

func TestPromptTruncatedInAllRenderers(t *testing.T) {
	projects := sampleProjects()
	projects[0].Sessions[0].FirstPrompt = longPrompt
	want := `"` + longPrompt[:67] + `..."`

	for name, out := range map[string]string{
		"table":    Table(projects, 0),
		"markdown": Markdown(projects),
		"text":     Text(projects),
	} {
		assert.Contains(t, out, want, name)
		assert.NotContains(t, out, longPrompt[:68], name)
	}
}

func TestEmptyRenders(t *testing.T) {
	assert.Equal(t, "# Where Was I?\n", Markdown(nil))

	text := Text(nil)
	assert.Equal(t, "Where Was I?\n\nPROJECT  LAST ACTIVE  DIRECTORY\n-------  -----------  ---------\n", text)

	table := Table(nil, 0)
	assert.Contains(t, table, Title)
	assert.Contains(t, table, "Directory")
	assert.Contains(t, table, "Sessions")
	assert.NotContains(t, table, "~")
}
