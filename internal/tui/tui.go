package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/strrl/wherewasi/internal/render"
	"github.com/strrl/wherewasi/pkg/models"
)

type viewMode int

const (
	projectView viewMode = iota
	sessionView
)

type model struct {
	projects        []models.Project
	currentMode     viewMode
	projectCursor   int
	sessionCursor   int
	selectedProject *models.Project
	viewport        viewport.Model
	leftViewport    viewport.Model // Sessions list in split view
	rightViewport   viewport.Model // Session details in split view
	ready           bool
	width           int
	height          int
}

func initialModel(projects []models.Project) model {
	return model{
		projects:      projects,
		currentMode:   projectView,
		projectCursor: 0,
		sessionCursor: 0,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		leftWidth := msg.Width/2 - 1
		rightWidth := msg.Width - leftWidth - 1
		viewHeight := msg.Height - 3

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewHeight)
			m.leftViewport = viewport.New(leftWidth, viewHeight)
			m.rightViewport = viewport.New(rightWidth, viewHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewHeight
			m.leftViewport.Width = leftWidth
			m.leftViewport.Height = viewHeight
			m.rightViewport.Width = rightWidth
			m.rightViewport.Height = viewHeight
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.currentMode == projectView {
				if m.projectCursor > 0 {
					m.projectCursor--
				}
			} else if m.sessionCursor > 0 {
				m.sessionCursor--
			}
			m.updateViewport()
			return m, nil

		case "down", "j":
			if m.currentMode == projectView {
				if m.projectCursor < len(m.projects)-1 {
					m.projectCursor++
				}
			} else if m.selectedProject != nil && m.sessionCursor < len(m.selectedProject.Sessions)-1 {
				m.sessionCursor++
			}
			m.updateViewport()
			return m, nil

		case "enter":
			if m.currentMode == projectView && m.projectCursor < len(m.projects) {
				project := m.projects[m.projectCursor]
				m.selectedProject = &project
				m.currentMode = sessionView
				m.sessionCursor = 0
				m.updateViewport()
			}
			return m, nil

		case "esc", "backspace":
			if m.currentMode == sessionView {
				m.currentMode = projectView
				m.selectedProject = nil
				m.sessionCursor = 0
				m.updateViewport()
			}
			return m, nil
		}
	}

	if m.currentMode == projectView {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		var leftCmd, rightCmd tea.Cmd
		m.leftViewport, leftCmd = m.leftViewport.Update(msg)
		m.rightViewport, rightCmd = m.rightViewport.Update(msg)
		cmds = append(cmds, leftCmd, rightCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) updateViewport() {
	if m.currentMode == projectView {
		m.viewport.SetContent(m.renderProjects())
		return
	}
	m.leftViewport.SetContent(m.renderSessionsList())
	m.rightViewport.SetContent(m.renderDetails())
}

func (m model) renderProjects() string {
	if len(m.projects) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true).Render("No projects found")
	}

	var s strings.Builder
	for i, project := range m.projects {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.projectCursor {
			cursor = "> "
			style = style.Foreground(lipgloss.Color("212")).Bold(true)
		}

		line := fmt.Sprintf("%s%s  %s (%d sessions)",
			cursor,
			render.FormatDate(project.LastActive),
			project.Name,
			len(project.Sessions))
		s.WriteString(style.Render(line) + "\n")

		if project.Description != "" {
			descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
			s.WriteString(descStyle.Render("          "+project.Description) + "\n")
		}
	}

	return s.String()
}

func (m model) renderSessionsList() string {
	if m.selectedProject == nil {
		return "No project selected"
	}

	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	s.WriteString(headerStyle.Render("Sessions") + "\n")
	s.WriteString(strings.Repeat("─", max(m.leftViewport.Width-2, 10)) + "\n\n")

	for i, session := range m.selectedProject.Sessions {
		cursor := "  "
		dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
		if i == m.sessionCursor {
			cursor = "> "
			dateStyle = dateStyle.Foreground(lipgloss.Color("212")).Bold(true)
			idStyle = idStyle.Foreground(lipgloss.Color("245"))
		}

		line := fmt.Sprintf("%s%s  %s", cursor, render.FormatDate(session.Modified), render.SessionTitle(session))
		s.WriteString(dateStyle.Render(truncate(line, max(m.leftViewport.Width-1, 20))) + "\n")

		if session.ID != "" {
			s.WriteString(idStyle.Render("  "+truncate(session.ID, 12)) + "\n")
		}

		if i < len(m.selectedProject.Sessions)-1 {
			s.WriteString("\n")
		}
	}

	return s.String()
}

func (m model) renderDetails() string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	s.WriteString(headerStyle.Render("Session") + "\n")
	s.WriteString(strings.Repeat("─", max(m.rightViewport.Width-2, 10)) + "\n\n")

	if m.selectedProject == nil || m.sessionCursor >= len(m.selectedProject.Sessions) {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
		s.WriteString(emptyStyle.Render("No session selected"))
		return s.String()
	}

	session := m.selectedProject.Sessions[m.sessionCursor]
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	wrapWidth := max(m.rightViewport.Width-5, 20)

	field := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + "\n")
		for _, line := range wrapText(value, wrapWidth) {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		}
		s.WriteString("\n")
	}

	field("Summary", render.SessionTitle(session))
	if session.FirstPrompt != "" {
		field("First prompt", session.FirstPrompt)
	}
	field("Created", session.Created.Format("2006-01-02 15:04"))
	field("Modified", session.Modified.Format("2006-01-02 15:04"))
	if session.ID != "" {
		field("Session ID", session.ID)
	}
	if session.Source != "" {
		field("Source", session.Source)
	}

	return s.String()
}

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	currentLine := words[0]
	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) > width {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine += " " + word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	if m.currentMode == projectView {
		return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), footer)
	}
	return fmt.Sprintf("%s\n%s\n%s", header, m.renderSplitView(), footer)
}

func (m model) renderSplitView() string {
	leftStyle := lipgloss.NewStyle().
		Width(m.leftViewport.Width).
		Height(m.leftViewport.Height)

	rightStyle := lipgloss.NewStyle().
		Width(m.rightViewport.Width).
		Height(m.rightViewport.Height)

	dividerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238")).
		Height(m.leftViewport.Height)

	leftContent := leftStyle.Render(m.leftViewport.View())
	rightContent := rightStyle.Render(m.rightViewport.View())

	divider := strings.TrimSuffix(strings.Repeat("│\n", max(m.leftViewport.Height, 1)), "\n")

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftContent,
		dividerStyle.Render(divider),
		rightContent,
	)
}

func (m model) renderHeader() string {
	title := render.Title
	if m.currentMode == sessionView && m.selectedProject != nil {
		title = fmt.Sprintf("%s - %s", render.Title, render.ShortPath(m.selectedProject.Path))
	}

	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("63"))

	return style.Render(title)
}

func (m model) renderFooter() string {
	info := "↑/↓: navigate • enter: select"
	if m.currentMode == sessionView {
		info = "↑/↓: navigate • esc: back"
	}
	info += " • q: quit"

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return style.Render(info)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// ShowTUI runs the interactive browser until the user quits
func ShowTUI(projects []models.Project) error {
	p := tea.NewProgram(
		initialModel(projects),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
