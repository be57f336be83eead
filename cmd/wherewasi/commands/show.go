package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strrl/wherewasi/internal/render"
	"github.com/strrl/wherewasi/pkg/models"
)

const timeLayout = "2006-01-02 15:04"

// NewShowCommand creates the show command
func NewShowCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show [project]",
		Short: "Show projects or sessions as a plain listing",
		Long: `Show projects or sessions in a non-interactive format.
Without arguments: lists all projects
With project name or path: lists all sessions in that project`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			projects, err := scanProjects(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				showProjects(out, projects)
				return nil
			}
			return showSessions(out, projects, args[0])
		},
	}
}

func showProjects(out io.Writer, projects []models.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found")
		return
	}

	fmt.Fprintln(out, "Projects:")
	fmt.Fprintln(out, "=========")
	for i, project := range projects {
		fmt.Fprintf(out, "%d. %s\n", i+1, project.Name)
		fmt.Fprintf(out, "   Path: %s\n", project.Path)
		fmt.Fprintf(out, "   Sessions: %d\n", len(project.Sessions))
		fmt.Fprintf(out, "   Last Active: %s\n", project.LastActive.Format(timeLayout))
		fmt.Fprintln(out)
	}
}

func showSessions(out io.Writer, projects []models.Project, name string) error {
	project := findProject(projects, name)
	if project == nil {
		return fmt.Errorf("project '%s' not found", name)
	}

	fmt.Fprintf(out, "Sessions for project '%s':\n", project.Name)
	fmt.Fprintf(out, "Path: %s\n", project.Path)
	fmt.Fprintln(out, "===================================")

	for i, session := range project.Sessions {
		id := session.ID
		if id == "" {
			id = "(unknown)"
		}
		fmt.Fprintf(out, "%d. Session ID: %s\n", i+1, id)
		fmt.Fprintf(out, "   Created: %s\n", session.Created.Format(timeLayout))
		fmt.Fprintf(out, "   Modified: %s\n", session.Modified.Format(timeLayout))
		fmt.Fprintf(out, "   Summary: %s\n", render.SessionTitle(session))
		if session.FirstPrompt != "" {
			fmt.Fprintf(out, "   First Prompt: %s\n", render.TruncatePrompt(session.FirstPrompt))
		}
		fmt.Fprintln(out)
	}

	return nil
}

// findProject matches by name first, then by exact path
func findProject(projects []models.Project, name string) *models.Project {
	for i := range projects {
		if projects[i].Name == name || projects[i].Path == name {
			return &projects[i]
		}
	}
	return nil
}
