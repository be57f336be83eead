package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strrl/wherewasi/internal/render"
	"github.com/strrl/wherewasi/pkg/models"
)

// NewDebugCommand creates the debug-session command
func NewDebugCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "debug-session <session-id>",
		Short: "Print everything known about a single session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			projects, err := scanProjects(cfg)
			if err != nil {
				return err
			}

			sessionID := args[0]
			project, session := findSession(projects, sessionID)
			if session == nil {
				return fmt.Errorf("session '%s' not found under %s", sessionID, cfg.ProjectsDir)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Debugging session: %s\n", sessionID)
			fmt.Fprintln(out, "==========================================")
			fmt.Fprintf(out, "Project:      %s\n", project.Name)
			fmt.Fprintf(out, "Path:         %s\n", project.Path)
			fmt.Fprintf(out, "Source:       %s\n", session.Source)
			fmt.Fprintf(out, "Created:      %s\n", session.Created.Format(time.RFC3339))
			fmt.Fprintf(out, "Modified:     %s\n", session.Modified.Format(time.RFC3339))
			fmt.Fprintf(out, "Summary:      %s\n", render.SessionTitle(*session))
			fmt.Fprintf(out, "First Prompt: %s\n", session.FirstPrompt)
			return nil
		},
	}
}

func findSession(projects []models.Project, id string) (*models.Project, *models.Session) {
	for i := range projects {
		for j := range projects[i].Sessions {
			if projects[i].Sessions[j].ID == id {
				return &projects[i], &projects[i].Sessions[j]
			}
		}
	}
	return nil, nil
}
