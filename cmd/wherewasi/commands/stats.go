package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strrl/wherewasi/internal/db"
	"github.com/strrl/wherewasi/internal/render"
	"github.com/strrl/wherewasi/pkg/models"
)

// NewStatsCommand creates the stats command
func NewStatsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show event statistics per project from the raw session logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			stats, err := db.EventStats(cmd.Context(), cfg.ProjectsDir)
			if err != nil {
				return fmt.Errorf("failed to compute stats: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, "No session logs found")
				return nil
			}
			fmt.Fprintln(out, statsTable(stats))
			return nil
		},
	}
}

func statsTable(stats []models.ProjectStats) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Directory", "Sessions", "Events", "First", "Last").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, s := range stats {
		path := s.Path
		if path == "" {
			path = "(unknown)"
		} else {
			path = render.ShortPath(path)
		}
		t.Row(
			path,
			strconv.Itoa(s.SessionCount),
			strconv.Itoa(s.EventCount),
			formatEventTime(s.FirstEvent),
			formatEventTime(s.LastEvent),
		)
	}

	return t.Render()
}

func formatEventTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(timeLayout)
}
