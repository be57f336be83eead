package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strrl/wherewasi/internal/config"
	"github.com/strrl/wherewasi/internal/logging"
	"github.com/strrl/wherewasi/internal/render"
	"github.com/strrl/wherewasi/internal/sessions"
	"github.com/strrl/wherewasi/internal/tui"
	"github.com/strrl/wherewasi/pkg/models"
	"golang.org/x/term"
)

type reportFlags struct {
	markdown    bool
	text        bool
	interactive bool
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var flags reportFlags

	rootCmd := &cobra.Command{
		Use:   "wherewasi",
		Short: "Show where you left off in recent Claude sessions",
		Long: `wherewasi scans the Claude projects directory and reports recently active
projects with their sessions, most recent first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, v, flags)
		},
	}

	rootCmd.Flags().BoolVarP(&flags.markdown, "markdown", "m", false, "Output as Markdown")
	rootCmd.Flags().BoolVarP(&flags.text, "text", "t", false, "Output as plain text")
	rootCmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Browse projects interactively")
	rootCmd.MarkFlagsMutuallyExclusive("markdown", "text", "interactive")
	rootCmd.Flags().IntP("limit", "n", 0, "Show only the N most recent projects (0 for all)")
	_ = v.BindPFlag(config.KeyLimit, rootCmd.Flags().Lookup("limit"))

	persistent := rootCmd.PersistentFlags()
	persistent.String("root", "", "Projects directory (default ~/.claude/projects)")
	persistent.String("mode", "", "Session storage shape: auto, jsonl or index")
	persistent.String("log-level", "", "Log level: debug, info, warn or error")
	_ = v.BindPFlag(config.KeyProjectsDir, persistent.Lookup("root"))
	_ = v.BindPFlag(config.KeyMode, persistent.Lookup("mode"))
	_ = v.BindPFlag(config.KeyLogLevel, persistent.Lookup("log-level"))

	rootCmd.AddCommand(NewShowCommand(v))
	rootCmd.AddCommand(NewDebugCommand(v))
	rootCmd.AddCommand(NewStatsCommand(v))
	rootCmd.AddCommand(NewConfigCommand(v))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves settings and applies the log level
func loadConfig(v *viper.Viper) (config.Config, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, err
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return config.Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	return cfg, nil
}

func scanProjects(cfg config.Config) ([]models.Project, error) {
	scanner := &sessions.Scanner{
		Root:            cfg.ProjectsDir,
		Mode:            cfg.Mode,
		DescriptionFile: cfg.DescriptionFile,
		Logger:          logging.NewLogger("scan"),
	}

	projects, err := scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}
	return projects, nil
}

func runReport(cmd *cobra.Command, v *viper.Viper, flags reportFlags) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}

	switch {
	case flags.markdown:
		cfg.Format = config.FormatMarkdown
	case flags.text:
		cfg.Format = config.FormatText
	case flags.interactive:
		cfg.Format = config.FormatInteractive
	}

	projects, err := scanProjects(cfg)
	if err != nil {
		return err
	}
	if cfg.Limit > 0 && len(projects) > cfg.Limit {
		projects = projects[:cfg.Limit]
	}

	out := cmd.OutOrStdout()
	switch cfg.Format {
	case config.FormatMarkdown:
		fmt.Fprint(out, render.Markdown(projects))
	case config.FormatText:
		fmt.Fprint(out, render.Text(projects))
	case config.FormatInteractive:
		if len(projects) == 0 {
			fmt.Fprintln(out, "No projects found")
			return nil
		}
		if err := tui.ShowTUI(projects); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
	default:
		fmt.Fprintln(out, render.Table(projects, terminalWidth(out)))
	}

	return nil
}

// terminalWidth reports the width of out when it is a terminal, otherwise 0
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
