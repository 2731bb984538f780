package cli

import (
	"context"
	"errors"

	"github.com/alexanderramin/cutcoach/internal/app"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the collaborators used by CLI commands.
type App struct {
	Coach  *app.Coach
	Logger *zap.Logger

	// Setup runs before every command with the --config and --verbose
	// values and is expected to populate Coach and Logger.
	Setup func(configPath string, verbose bool) error

	// IsInteractive reports whether stdin is a terminal. Prompts and the
	// TUI are only used when it returns true.
	IsInteractive func() bool

	// MarkdownAuto picks the glamour style of one-shot output from the
	// terminal background. The TUI always uses the dark style.
	MarkdownAuto bool
}

var errNotConfigured = errors.New("coach is not configured")

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) coach() (*app.Coach, error) {
	if a.Coach == nil {
		return nil, errNotConfigured
	}
	return a.Coach, nil
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "cutcoach" command and registers all
// subcommands against the provided App. Without arguments it opens the TUI.
func NewRootCmd(a *App) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "cutcoach",
		Short:         "Learn video editing by deconstructing reference videos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Bare non-interactive invocation only prints help.
			if a.Setup == nil || (cmd == cmd.Root() && !a.interactive()) {
				return nil
			}
			return a.Setup(configPath, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return cmd.Help()
			}
			return runTUI(cmd.Context(), a)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.cutcoach/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log warnings to stderr")

	root.AddCommand(
		newAnalyzeCmd(a),
		newReviewCmd(a),
	)

	return root
}

func runTUI(ctx context.Context, a *App) error {
	if _, err := a.coach(); err != nil {
		return err
	}
	p := tea.NewProgram(newAppModel(ctx, a), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
