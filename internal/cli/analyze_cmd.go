package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cutcoach/internal/app"
	"github.com/alexanderramin/cutcoach/internal/cli/formatter"
	"github.com/alexanderramin/cutcoach/internal/media"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(a *App) *cobra.Command {
	var (
		contextText string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <video>",
		Short: "Deconstruct a reference video into a learning plan",
		Example: `  cutcoach analyze ref.mp4 --context "快节奏转场"
  cutcoach analyze ref.mp4 --json > ref.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("context") && a.interactive() {
				if err := wizardContext(&contextText).Run(); err != nil {
					return err
				}
			}
			return runAnalyze(cmd, a, args[0], contextText, asJSON)
		},
	}

	cmd.Flags().StringVar(&contextText, "context", "", "what you want to learn from the video")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON, usable as review --analysis input")

	return cmd
}

func runAnalyze(cmd *cobra.Command, a *App, path, contextText string, asJSON bool) error {
	c, err := a.coach()
	if err != nil {
		return err
	}

	s := app.NewSession().SetContext(strings.TrimSpace(contextText))
	ref, err := media.Stat(path)
	if err != nil {
		err = fmt.Errorf("%w: %v", app.ErrUnreadable, err)
		app.LogRejected(c.Logger(), s, "intake", err)
		return newUserError(err, c.MaxMediaBytes())
	}

	stop := a.startSpinner(cmd, loadingAnalysis)
	s = c.Intake(cmd.Context(), s, ref)
	stop()
	if s.Err != nil {
		return newUserError(s.Err, c.MaxMediaBytes())
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), s.Analysis)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnalysis(s.Analysis))
	return nil
}

// startSpinner shows a spinner on stderr for interactive runs and returns
// the function that stops it.
func (a *App) startSpinner(cmd *cobra.Command, message string) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), message)
}
