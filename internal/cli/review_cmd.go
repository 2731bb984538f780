package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/cutcoach/internal/app"
	"github.com/alexanderramin/cutcoach/internal/cli/formatter"
	"github.com/alexanderramin/cutcoach/internal/coach"
	"github.com/alexanderramin/cutcoach/internal/domain"
	"github.com/alexanderramin/cutcoach/internal/media"
	"github.com/spf13/cobra"
)

const reviewWidth = 80

var errNoSubmission = errors.New("one of --video or --script is required")

func newReviewCmd(a *App) *cobra.Command {
	var (
		analysisPath string
		sub          submission
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Grade a homework attempt against a saved analysis",
		Example: `  cutcoach review --analysis ref.json --video attempt.mp4
  cutcoach review --analysis ref.json --script script.txt
  cat script.txt | cutcoach review --analysis ref.json --script -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sub.empty() {
				if !a.interactive() {
					return errNoSubmission
				}
				if err := wizardSubmission(&sub).Run(); err != nil {
					return err
				}
			}
			return runReview(cmd, a, analysisPath, sub, asJSON)
		},
	}

	cmd.Flags().StringVar(&analysisPath, "analysis", "", "analysis JSON written by analyze --json")
	cmd.Flags().StringVar(&sub.video, "video", "", "homework video file")
	cmd.Flags().StringVar(&sub.scriptPath, "script", "", "homework script file, or - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the review as JSON")
	_ = cmd.MarkFlagRequired("analysis")
	cmd.MarkFlagsMutuallyExclusive("video", "script")

	return cmd
}

func runReview(cmd *cobra.Command, a *App, analysisPath string, sub submission, asJSON bool) error {
	c, err := a.coach()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(media.ExpandHome(analysisPath))
	if err != nil {
		return fmt.Errorf("reading analysis: %w", err)
	}
	analysis, err := coach.DecodeAnalysis(data)
	if err != nil {
		return fmt.Errorf("%s: %w", analysisPath, err)
	}

	s, err := app.ResumeSession(analysis).SelectMode(sub.mode())
	if err != nil {
		return err
	}

	switch sub.mode() {
	case domain.ModeVideo:
		ref, err := media.Stat(sub.video)
		if err != nil {
			err = fmt.Errorf("%w: %v", app.ErrUnreadable, err)
			app.LogRejected(c.Logger(), s, "review_video", err)
			return newUserError(err, c.MaxMediaBytes())
		}
		stop := a.startSpinner(cmd, loadingReview)
		s = c.SubmitVideo(cmd.Context(), s, ref)
		stop()
	default:
		text, err := readScript(cmd.InOrStdin(), sub)
		if err != nil {
			return err
		}
		stop := a.startSpinner(cmd, loadingReview)
		s = c.SubmitScript(cmd.Context(), s, text)
		stop()
	}
	if s.Err != nil {
		return newUserError(s.Err, c.MaxMediaBytes())
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), s.Review)
	}
	md := formatter.NewMarkdown(reviewWidth, a.MarkdownAuto)
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReview(s.Review, md))
	return nil
}

// readScript returns the prompted text, stdin for "-", or the file contents.
func readScript(stdin io.Reader, sub submission) (string, error) {
	switch {
	case sub.scriptText != "":
		return sub.scriptText, nil
	case sub.scriptPath == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading script from stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(media.ExpandHome(sub.scriptPath))
		if err != nil {
			return "", fmt.Errorf("reading script: %w", err)
		}
		return string(data), nil
	}
}
