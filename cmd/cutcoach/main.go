package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/cutcoach/internal/app"
	"github.com/alexanderramin/cutcoach/internal/cli"
	"github.com/alexanderramin/cutcoach/internal/coach"
	"github.com/alexanderramin/cutcoach/internal/config"
	"github.com/alexanderramin/cutcoach/internal/llm"
	"github.com/alexanderramin/cutcoach/internal/logging"
	"github.com/alexanderramin/cutcoach/internal/media"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &cli.App{}

	// Detect interactive terminal for prompts and the TUI.
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	a.MarkdownAuto = isatty.IsTerminal(os.Stdout.Fd())

	a.Setup = func(configPath string, verbose bool) error {
		return wire(ctx, a, configPath, verbose)
	}
	defer func() {
		if a.Logger != nil {
			_ = a.Logger.Sync()
		}
	}()

	return cli.NewRootCmd(a).ExecuteContext(ctx)
}

// wire loads configuration and builds the coach behind the CLI.
func wire(ctx context.Context, a *cli.App, configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		File:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Stderr: verbose,
	})
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debug("config loaded", zap.String("path", cfg.Path))
	}

	var observer llm.Observer = llm.NewZapObserver(logger)
	if cfg.LLM.LogCalls {
		observer = llm.MultiObserver{observer, llm.NewLogObserver(os.Stderr)}
	}
	client, err := llm.NewClient(ctx, cfg.LLM, observer)
	if err != nil {
		return fmt.Errorf("creating %s client: %w", cfg.LLM.Provider, err)
	}

	a.Logger = logger
	a.Coach = app.NewCoach(
		coach.NewAnalysisService(client),
		coach.NewReviewService(client),
		media.NewLoader(),
		app.WithLogger(logger),
		app.WithMaxMediaBytes(cfg.MaxMediaBytes),
	)
	return nil
}
