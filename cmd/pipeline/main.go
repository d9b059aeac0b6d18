package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/nguyentantai21042004/transcript-forge/internal/config"
	"github.com/nguyentantai21042004/transcript-forge/internal/export"
	"github.com/nguyentantai21042004/transcript-forge/internal/logger"
	"github.com/nguyentantai21042004/transcript-forge/internal/processor"
	"github.com/nguyentantai21042004/transcript-forge/internal/watcher"
	"github.com/nguyentantai21042004/transcript-forge/pkg/executor"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.yaml", "path to config file")
	watch := pflag.BoolP("watch", "w", false, "watch the input directory instead of converting once")
	pflag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	// Containers lie about CPU count; size GOMAXPROCS from the quota.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug(ctx, format, args...)
	}))

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exp := export.New(cfg.Export.Font, cfg.Export.FontSize, cfg.Export.HeadingColor, log)
	proc := processor.New(cfg, exp, executor.New(), log)

	log.Info(ctx, "Transcript pipeline starting")
	log.Info(ctx, "Strategy: %s, headings: %v, sentences/paragraph: %d",
		cfg.Pipeline.Strategy, cfg.Pipeline.DetectHeadingsEnabled(), cfg.Pipeline.SentencesPerParagraph)

	// Positional arguments are individual transcripts to convert.
	if files := pflag.Args(); len(files) > 0 {
		exitCode := 0
		for _, path := range files {
			if err := proc.Process(ctx, path); err != nil {
				log.Error(ctx, "Failed to convert %s: %v", path, err)
				exitCode = 1
			}
		}
		os.Exit(exitCode)
	}

	if !*watch {
		if err := proc.ProcessDir(ctx, cfg.Paths.Input); err != nil {
			log.Error(ctx, "Conversion failed: %v", err)
			os.Exit(1)
		}
		return
	}

	runWatch(ctx, cfg, proc, log)
}

// runWatch converts transcripts as they appear in the input directory
// until SIGINT or SIGTERM.
func runWatch(ctx context.Context, cfg *config.Config, proc processor.Processor, log logger.Logger) {
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	log.Info(ctx, "Transcript pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
