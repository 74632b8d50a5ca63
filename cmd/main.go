package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wgomg/sumario/internal/config"
	"github.com/wgomg/sumario/internal/digest"
	"github.com/wgomg/sumario/internal/llm"
	"github.com/wgomg/sumario/internal/metrics"
	"github.com/wgomg/sumario/internal/processor"
	"github.com/wgomg/sumario/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sumario",
		Short:         "Summarize email bodies and highlight the action items in them",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newServeCmd(), newSummarizeCmd(), newHighlightCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *utils.Logger {
	var fileOpts *utils.LogFileOptions
	if cfg.App.LogFile.Path != "" {
		fileOpts = &utils.LogFileOptions{
			Path:       cfg.App.LogFile.Path,
			MaxSizeMB:  cfg.App.LogFile.MaxSizeMB,
			MaxBackups: cfg.App.LogFile.MaxBackups,
			MaxAgeDays: cfg.App.LogFile.MaxAgeDays,
			Compress:   cfg.App.LogFile.Compress,
		}
	}
	return utils.NewLoggerWithFile(cfg.App.LogLevel, cfg.App.RawBodyLog, fileOpts)
}

// newDigestService wires the engine, the optional hosted model and the cache.
func newDigestService(cfg *config.Config, logger *utils.Logger, m *metrics.Metrics) (*digest.Service, error) {
	opts := []digest.Option{}

	llmClient, err := llm.NewClient(cfg, logger)
	switch {
	case err == nil:
		opts = append(opts, digest.WithSummarizer(llmClient))
	case errors.Is(err, llm.ErrNotConfigured):
		logger.Info(nil, "LLM_TOKEN not set, hosted model path disabled")
	default:
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	if cfg.Cache.Enabled {
		cache, err := utils.NewResultCache[digest.Result](cfg.Cache.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to create digest cache: %w", err)
		}
		opts = append(opts, digest.WithCache(cache))
	}

	if m != nil {
		opts = append(opts, digest.WithRecorder(m))
	}

	return digest.NewService(processor.NewEngine(nil), cfg, logger, opts...), nil
}
