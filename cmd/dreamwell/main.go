package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yourname/dreamwell/internal"
	"github.com/yourname/dreamwell/internal/config"
	"github.com/yourname/dreamwell/internal/storage"
)

var (
	outputFormat string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "dreamwell",
	Short: "Assess and track your sleep quality",
	Long: `DreamWell walks you through a short sleep questionnaire, keeps your
answers in local storage and scores your nights.

Examples:
  dreamwell assess
  dreamwell assess -a sleepQuality=8 -a sleepDuration=7.5 --no-prompt
  dreamwell history -o json
  dreamwell insights`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr")

	rootCmd.AddCommand(assessCmd, historyCmd, statsCmd, insightsCmd, questionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session bundles what every subcommand needs.
type session struct {
	cfg    *config.Config
	logger *internal.ZapLogger
	kv     storage.KeyValue
	store  *storage.AssessmentStore
}

func openSession(ctx context.Context) (*session, error) {
	_ = config.LoadDotEnv(".env")
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := internal.NewLogger(cfg.Env, logLevel)
	if err != nil {
		return nil, err
	}

	kv, err := storage.NewKeyValue(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.StorageBackend, err)
	}

	store := storage.NewAssessmentStore(kv, logger)
	store.Load(ctx)
	return &session{cfg: cfg, logger: logger, kv: kv, store: store}, nil
}

func (s *session) Close() {
	if err := s.kv.Close(); err != nil {
		s.logger.Warnf("failed to close storage: %v", err)
	}
	s.logger.Sync()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
