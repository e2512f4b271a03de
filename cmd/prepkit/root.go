package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kodnest/prepkit/internal/config"
	"github.com/kodnest/prepkit/internal/history"
	"github.com/kodnest/prepkit/internal/store"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "prepkit",
	Short: "Placement readiness analyzer: turn a JD into a prep plan",
	Long:  "PrepKit analyzes a company/role/job-description triple into a readiness score, a 7-day study plan, a round-wise checklist, and tailored interview questions, all stored locally.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: PREPKIT_CONFIG env var or ./prepkit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > PREPKIT_CONFIG env var > "./prepkit.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("PREPKIT_CONFIG"); env != "" {
			path = env
		} else {
			path = "prepkit.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// openHistory opens the sqlite-backed history store at the configured path.
// The returned close function must be deferred by the caller.
func openHistory(cfg *config.Config) (*history.Store, func() error, error) {
	kv, err := store.NewSQLiteKV(cfg.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return history.New(kv, nil), kv.Close, nil
}
