package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kodnest/prepkit/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Interactively work through a saved analysis",
	Long:  "Opens a TUI over a saved analysis: tick off checklist items and mark skills as know/practice. Confidence changes are saved back to history and the score updates live.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	st, closeStore, err := openHistory(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	rec, err := st.GetByID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load history: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "no analysis with id %s\n", args[0])
		os.Exit(1)
	}

	if err := review.Run(st, *rec); err != nil {
		fmt.Fprintf(os.Stderr, "review TUI failed: %v\n", err)
		os.Exit(1)
	}
	return nil
}
