package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kodnest/prepkit/internal/export"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the report for a saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	fmt.Print(export.Format(*rec, nil))
	return nil
}
