package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kodnest/prepkit/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write the report for a saved analysis to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: <id>.txt)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	out := exportOut
	if out == "" {
		out = rec.ID + ".txt"
	}
	if err := os.WriteFile(out, []byte(export.Format(*rec, nil)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("report written to %s\n", out)
	return nil
}
