package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analyses",
	Long:  "Reads the local history and prints a table of saved analyses, most recent first.",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	records, corrupted, err := st.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%-14s %-20s %-22s %-6s %s\n", "ID", "Company", "Role", "Score", "Analyzed")
	fmt.Println(strings.Repeat("─", 82))

	for _, rec := range records {
		company := rec.Company
		if company == "" {
			company = "-"
		}
		role := rec.Role
		if role == "" {
			role = "-"
		}
		fmt.Printf("%-14s %-20s %-22s %-6d %s\n",
			rec.ID, truncate(company, 20), truncate(role, 22), rec.FinalScore,
			rec.CreatedAt.Format("02 Jan 2006 15:04"))
	}

	fmt.Printf("\nTotal: %d analyses\n", len(records))
	if corrupted > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d corrupted history entries were skipped\n", corrupted)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
