package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kodnest/prepkit/internal/analysis"
	"github.com/kodnest/prepkit/internal/export"
	"github.com/kodnest/prepkit/internal/history"
	"github.com/kodnest/prepkit/internal/store"
)

var (
	analyzeCompany string
	analyzeRole    string
	analyzeJDFile  string
	analyzeNoSave  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and print the prep report",
	Long:  "Runs the analysis engine over a company/role/JD triple, saves the result to history (unless --no-save), and prints the plain-text report. The JD is read from --jd or from stdin.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "company name (blank skips company intel)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "role title")
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd", "", "path to a file with the job description (default: read stdin)")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "run the analysis without writing it to history")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	company := analyzeCompany
	if company == "" {
		company = cfg.Defaults.Company
	}
	role := analyzeRole
	if role == "" {
		role = cfg.Defaults.Role
	}

	jdText, err := readJD(analyzeJDFile)
	if err != nil {
		logger.Error("failed to read job description", "error", err)
		os.Exit(1)
	}

	analyzer := analysis.New(nil, nil)
	rec := analyzer.Run(company, role, jdText)
	logger.Debug("analysis complete",
		"id", rec.ID,
		"base_score", rec.BaseScore,
		"rounds", len(rec.RoundMapping),
	)

	if analyzeNoSave {
		logger.Info("no-save mode enabled, analysis will not be persisted")
		// A throwaway in-memory store keeps the code path identical.
		_ = history.New(store.NewMemKV(), nil).Save(rec)
	} else {
		st, closeStore, err := openHistory(cfg)
		if err != nil {
			logger.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer closeStore()
		if err := st.Save(rec); err != nil {
			logger.Error("failed to save analysis", "error", err)
			os.Exit(1)
		}
		logger.Info("analysis saved", "id", rec.ID)
	}

	fmt.Print(export.Format(rec, nil))
	return nil
}

// readJD reads the job description from the given file path, or from stdin
// when the path is empty. An empty JD is allowed; the engine falls back to
// the generic skill set.
func readJD(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read jd file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
