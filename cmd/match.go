package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vamsipaul1/futurefit/internal/career"
)

var matchCmd = &cobra.Command{
	Use:   "match <ratings.json>",
	Short: "Score trait ratings against the career catalogue",
	Long: `Reads a JSON object mapping trait IDs to ratings on a 1-6 scale,
e.g. {"problem-solving": 5, "communication": 3}, and prints the matching
roles ranked by fit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("output-json")

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read ratings file: %w", err)
		}

		var ratings map[string]int
		if err := json.Unmarshal(raw, &ratings); err != nil {
			return fmt.Errorf("parse ratings file: %w", err)
		}

		engine := career.NewEngine(career.DefaultCatalog(), career.DefaultConfig(), log)
		matches := engine.Score(ratings)

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(matches)
		}

		if len(matches) == 0 {
			fmt.Println("No matching roles found.")
			return nil
		}

		fmt.Printf("%-4s  %-28s  %-5s  %s\n", "#", "Role", "Fit", "Why")
		fmt.Println(strings.Repeat("─", 90))
		for i, m := range matches {
			why := strings.Join(m.MatchReasons, "; ")
			fmt.Printf("%-4d  %-28s  %3d%%  %s\n", i+1, truncate(m.Title, 28), m.MatchScore, why)
		}
		return nil
	},
}

func init() {
	matchCmd.Flags().Bool("output-json", false, "Print matches as JSON")
}

// truncate caps s for fixed-width table cells.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
