package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vamsipaul1/futurefit/internal/app"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.txt>",
	Short: "Analyze a resume with the configured LLM provider",
	Long: `Sends resume text to the configured model and prints a structured
analysis: summary, detected skills, strengths, gaps, and suggested roles.
Pass "-" to read the resume from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("output-json")

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		var raw []byte
		if args[0] == "-" {
			raw, err = io.ReadAll(os.Stdin)
		} else {
			raw, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		a, err := app.New(app.Options{DBPath: dbPath, Log: log})
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		analyzer, err := a.Analyzer(ctx)
		if err != nil {
			return err
		}

		analysis, err := analyzer.Analyze(ctx, string(raw))
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(analysis)
		}

		sep := strings.Repeat("─", 60)

		fmt.Println("Summary")
		fmt.Println(sep)
		fmt.Println(analysis.Summary)

		fmt.Println()
		fmt.Println("Skills")
		fmt.Println(sep)
		for _, s := range analysis.Skills {
			fmt.Printf("  %-24s  %s\n", s.Name, s.Level)
		}

		printList := func(title string, items []string) {
			if len(items) == 0 {
				return
			}
			fmt.Println()
			fmt.Println(title)
			fmt.Println(sep)
			for _, it := range items {
				fmt.Printf("  - %s\n", it)
			}
		}
		printList("Strengths", analysis.Strengths)
		printList("Gaps", analysis.Gaps)
		printList("Suggested Roles", analysis.SuggestedRoles)

		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("output-json", false, "Print the analysis as JSON")
}
