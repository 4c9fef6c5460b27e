package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vamsipaul1/futurefit/internal/app"
	"github.com/vamsipaul1/futurefit/internal/assessment"
)

var generateCmd = &cobra.Command{
	Use:   "generate --skill <id> [--skill <id> ...]",
	Short: "Generate an assessment for the selected skills",
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, _ := cmd.Flags().GetStringSlice("skill")
		userID, _ := cmd.Flags().GetString("user")

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		a, err := app.New(app.Options{DBPath: dbPath, Log: log})
		if err != nil {
			return err
		}
		defer a.Close()

		reqs := make([]assessment.SkillRequest, 0, len(skills))
		for _, s := range skills {
			reqs = append(reqs, assessment.SkillRequest{SkillID: s})
		}

		result, err := a.Orchestrator.Generate(context.Background(), reqs, userID)
		if err != nil {
			var insufficient *assessment.InsufficientQuestionsError
			if errors.As(err, &insufficient) {
				return fmt.Errorf("skill %q has only %d questions, %d required; seed more questions first",
					insufficient.SkillID, insufficient.Found, insufficient.Required)
			}
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	generateCmd.Flags().StringSlice("skill", nil, "Skill ID to assess (repeatable)")
	generateCmd.Flags().String("user", "", "User ID for attempt tracking (empty for anonymous)")
	generateCmd.MarkFlagRequired("skill")
}
