package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vamsipaul1/futurefit/internal/app"
	"github.com/vamsipaul1/futurefit/internal/assessment"
	"github.com/vamsipaul1/futurefit/internal/questiongen"
)

var genQuestionsCmd = &cobra.Command{
	Use:   "gen-questions --skill <id>",
	Short: "Generate question bank entries for a skill with the configured LLM provider",
	Long: `Generates new quiz questions for a skill and inserts them into the
question bank. Existing prompts for the skill are passed to the model so it
avoids duplicates. Questions that fail validation are dropped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skillID, _ := cmd.Flags().GetString("skill")
		skillName, _ := cmd.Flags().GetString("name")
		level, _ := cmd.Flags().GetString("level")
		count, _ := cmd.Flags().GetInt("count")

		if skillName == "" {
			skillName = skillID
		}

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

		ctx := context.Background()
		provider, err := a.Provider(ctx)
		if err != nil {
			return err
		}

		repo := a.Store.QuestionRepo()
		existing, err := repo.FindQuestions(ctx, skillID, nil)
		if err != nil {
			return fmt.Errorf("load existing questions: %w", err)
		}
		prompts := make([]string, 0, len(existing))
		for _, q := range existing {
			prompts = append(prompts, q.Prompt)
		}

		gen := questiongen.New(provider, questiongen.DefaultConfig(), log)
		questions, err := gen.Generate(ctx, questiongen.GenerateInput{
			SkillID:         skillID,
			SkillName:       skillName,
			Level:           assessment.Level(level),
			Count:           count,
			ExistingPrompts: prompts,
		})
		if err != nil {
			return err
		}

		for _, q := range questions {
			if err := repo.Insert(ctx, q); err != nil {
				return fmt.Errorf("insert question %q: %w", q.ID, err)
			}
		}

		fmt.Printf("Generated %d questions for %s (%d in bank).\n",
			len(questions), skillID, len(existing)+len(questions))
		return nil
	},
}

func init() {
	genQuestionsCmd.Flags().String("skill", "", "Skill ID to generate questions for")
	genQuestionsCmd.Flags().String("name", "", "Skill display name for the prompt (defaults to the skill ID)")
	genQuestionsCmd.Flags().String("level", "", "Target difficulty: beginner, intermediate, or advanced (empty for mixed)")
	genQuestionsCmd.Flags().IntP("count", "n", 15, "Number of questions to request")
	genQuestionsCmd.MarkFlagRequired("skill")

	rootCmd.AddCommand(genQuestionsCmd)
}
