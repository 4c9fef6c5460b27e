package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vamsipaul1/futurefit/internal/assessment"
	"github.com/vamsipaul1/futurefit/internal/store"
)

// seedQuestion is the question-bank file format. Answer keys stay in the
// bank and the database only; they are stripped before questions reach a
// quiz-taker.
type seedQuestion struct {
	ID           string   `json:"id"`
	SkillID      string   `json:"skillId"`
	Type         string   `json:"type"`
	Level        string   `json:"level,omitempty"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options,omitempty"`
	Answer       string   `json:"answer,omitempty"`
	ResponseHint string   `json:"responseHint,omitempty"`
}

var seedCmd = &cobra.Command{
	Use:   "seed <questions.json>",
	Short: "Load a question bank file into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read question bank: %w", err)
		}

		var bank []seedQuestion
		if err := json.Unmarshal(raw, &bank); err != nil {
			return fmt.Errorf("parse question bank: %w", err)
		}

		dbPath, err := resolveDBPath()
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.QuestionRepo()

		for i, sq := range bank {
			if sq.ID == "" || sq.SkillID == "" || sq.Prompt == "" {
				return fmt.Errorf("question %d: id, skillId, and prompt are required", i)
			}
			q := assessment.Question{
				ID:           sq.ID,
				SkillID:      sq.SkillID,
				Type:         assessment.QuestionType(sq.Type),
				Level:        assessment.Level(sq.Level),
				Prompt:       sq.Prompt,
				Options:      sq.Options,
				Answer:       sq.Answer,
				ResponseHint: sq.ResponseHint,
			}
			if err := repo.Insert(ctx, q); err != nil {
				return fmt.Errorf("insert question %q: %w", sq.ID, err)
			}
		}

		fmt.Printf("Loaded %d questions.\n", len(bank))
		return nil
	},
}
