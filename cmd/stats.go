package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vamsipaul1/futurefit/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question bank and attempt statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

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
		skills, err := s.QuestionRepo().Skills(ctx)
		if err != nil {
			return fmt.Errorf("query skills: %w", err)
		}

		if len(skills) == 0 {
			fmt.Println("Question bank is empty. Run `futurefit seed` to load one.")
			return nil
		}

		ids := make([]string, 0, len(skills))
		for id := range skills {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Println("Question Bank")
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-28s  %s\n", "Skill", "Questions")
		fmt.Println(strings.Repeat("─", 44))
		total := 0
		for _, id := range ids {
			fmt.Printf("%-28s  %9d\n", id, skills[id])
			total += skills[id]
		}
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-28s  %9d\n", "TOTAL", total)

		if userID != "" {
			n, err := s.AttemptRepo().AttemptCount(ctx, userID)
			if err != nil {
				return fmt.Errorf("query attempts: %w", err)
			}
			fmt.Printf("\nQuestions seen by %s: %d\n", userID, n)
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Also show attempt counts for this user")
}
