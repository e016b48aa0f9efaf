package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebrasmahmood/dutch-learning-app/internal/badges"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner statistics and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer kv.Close()

		ctx := cmd.Context()
		p, err := store.Profile(ctx)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println("No profile yet. Create one with `dutchlearn profile --name <name>`.")
			return nil
		}
		record, err := store.Progress(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%s — level %d, %d XP (%d XP to next level)\n",
			p.DisplayName, p.Level, p.TotalXP, p.XPToNextLevel())
		fmt.Printf("Sections completed: %d\n", len(record.CompletedSections))
		if record.ExamCompleted {
			fmt.Printf("Final exam: %.0f%%\n", record.ExamScore*100)
		}

		earned := badges.Earned(p, record)
		fmt.Println("Badges:")
		for _, b := range badges.All() {
			mark := " "
			if badges.Has(earned, b.ID) {
				mark = "x"
			}
			fmt.Printf("  [%s] %-14s %s\n", mark, b.Name, b.Description)
		}
		return nil
	},
}
