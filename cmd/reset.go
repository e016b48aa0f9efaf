package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes your profile, progress, and saved quizzes. Re-run with --force to confirm.")
			return nil
		}

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		kv, store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer kv.Close()

		var sectionIDs []string
		for _, s := range cat.Sections() {
			sectionIDs = append(sectionIDs, s.ID)
		}
		if err := store.Reset(cmd.Context(), sectionIDs); err != nil {
			return err
		}
		fmt.Println("Learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
