package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebrasmahmood/dutch-learning-app/internal/progress"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock <section-id>",
	Short: fmt.Sprintf("Spend %d XP to unlock a section out of order", progress.UnlockCost),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sectionID := args[0]

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		if _, err := cat.Section(sectionID); err != nil {
			return err
		}

		kv, store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer kv.Close()

		ok, err := store.UnlockSection(cmd.Context(), sectionID)
		if err != nil {
			return err
		}
		tr := translator(cmd)
		if !ok {
			fmt.Println(tr.T("unlock.nofunds", progress.UnlockCost))
			return nil
		}
		fmt.Println(tr.T("unlock.success", progress.UnlockCost))
		return nil
	},
}
