package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebrasmahmood/dutch-learning-app/internal/catalog"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List curriculum sections and their state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		kv, store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer kv.Close()

		record, err := store.Progress(cmd.Context())
		if err != nil {
			return err
		}

		tr := translator(cmd)
		sections := cat.Sections()
		for i, s := range sections {
			prevID := ""
			if i > 0 {
				prevID = sections[i-1].ID
			}
			state := record.StateFor(s.ID, i, prevID)

			line := fmt.Sprintf("%-16s %-24s [%s]", s.ID, s.Title, tr.T("section."+string(state)))
			if sp, ok := record.SectionProgress[s.ID]; ok {
				line += fmt.Sprintf("  score %.0f%%, %d attempt(s)", sp.Score*100, sp.Attempts)
			}
			meta := catalog.MetaFor(s.ID)
			fmt.Printf("%s  (%s, %d words)\n", line, meta.Icon, len(s.Items))
		}
		return nil
	},
}
