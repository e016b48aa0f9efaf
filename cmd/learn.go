package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nebrasmahmood/dutch-learning-app/internal/app"
	"github.com/nebrasmahmood/dutch-learning-app/internal/session"
)

var learnCmd = &cobra.Command{
	Use:   "learn <section-id>",
	Short: "Start or resume a section quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sectionID := args[0]

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		kv, store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer kv.Close()

		ctx := cmd.Context()
		if p, err := store.Profile(ctx); err != nil {
			return err
		} else if p == nil {
			fmt.Fprintln(os.Stderr, "No profile yet: XP will not be tracked. Create one with `dutchlearn profile --name <name>`.")
		}

		a := app.New(app.Options{
			Catalog:    cat,
			Controller: newController(cat, store),
			Store:      store,
			Translator: translator(cmd),
			In:         os.Stdin,
			Out:        os.Stdout,
		})

		err = a.RunQuiz(ctx, sectionID)
		var ie *session.InsufficientItemsError
		if errors.As(err, &ie) {
			fmt.Printf("Section %q is not available: it needs at least %d words to quiz.\n", ie.SectionID, ie.Required)
			return nil
		}
		return err
	},
}
