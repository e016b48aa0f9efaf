package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nebrasmahmood/dutch-learning-app/internal/app"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Take the final exam (free-text, spelling tolerant)",
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

		a := app.New(app.Options{
			Catalog:    cat,
			Controller: newController(cat, store),
			Store:      store,
			Translator: translator(cmd),
			In:         os.Stdin,
			Out:        os.Stdout,
		})
		return a.RunExam(cmd.Context())
	},
}
