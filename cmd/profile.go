package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or create the learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		kv, store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer kv.Close()

		ctx := cmd.Context()
		name, _ := cmd.Flags().GetString("name")
		if name != "" {
			p, err := store.InitProfile(ctx, name)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s! Profile created.\n", p.DisplayName)
			return nil
		}

		p, err := store.Profile(ctx)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Println("No profile yet. Create one with `dutchlearn profile --name <name>`.")
			return nil
		}
		fmt.Printf("%s — level %d, %d XP, learning since %s\n",
			p.DisplayName, p.Level, p.TotalXP, p.CreatedAt.Format("2006-01-02"))
		return nil
	},
}

func init() {
	profileCmd.Flags().String("name", "", "Create a fresh profile with this display name (replaces existing data)")
}
