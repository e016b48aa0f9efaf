package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/nebrasmahmood/dutch-learning-app/internal/catalog"
	"github.com/nebrasmahmood/dutch-learning-app/internal/i18n"
	"github.com/nebrasmahmood/dutch-learning-app/internal/progress"
	"github.com/nebrasmahmood/dutch-learning-app/internal/quizgen"
	"github.com/nebrasmahmood/dutch-learning-app/internal/session"
	"github.com/nebrasmahmood/dutch-learning-app/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "dutchlearn",
	Short: "Dutch vocabulary trainer",
	Long:  "Dutchlearn — terminal trainer that teaches Dutch vocabulary through section quizzes, a final exam, and an XP economy.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DUTCHLEARN_DB env var)")
	rootCmd.PersistentFlags().String("vocab", "", "Path to a whitelist vocabulary JSON file (defaults to the bundled whitelist)")
	rootCmd.PersistentFlags().String("locale", "en", "Interface language (en or nl)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DUTCHLEARN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	return storage.DefaultDBPath()
}

// openStore opens the progress store over the SQLite KV. The caller closes
// the returned KV.
func openStore(cmd *cobra.Command) (*storage.SQLiteKV, *progress.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	kv, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return kv, progress.NewStore(kv), nil
}

// loadCatalog loads the whitelist from --vocab or the bundled default.
// A malformed source aborts the command; running on a partial catalog is
// worse than not starting.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("vocab"); p != "" {
		return catalog.LoadFile(p)
	}
	return catalog.LoadDefault()
}

func translator(cmd *cobra.Command) *i18n.Translator {
	locale, _ := cmd.Flags().GetString("locale")
	return i18n.New(i18n.Locale(locale))
}

func newController(cat *catalog.Catalog, store *progress.Store) *session.Controller {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := quizgen.New(cat, quizgen.DefaultConfig(), rng)
	return session.NewController(cat, gen, store)
}
