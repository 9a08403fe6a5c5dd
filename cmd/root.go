package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/joho/godotenv/autoload"

	"marquee/internal/config"
	"marquee/internal/favorites"
	"marquee/internal/kv"
	"marquee/internal/telemetry"
	"marquee/internal/tmdb"
)

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Terminal movie browser with persistent favorites",
	Long: `Marquee browses the TMDB catalog from the terminal: trending titles,
free-text search, a full detail view per title, and a favorite set that
persists across sessions in a local SQLite store.`,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .marquee.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "TMDB API key (or MARQUEE_API_KEY env)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".marquee")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MARQUEE")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault launches the TUI. Bare "marquee" and "marquee browse" are
// the same thing.
func runRootDefault(cmd *cobra.Command, args []string) error {
	return runBrowse(cmd, args)
}

// session bundles the collaborators every subcommand needs: resolved config,
// catalog client, kv-backed favorite store, and the telemetry log.
type session struct {
	Cfg    config.Config
	Client *tmdb.Client
	Favs   *favorites.Store
	Log    *telemetry.Emitter

	db *kv.SQLiteStore
}

// newSession resolves config and opens the data dir, database, and telemetry
// log. The favorite store restores its persisted set here; a corrupt value
// restores as empty rather than failing startup.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg := config.Load()

	if key, _ := cmd.Flags().GetString("api-key"); key != "" {
		cfg.APIKey = key
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Verbose = true
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	log, err := telemetry.NewEmitter(cfg.SessionLogPath())
	if err != nil {
		// A session without telemetry is still a session; the emitter is
		// nil-safe.
		fmt.Fprintf(os.Stderr, "warning: telemetry unavailable: %v\n", err)
		log = nil
	}

	db, err := kv.OpenSQLite(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &session{
		Cfg:    cfg,
		Client: tmdb.New(cfg.BaseURL, cfg.APIKey),
		Favs:   favorites.NewStore(db, log),
		Log:    log,
		db:     db,
	}, nil
}

// Close releases the database and telemetry log.
func (s *session) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
	_ = s.Log.Close()
}
