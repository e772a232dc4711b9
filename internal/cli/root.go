// Package cli implements the entertainment-agent CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/melisa48/entertainment-agent/internal/agent"
	"github.com/melisa48/entertainment-agent/internal/config"
	"github.com/melisa48/entertainment-agent/internal/logging"
	"github.com/melisa48/entertainment-agent/internal/model"
	"github.com/melisa48/entertainment-agent/internal/scoring"
	"github.com/melisa48/entertainment-agent/internal/store"
)

var (
	configPath  string
	backendFlag string
	catalogFlag string
	usersFlag   string
	dbPath      string
	userFlag    string
	formatFlag  string
	logLevel    string

	cfg    *config.Config
	logger = logging.Nop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "entertainment-agent",
	Short: "Recommend movies, music, books and games",
	Long: "Recommends catalog items from a user's preferences and history, lists trending items " +
		"and searches the catalog. State is kept in JSON files or SQLite.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	f := RootCmd.PersistentFlags()
	f.StringVar(&configPath, "config", "", "Config file (default: $ENTAGENT_CONFIG, ./entertainment-agent.yaml or ~/.entertainment-agent/config.yaml)")
	f.StringVar(&backendFlag, "backend", "", "Store backend: json or sqlite")
	f.StringVar(&catalogFlag, "catalog", "", "Catalog file for the json backend")
	f.StringVar(&usersFlag, "users", "", "Users file for the json backend")
	f.StringVarP(&dbPath, "db", "d", "", "Database path for the sqlite backend")
	f.StringVarP(&userFlag, "user", "u", "", "User id to act as (default: $ENTAGENT_USER)")
	f.StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	f.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, disabled")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		c.Backend = backendFlag
	}
	if flags.Changed("catalog") {
		c.CatalogPath = catalogFlag
	}
	if flags.Changed("users") {
		c.UsersPath = usersFlag
	}
	if flags.Changed("db") {
		c.DBPath = dbPath
	}
	if flags.Changed("user") {
		c.User = userFlag
	}
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if formatFlag != "json" && formatFlag != "text" {
		return fmt.Errorf("invalid format %q (use json or text)", formatFlag)
	}

	cfg = c
	logger = logging.New(c.Log)
	return nil
}

func openStore() (store.Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return store.NewSQLiteStore(cfg.DBPath)
	default:
		return store.NewJSONStore(cfg.CatalogPath, cfg.UsersPath), nil
	}
}

// session is an agent loaded from the configured store. A half that failed
// to load for any reason but "nothing saved yet" keeps its error, and is not
// saved over.
type session struct {
	*agent.Agent
	store       store.Store
	catalogErr  error
	profilesErr error
}

// openAgent loads state from the store. Missing data is normal on first run
// and leaves the sample catalog in place.
func openAgent(ctx context.Context) (*session, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	a := agent.New(
		agent.WithStore(s),
		agent.WithLogger(logger),
		agent.WithScorer(scoring.New(cfg.Weights)),
	)
	sess := &session{Agent: a, store: s}
	if err := a.LoadCatalog(ctx); err != nil && !agent.OnlyNotFound(err) {
		sess.catalogErr = err
	}
	if err := a.LoadProfiles(ctx); err != nil && !agent.OnlyNotFound(err) {
		sess.profilesErr = err
	}
	return sess, nil
}

func (s *session) saveCatalog(ctx context.Context) error {
	if s.catalogErr != nil {
		return fmt.Errorf("refusing to overwrite unreadable catalog (run seed to replace it): %w", s.catalogErr)
	}
	return s.SaveCatalog(ctx)
}

func (s *session) saveProfiles(ctx context.Context) error {
	if s.profilesErr != nil {
		return fmt.Errorf("refusing to overwrite unreadable profiles: %w", s.profilesErr)
	}
	return s.SaveProfiles(ctx)
}

// reseed replaces the catalog with the sample items and saves it, even when
// the stored catalog could not be read.
func (s *session) reseed(ctx context.Context) error {
	s.ResetCatalog()
	s.catalogErr = nil
	return s.saveCatalog(ctx)
}

func (s *session) Close() error {
	return s.store.Close()
}

// selectUser makes the configured user current.
func (s *session) selectUser() error {
	if cfg.User == "" {
		return fmt.Errorf("%w (pass --user or set ENTAGENT_USER)", agent.ErrNoCurrentUser)
	}
	return s.SetCurrentUser(cfg.User)
}

// parseKind accepts "" as every kind.
func parseKind(s string) (model.Kind, error) {
	if s == "" {
		return "", nil
	}
	k, ok := model.ParseKind(s)
	if !ok {
		return "", fmt.Errorf("unknown kind %q (valid: movie, music, book, game)", s)
	}
	return k, nil
}

func countFlag(cmd *cobra.Command) int {
	n, _ := cmd.Flags().GetInt("count")
	if !cmd.Flags().Changed("count") {
		n = cfg.DefaultCount
	}
	return n
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
