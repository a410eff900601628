package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/plantcheck/internal/config"
	"github.com/abhisek/plantcheck/internal/logging"
	"github.com/abhisek/plantcheck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "plantcheck",
	Short:        "Score concrete-plant inspection questionnaires",
	Long:         "plantcheck scores personnel, equipment and plant-operation evaluations for concrete plants.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if env := envFrom(cmd); env != nil {
			_ = env.log.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PLANTCHECK_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ./plantcheck.yaml or $XDG_CONFIG_HOME/plantcheck/plantcheck.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// appEnv is the per-invocation state shared by subcommands.
type appEnv struct {
	cfg *config.Config
	log *zap.Logger
}

type envKey struct{}

func setup(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath, cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		Out:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, envKey{}, &appEnv{cfg: cfg, log: log}))
	return nil
}

func envFrom(cmd *cobra.Command) *appEnv {
	if cmd.Context() == nil {
		return nil
	}
	env, _ := cmd.Context().Value(envKey{}).(*appEnv)
	return env
}

// resolveDBPath returns the database path using --db flag or database.path
// (highest priority), then PLANTCHECK_DB env var, then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if p := cfg.Database.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(env *appEnv) (*store.Store, error) {
	dbPath, err := resolveDBPath(env.cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	env.log.Debug("database opened", zap.String("path", dbPath))
	return s, nil
}

// stdout wraps the command's output so styling is dropped when it is not a
// terminal.
func stdout(cmd *cobra.Command) io.Writer {
	return colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
}
