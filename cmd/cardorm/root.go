package main

import (
	"database/sql"
	"log/slog"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	dsql "github.com/syssam/cardorm/dialect/sql"
	"github.com/syssam/cardorm/internal/config"
	"github.com/syssam/cardorm/internal/logging"
	"github.com/syssam/cardorm/schema"
)

var (
	// Global state set during PersistentPreRunE
	cfg    *config.Config
	logger = logging.Discard()

	// Persistent flags
	cfgFile  string
	logLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cardorm",
		Short: "Card record storage helper",
		Long: `cardorm - card record storage helper

Reads single stored field values and attachment counts of card records, and
renders the SQL statements the fragment builders produce.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			c, path, err := config.Load(cfgFile)
			if err != nil {
				return configError("loading configuration", err)
			}
			if logLevel != "" {
				c.Log.Level = logLevel
			}
			if err := c.Validate(); err != nil {
				return configError("invalid configuration", err)
			}
			l, err := logging.New(c.Log.Level, c.Log.Format, cmd.ErrOrStderr())
			if err != nil {
				return configError("creating logger", err)
			}
			cfg, logger = c, l
			logger.Debug("configuration loaded", "path", path, "dialect", c.Database.Dialect)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover cardorm.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newValueCmd(), newFilesCmd(), newRenderCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		exitWithError(err)
	}
}

// openScope opens the configured database and returns a storage scope over
// it. The caller closes the driver.
func openScope() (*dsql.Driver, *dsql.Scope, error) {
	dsn, err := cfg.RequireDSN()
	if err != nil {
		return nil, nil, configError("database", err)
	}
	db, err := sql.Open(cfg.DriverName(), dsn)
	if err != nil {
		return nil, nil, dbConnectError("opening database", err)
	}
	drv := dsql.OpenDB(cfg.Database.Dialect, db)
	scope := dsql.NewScope(drv,
		dsql.WithLogger(logger),
		dsql.WithSlowThreshold(cfg.Query.SlowThreshold),
		dsql.WithSlowQueryLog(),
	)
	return drv, scope, nil
}

func closeDriver(drv *dsql.Driver, scope *dsql.Scope) {
	logger.Debug("query statistics", slog.String("stats", scope.QueryStats().Stats().String()))
	if err := drv.Close(); err != nil {
		logger.Warn("closing database", "error", err)
	}
}

// loadRegistry reads the key set registry named by the configuration.
func loadRegistry() (*schema.Registry, error) {
	r, err := schema.LoadFile(cfg.Schema)
	if err != nil {
		return nil, schemaError("loading schema "+cfg.Schema, err)
	}
	return r, nil
}
