package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/cmd/cli/commands"
	"github.com/shelterops/campledger/internal/config"
	"github.com/shelterops/campledger/pkg/clients/authclient"
	"github.com/shelterops/campledger/pkg/core/services"
	"github.com/shelterops/campledger/pkg/memstore"
	"github.com/shelterops/campledger/pkg/postgres"
	"github.com/shelterops/campledger/pkg/utils/logging"
)

var (
	env      string
	verbose  bool
	token    string
	inMemory bool

	app     = &commands.AppContext{}
	closeDB func()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campledger",
		Short: "CampLedger CLI - Coordinate shelter camps and bed selections",
		Long: `A CLI tool for disaster relief coordination: refugees browse and select
shelter camps with available beds, volunteers manage camps, capacity,
and the assignment log.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closeDB != nil {
				closeDB()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")
	rootCmd.PersistentFlags().StringVarP(&token, "token", "t", "", "Identity token issued at registration")
	rootCmd.PersistentFlags().BoolVar(&inMemory, "in-memory", false, "Use the in-memory store instead of Postgres")

	rootCmd.AddCommand(commands.RegisterCmd(app))
	rootCmd.AddCommand(commands.ListCampsCmd(app))
	rootCmd.AddCommand(commands.SelectCampCmd(app))
	rootCmd.AddCommand(commands.CancelSelectionCmd(app))
	rootCmd.AddCommand(commands.MySelectionCmd(app))
	rootCmd.AddCommand(commands.AddCampCmd(app))
	rootCmd.AddCommand(commands.UpdateCampCmd(app))
	rootCmd.AddCommand(commands.SetCapacityCmd(app))
	rootCmd.AddCommand(commands.DeleteCampCmd(app))
	rootCmd.AddCommand(commands.RecordAssignmentCmd(app))
	rootCmd.AddCommand(commands.WatchCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, auth client, and the store
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Token = token

	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.AuthClient, err = authclient.NewClient(app.Cfg.TokenSigningKey, app.Cfg.TokenTTLDuration())
	if err != nil {
		return fmt.Errorf("failed to create auth client: %w", err)
	}

	if inMemory {
		app.Logger.Info("Using in-memory store")
		app.Database = memstore.New()
	} else {
		app.Logger.Info("Connecting to database")
		pg, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		closeDB = pg.Close

		app.Logger.Info("Running migrations")
		if err := pg.RunMigrations(app.Ctx); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		app.Database = pg
		app.Listen = pg.Listen
	}

	added, err := services.EnsureSeedCamps(app.Ctx, app.Database, app.Logger, app.Cfg.SeedCamps)
	if err != nil {
		return fmt.Errorf("failed to seed default camps: %w", err)
	}
	if added > 0 {
		app.Logger.Info("Seeded default camps", zap.Int("added", added))
	}

	app.Logger.Info("Application initialized successfully")
	return nil
}
