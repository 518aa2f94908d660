package cli

import (
	"context"
	"fmt"
	"os"

	"hr_portal_backend/internal/config"
	"hr_portal_backend/internal/database"
	"hr_portal_backend/internal/logger"
	"hr_portal_backend/pkg/apperrors"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// RootOptions - глобальные флаги всех команд
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand создает корневую команду hr-portal
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "hr-portal",
		Short:         "HR Interview Portal backend",
		Long:          "Backend of the HR interview portal: jobs, candidate applications, interviews and user profiles.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config (default $CONFIG_PATH or config/config.yaml)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSweepDeletionsCommand(opts))

	return cmd
}

// Execute - точка входа для cmd/web
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap загружает конфиг, настраивает логгер и открывает БД
func bootstrap(opts *RootOptions) (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	logger.Init(cfg.Server.Env)
	apperrors.SetDebug(!cfg.IsProduction())
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Open(database.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
		Debug:  cfg.Server.Env == config.EnvDevelopment,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connected")

	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		logger.Warn("Failed to close database", "error", err)
	}
}

func migrate(ctx context.Context, db *gorm.DB) error {
	logger.Info("Running database migrations...")
	if err := database.AutoMigrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed")
	return nil
}
