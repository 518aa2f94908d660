package cli

import (
	"os"
	"os/signal"
	"syscall"

	"hr_portal_backend/internal/app"

	"github.com/spf13/cobra"
)

type ServeOptions struct {
	*RootOptions
	SkipMigrate bool
}

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the deletion worker",
		Long: `Start the HTTP API server.

Loads configuration, opens the database, runs auto-migration, starts the
account deletion worker and serves the API until SIGINT or SIGTERM.

Example:
  hr-portal serve
  hr-portal serve --config ./config/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.SkipMigrate, "skip-migrate", false, "do not run auto-migration on startup")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, db, err := bootstrap(opts.RootOptions)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if !opts.SkipMigrate {
		if err := migrate(ctx, db); err != nil {
			return err
		}
	}

	application, err := app.New(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer application.Close()

	return application.Run(ctx)
}
