package cli

import (
	"fmt"

	"hr_portal_backend/internal/app"

	"github.com/spf13/cobra"
)

func NewSweepDeletionsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-deletions",
		Short: "Purge data of accounts marked for deletion once and exit",
		Long: `Run a single pass of the account deletion sweep.

Every account marked for deletion has its jobs, candidates, interviews,
stored resumes and identity-provider account removed. Accounts that fail
keep their marker and are retried by the next pass.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, db, err := bootstrap(rootOpts)
			if err != nil {
				return err
			}
			defer closeDB(db)

			application, err := app.New(ctx, cfg, db)
			if err != nil {
				return err
			}
			defer application.Close()

			result := application.DeletionWorker().RunOnce(ctx)
			if result == nil {
				return fmt.Errorf("deletion sweep failed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "processed=%d purged=%d failed=%d\n",
				result.Processed, result.Purged, result.Failed)
			if result.Failed > 0 {
				return fmt.Errorf("%d accounts could not be purged", result.Failed)
			}
			return nil
		},
	}
}
