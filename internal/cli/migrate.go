package cli

import (
	"github.com/spf13/cobra"
)

func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database auto-migration and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap(rootOpts)
			if err != nil {
				return err
			}
			defer closeDB(db)

			return migrate(cmd.Context(), db)
		},
	}
}
