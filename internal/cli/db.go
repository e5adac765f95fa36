package cli

import (
	"fmt"

	"github.com/cmlabs-hris/training-attendance/internal/repository/postgresql"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance",
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the attendance tables if they do not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, release, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer release()

		if err := postgresql.ApplySchema(cmd.Context(), a.db); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Success("schema applied"))
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
}
