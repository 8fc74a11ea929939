package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
)

// DeleteCampCmd creates the deleteCamp command
func DeleteCampCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteCamp <camp_id>",
		Short: "Delete a camp and its history (volunteers only)",
		Long: `Delete a camp together with its selection history and assignment log.
A camp with active selections cannot be deleted; those refugees must
cancel first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.Caller()
			if err != nil {
				return err
			}

			if err := services.DeleteCamp(app.Ctx, app.Database, app.Logger, caller, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Camp %s deleted.\n\n", args[0])
			return nil
		},
	}
}
