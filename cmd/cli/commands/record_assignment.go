package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
)

// RecordAssignmentCmd creates the recordAssignment command
func RecordAssignmentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recordAssignment <camp_id>",
		Short: "Record that you worked a camp (volunteers only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.Caller()
			if err != nil {
				return err
			}

			assignment, err := services.RecordAssignment(app.Ctx, app.Database, app.Logger, caller, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Assignment recorded!\n\n")
			fmt.Printf("Assignment ID: %s\n", assignment.ID)
			fmt.Printf("Camp:          %s\n\n", assignment.CampID)

			return nil
		},
	}
}
