package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
)

// CancelSelectionCmd creates the cancelSelection command
func CancelSelectionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cancelSelection",
		Short: "Cancel your active camp selection, returning the bed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.Caller()
			if err != nil {
				return err
			}

			result, err := services.CancelSelection(app.Ctx, app.Database, app.Logger, caller)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Selection cancelled.\n\n")
			if result.Camp != nil {
				fmt.Printf("Camp:      %s\n", result.Camp.Name)
				fmt.Printf("Beds now:  %d/%d\n\n", result.Camp.Beds, result.Camp.OriginalBeds)
			}

			return nil
		},
	}
}
