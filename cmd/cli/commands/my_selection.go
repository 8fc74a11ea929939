package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
)

// MySelectionCmd creates the mySelection command
func MySelectionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mySelection",
		Short: "Show your active camp selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.Caller()
			if err != nil {
				return err
			}

			result, err := services.GetMySelection(app.Ctx, app.Database, app.Database, app.Logger, caller)
			if err != nil {
				return err
			}

			if result.Selection == nil {
				fmt.Println("\nNo active selection.")
				return nil
			}

			fmt.Printf("\nActive selection:\n\n")
			fmt.Printf("Camp:         %s (%s)\n", result.Camp.Name, result.Camp.ID)
			fmt.Printf("Selection ID: %s\n", result.Selection.ID)
			fmt.Printf("Selected at:  %s\n", result.Selection.SelectedAt.Format("2006-01-02 15:04:05"))
			if result.Camp.Contact != "" {
				fmt.Printf("Contact:      %s\n", result.Camp.Contact)
			}
			fmt.Println()

			return nil
		},
	}
}
