package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
)

// SelectCampCmd creates the selectCamp command
func SelectCampCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "selectCamp <camp_id>",
		Short: "Select a camp, taking one of its available beds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.Caller()
			if err != nil {
				return err
			}

			result, err := services.SelectCamp(app.Ctx, app.Database, app.Logger, caller, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Camp selected!\n\n")
			fmt.Printf("Camp:         %s\n", result.Camp.Name)
			fmt.Printf("Selection ID: %s\n", result.Selection.ID)
			fmt.Printf("Selected at:  %s\n", result.Selection.SelectedAt.Format("2006-01-02 15:04:05"))
			fmt.Printf("Beds left:    %d/%d\n\n", result.Camp.Beds, result.Camp.OriginalBeds)

			return nil
		},
	}
}
