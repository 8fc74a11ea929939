package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
)

// ListCampsCmd creates the listCamps command
func ListCampsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listCamps",
		Short: "List all camps with their available beds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Caller(); err != nil {
				return err
			}

			camps, err := services.ListCamps(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d camps:\n\n", len(camps))
			for _, c := range camps {
				ambulance := ""
				if c.Ambulance {
					ambulance = " [ambulance]"
				}
				fmt.Printf("- %s (%s)\n", c.Name, c.ID)
				fmt.Printf("    beds: %d/%d available%s\n", c.Beds, c.OriginalBeds, ambulance)
				if len(c.Resources) > 0 {
					fmt.Printf("    resources: %s\n", strings.Join(c.Resources, ", "))
				}
				if c.Contact != "" {
					fmt.Printf("    contact: %s\n", c.Contact)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
