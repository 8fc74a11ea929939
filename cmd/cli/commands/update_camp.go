package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
	"github.com/shelterops/campledger/pkg/db"
)

// UpdateCampCmd creates the updateCamp command
func UpdateCampCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateCamp <camp_id> <name>",
		Short: "Update a camp's details (volunteers only)",
		Long: `Update a camp's name, resources, contact, and ambulance flag.
Bed counts are not editable here; use setCapacity to change capacity.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.Caller()
			if err != nil {
				return err
			}

			resources, _ := cmd.Flags().GetStringSlice("resources")
			contact, _ := cmd.Flags().GetString("contact")
			ambulance, _ := cmd.Flags().GetBool("ambulance")

			camp, err := services.UpdateCampDetails(app.Ctx, app.Database, app.Logger, caller, args[0], db.CampDetails{
				Name:      args[1],
				Resources: resources,
				Contact:   contact,
				Ambulance: ambulance,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Camp updated!\n\n")
			fmt.Printf("Name: %s\n", camp.Name)
			fmt.Printf("Beds: %d/%d (unchanged)\n\n", camp.Beds, camp.OriginalBeds)

			return nil
		},
	}

	cmd.Flags().StringSlice("resources", nil, "Available resources (comma-separated)")
	cmd.Flags().String("contact", "", "Contact details for the camp")
	cmd.Flags().Bool("ambulance", false, "Whether the camp has ambulance access")

	return cmd
}
