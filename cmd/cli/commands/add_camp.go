package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
)

// AddCampCmd creates the addCamp command
func AddCampCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addCamp <name> <beds>",
		Short: "Register a new camp (volunteers only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			beds, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("beds must be a number: %w", err)
			}

			caller, err := app.Caller()
			if err != nil {
				return err
			}

			resources, _ := cmd.Flags().GetStringSlice("resources")
			contact, _ := cmd.Flags().GetString("contact")
			ambulance, _ := cmd.Flags().GetBool("ambulance")

			camp, err := services.AddCamp(app.Ctx, app.Database, app.Logger, caller, services.NewCamp{
				Name:      args[0],
				Beds:      beds,
				Resources: resources,
				Contact:   contact,
				Ambulance: ambulance,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Camp registered!\n\n")
			fmt.Printf("Camp ID: %s\n", camp.ID)
			fmt.Printf("Name:    %s\n", camp.Name)
			fmt.Printf("Beds:    %d\n\n", camp.Beds)

			return nil
		},
	}

	cmd.Flags().StringSlice("resources", nil, "Available resources (comma-separated)")
	cmd.Flags().String("contact", "", "Contact details for the camp")
	cmd.Flags().Bool("ambulance", false, "Whether the camp has ambulance access")

	return cmd
}
