package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
)

// SetCapacityCmd creates the setCapacity command
func SetCapacityCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setCapacity <camp_id> <beds>",
		Short: "Change a camp's total bed capacity (volunteers only)",
		Long: `Change a camp's total capacity. Occupied beds are preserved, so the
new capacity cannot go below the number of beds currently held.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("beds must be a number: %w", err)
			}

			caller, err := app.Caller()
			if err != nil {
				return err
			}

			camp, err := services.SetCampCapacity(app.Ctx, app.Database, app.Logger, caller, args[0], capacity)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Capacity updated!\n\n")
			fmt.Printf("Camp:     %s\n", camp.Name)
			fmt.Printf("Capacity: %d\n", camp.OriginalBeds)
			fmt.Printf("Beds:     %d available, %d occupied\n\n", camp.Beds, camp.Occupied())

			return nil
		},
	}
}
