package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelterops/campledger/pkg/core/services"
	"github.com/shelterops/campledger/pkg/db"
)

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <name> <role>",
		Short: "Register as a refugee or volunteer and receive an identity token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			role := db.Role(args[1])
			contact, _ := cmd.Flags().GetString("contact")

			result, err := services.RegisterUser(app.Ctx, app.Database, app.AuthClient, app.Logger, name, role, contact)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Registered successfully!\n\n")
			fmt.Printf("User ID: %s\n", result.User.ID)
			fmt.Printf("Role:    %s\n", result.User.Role)
			fmt.Printf("Token:   %s\n\n", result.Token)
			fmt.Println("Pass the token to other commands with --token.")

			return nil
		},
	}

	cmd.Flags().String("contact", "", "Contact details (phone or email)")

	return cmd
}
