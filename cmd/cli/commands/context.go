package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelterops/campledger/internal/config"
	"github.com/shelterops/campledger/pkg/clients/authclient"
	"github.com/shelterops/campledger/pkg/core/services"
	"github.com/shelterops/campledger/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg        *config.Config
	AuthClient *authclient.Client
	Database   db.Database
	Logger     *zap.Logger
	Ctx        context.Context
	Token      string

	// Listen is set when the store pushes change notifications over a
	// connection of its own (the postgres backend); nil otherwise.
	Listen func(ctx context.Context, logger *zap.Logger) error
}

// Caller resolves the presented identity token to the stored user record
func (app *AppContext) Caller() (*db.User, error) {
	if app.Token == "" {
		return nil, fmt.Errorf("this command requires an identity token, pass --token")
	}
	return services.Authenticate(app.Ctx, app.Database, app.AuthClient, app.Logger, app.Token)
}
