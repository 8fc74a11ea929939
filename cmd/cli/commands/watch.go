package commands

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// WatchCmd creates the watch command
func WatchCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream camp and selection change events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Caller(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(app.Ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler := func(e db.ChangeEvent) {
				fmt.Printf("%s  %-20s %-7s %s\n",
					time.Now().Format("15:04:05"), e.Table, e.Kind, e.RowID)
			}
			for _, table := range []string{db.TableCamps, db.TableSelections, db.TableAssignments} {
				app.Database.Subscribe(table, handler)
			}

			if app.Listen != nil {
				go func() {
					if err := app.Listen(ctx, app.Logger); err != nil {
						app.Logger.Error("Change listener stopped", zap.Error(err))
					}
				}()
			}

			fmt.Println("Watching for changes, press Ctrl-C to stop...")
			<-ctx.Done()
			fmt.Println("\nStopped.")

			return nil
		},
	}
}
