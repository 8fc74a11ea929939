package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// DeleteCamp removes a camp. Only volunteers may delete camps, and a
// camp with active selections cannot be deleted: refugees must not
// silently lose the bed they hold. Cancelled history and the assignment
// log are removed with the camp.
func DeleteCamp(ctx context.Context, store db.CampStore, logger *zap.Logger, caller *db.User, campID string) error {
	if err := requireVolunteer(caller); err != nil {
		return err
	}

	logger.Debug("Deleting camp",
		zap.String("camp_id", campID),
		zap.String("requested_by", caller.ID))

	if err := store.DeleteCamp(ctx, campID); err != nil {
		return fmt.Errorf("failed to delete camp: %w", err)
	}

	logger.Info("Camp deleted",
		zap.String("camp_id", campID),
		zap.String("deleted_by", caller.ID))

	return nil
}
