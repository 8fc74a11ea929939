package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// UpdateCampDetails edits a camp's metadata. Only volunteers may edit
// camps, and bed counts are not editable here: available beds change
// only through selection and cancellation, capacity through
// SetCampCapacity.
func UpdateCampDetails(ctx context.Context, store db.CampStore, logger *zap.Logger, caller *db.User, campID string, details db.CampDetails) (*db.Camp, error) {
	if err := requireVolunteer(caller); err != nil {
		return nil, err
	}
	if details.Name == "" {
		return nil, fmt.Errorf("camp name is required")
	}

	camp, err := store.UpdateCampDetails(ctx, campID, details)
	if err != nil {
		return nil, fmt.Errorf("failed to update camp: %w", err)
	}

	logger.Info("Camp updated",
		zap.String("camp_id", camp.ID),
		zap.String("name", camp.Name),
		zap.String("updated_by", caller.ID))

	return camp, nil
}

// SetCampCapacity changes a camp's total bed capacity. The change is
// rejected if it would leave fewer beds than are currently occupied by
// active selections.
func SetCampCapacity(ctx context.Context, store db.CampStore, logger *zap.Logger, caller *db.User, campID string, newCapacity int) (*db.Camp, error) {
	if err := requireVolunteer(caller); err != nil {
		return nil, err
	}
	if newCapacity < 0 {
		return nil, fmt.Errorf("capacity must not be negative, got %d", newCapacity)
	}

	var camp *db.Camp
	err := retryOnConflict(logger, "set_camp_capacity", func() error {
		var opErr error
		camp, opErr = store.SetCampCapacity(ctx, campID, newCapacity)
		return opErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set camp capacity: %w", err)
	}

	logger.Info("Camp capacity changed",
		zap.String("camp_id", camp.ID),
		zap.Int("capacity", camp.OriginalBeds),
		zap.Int("beds_available", camp.Beds),
		zap.String("updated_by", caller.ID))

	return camp, nil
}
