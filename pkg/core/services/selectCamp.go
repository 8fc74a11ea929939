package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// SelectionResult represents the outcome of selecting a camp
type SelectionResult struct {
	Selection *db.CampSelection
	Camp      *db.Camp
}

// SelectCamp reserves a bed in the given camp for the caller. The store
// performs the selection insert and the bed decrement as one atomic
// operation; a user holding an active selection must cancel it before
// selecting again.
func SelectCamp(ctx context.Context, store db.SelectionStore, logger *zap.Logger, caller *db.User, campID string) (*SelectionResult, error) {
	logger.Debug("Selecting camp",
		zap.String("user_id", caller.ID),
		zap.String("camp_id", campID))

	var sel *db.CampSelection
	var camp *db.Camp
	err := retryOnConflict(logger, "select_camp", func() error {
		var opErr error
		sel, camp, opErr = store.SelectCamp(ctx, caller.ID, campID)
		return opErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to select camp: %w", err)
	}

	logger.Info("Camp selected",
		zap.String("user_id", caller.ID),
		zap.String("camp_id", camp.ID),
		zap.String("camp_name", camp.Name),
		zap.Int("beds_remaining", camp.Beds))

	return &SelectionResult{
		Selection: sel,
		Camp:      camp,
	}, nil
}
