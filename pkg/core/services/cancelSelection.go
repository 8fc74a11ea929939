package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// CancellationResult represents the outcome of cancelling a selection
type CancellationResult struct {
	Selection *db.CampSelection
	Camp      *db.Camp
}

// CancelSelection cancels the caller's active camp selection and returns
// the bed to the camp. The status flip and the bed increment happen in
// one atomic store operation; the increment is capped at the camp's
// original capacity.
func CancelSelection(ctx context.Context, store db.SelectionStore, logger *zap.Logger, caller *db.User) (*CancellationResult, error) {
	logger.Debug("Cancelling selection", zap.String("user_id", caller.ID))

	var sel *db.CampSelection
	var camp *db.Camp
	err := retryOnConflict(logger, "cancel_selection", func() error {
		var opErr error
		sel, camp, opErr = store.CancelSelection(ctx, caller.ID)
		return opErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel selection: %w", err)
	}

	fields := []zap.Field{
		zap.String("user_id", caller.ID),
		zap.String("selection_id", sel.ID),
	}
	if camp != nil {
		fields = append(fields,
			zap.String("camp_id", camp.ID),
			zap.Int("beds_available", camp.Beds))
	}
	logger.Info("Selection cancelled", fields...)

	return &CancellationResult{
		Selection: sel,
		Camp:      camp,
	}, nil
}
