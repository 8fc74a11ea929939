package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// ListCamps returns all camps, newest first. Any authenticated user may
// browse camps.
func ListCamps(ctx context.Context, store db.CampStore, logger *zap.Logger) ([]db.Camp, error) {
	camps, err := store.ListCamps(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list camps: %w", err)
	}

	logger.Debug("Listed camps", zap.Int("count", len(camps)))
	return camps, nil
}

// GetMySelection returns the caller's active selection together with the
// selected camp, or a nil selection if the caller holds none.
func GetMySelection(ctx context.Context, selections db.SelectionStore, camps db.CampStore, logger *zap.Logger, caller *db.User) (*SelectionResult, error) {
	sel, err := selections.GetActiveSelection(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active selection: %w", err)
	}
	if sel == nil {
		return &SelectionResult{}, nil
	}

	camp, err := camps.GetCamp(ctx, sel.CampID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch selected camp: %w", err)
	}

	logger.Debug("Fetched active selection",
		zap.String("user_id", caller.ID),
		zap.String("camp_id", camp.ID))

	return &SelectionResult{
		Selection: sel,
		Camp:      camp,
	}, nil
}
