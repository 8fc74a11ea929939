package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// NewCamp carries the attributes for registering a camp
type NewCamp struct {
	Name      string
	Beds      int
	Resources []string
	Contact   string
	Ambulance bool
}

// AddCamp registers a new camp. Only volunteers may register camps.
// The creation capacity becomes original_beds and fixes the upper bound
// for available beds for the camp's lifetime.
func AddCamp(ctx context.Context, store db.CampStore, logger *zap.Logger, caller *db.User, newCamp NewCamp) (*db.Camp, error) {
	if err := requireVolunteer(caller); err != nil {
		return nil, err
	}
	if newCamp.Name == "" {
		return nil, fmt.Errorf("camp name is required")
	}
	if newCamp.Beds < 0 {
		return nil, fmt.Errorf("bed count must not be negative, got %d", newCamp.Beds)
	}

	camp := &db.Camp{
		ID:           uuid.New().String(),
		Name:         newCamp.Name,
		Beds:         newCamp.Beds,
		OriginalBeds: newCamp.Beds,
		Resources:    newCamp.Resources,
		Contact:      newCamp.Contact,
		Ambulance:    newCamp.Ambulance,
		Type:         db.CampTypeVolunteerAdded,
		AddedBy:      caller.ID,
	}

	logger.Debug("Creating camp",
		zap.String("camp_id", camp.ID),
		zap.String("name", camp.Name),
		zap.Int("beds", camp.Beds))

	if err := store.CreateCamp(ctx, camp); err != nil {
		return nil, fmt.Errorf("failed to create camp: %w", err)
	}

	logger.Info("Camp registered",
		zap.String("camp_id", camp.ID),
		zap.String("name", camp.Name),
		zap.Int("beds", camp.Beds),
		zap.String("added_by", caller.ID))

	return camp, nil
}
