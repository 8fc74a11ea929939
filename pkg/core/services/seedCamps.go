package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/internal/config"
	"github.com/shelterops/campledger/pkg/db"
)

// EnsureSeedCamps inserts the configured default camps if they are not
// already present, matching by name. Running it repeatedly is safe.
func EnsureSeedCamps(ctx context.Context, store db.CampStore, logger *zap.Logger, seeds []config.SeedCamp) (int, error) {
	existing, err := store.ListCamps(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list camps: %w", err)
	}

	present := make(map[string]bool, len(existing))
	for _, camp := range existing {
		present[camp.Name] = true
	}

	added := 0
	for _, seed := range seeds {
		if present[seed.Name] {
			continue
		}

		camp := &db.Camp{
			ID:           uuid.New().String(),
			Name:         seed.Name,
			Beds:         seed.Beds,
			OriginalBeds: seed.Beds,
			Resources:    seed.Resources,
			Contact:      seed.Contact,
			Ambulance:    seed.Ambulance,
			Type:         db.CampTypeDefault,
		}
		if err := store.CreateCamp(ctx, camp); err != nil {
			return added, fmt.Errorf("failed to seed camp %q: %w", seed.Name, err)
		}

		logger.Info("Seeded default camp",
			zap.String("camp_id", camp.ID),
			zap.String("name", camp.Name),
			zap.Int("beds", camp.Beds))
		added++
	}

	return added, nil
}
