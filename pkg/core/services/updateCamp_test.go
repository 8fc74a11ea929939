package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

func TestUpdateCampDetails_Success(t *testing.T) {
	store := &mockCampStore{
		updateDetailsFn: func(ctx context.Context, id string, details db.CampDetails) (*db.Camp, error) {
			assert.Equal(t, "camp-1", id)
			return &db.Camp{
				ID:        id,
				Name:      details.Name,
				Resources: details.Resources,
				Contact:   details.Contact,
				Ambulance: details.Ambulance,
				Beds:      3,
				OriginalBeds: 5,
			}, nil
		},
	}

	camp, err := UpdateCampDetails(context.Background(), store, zap.NewNop(), volunteer("vol-1"), "camp-1", db.CampDetails{
		Name:      "Renamed Camp",
		Resources: []string{"water"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Camp", camp.Name)
	// Bed counts pass through the edit untouched
	assert.Equal(t, 3, camp.Beds)
	assert.Equal(t, 5, camp.OriginalBeds)
}

func TestUpdateCampDetails_RefugeeNotAuthorized(t *testing.T) {
	store := &mockCampStore{}

	_, err := UpdateCampDetails(context.Background(), store, zap.NewNop(), refugee("user-1"), "camp-1", db.CampDetails{
		Name: "Renamed Camp",
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestSetCampCapacity_Success(t *testing.T) {
	store := &mockCampStore{
		setCapacityFn: func(ctx context.Context, id string, newOriginal int) (*db.Camp, error) {
			// 2 beds were occupied before the change
			return &db.Camp{ID: id, Beds: newOriginal - 2, OriginalBeds: newOriginal}, nil
		},
	}

	camp, err := SetCampCapacity(context.Background(), store, zap.NewNop(), volunteer("vol-1"), "camp-1", 10)
	require.NoError(t, err)

	assert.Equal(t, 10, camp.OriginalBeds)
	assert.Equal(t, 8, camp.Beds)
}

func TestSetCampCapacity_BelowOccupied(t *testing.T) {
	store := &mockCampStore{
		setCapacityFn: func(ctx context.Context, id string, newOriginal int) (*db.Camp, error) {
			return nil, fmt.Errorf("camp %s has 4 occupied beds, capacity %d too small: %w",
				id, newOriginal, db.ErrConstraintViolation)
		},
	}

	_, err := SetCampCapacity(context.Background(), store, zap.NewNop(), volunteer("vol-1"), "camp-1", 2)
	assert.ErrorIs(t, err, db.ErrConstraintViolation)
}

func TestSetCampCapacity_RefugeeNotAuthorized(t *testing.T) {
	store := &mockCampStore{}

	_, err := SetCampCapacity(context.Background(), store, zap.NewNop(), refugee("user-1"), "camp-1", 10)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestSetCampCapacity_NegativeCapacity(t *testing.T) {
	store := &mockCampStore{}

	_, err := SetCampCapacity(context.Background(), store, zap.NewNop(), volunteer("vol-1"), "camp-1", -5)
	assert.Error(t, err)
}

func TestSetCampCapacity_RetriesOnceOnConflict(t *testing.T) {
	calls := 0
	store := &mockCampStore{
		setCapacityFn: func(ctx context.Context, id string, newOriginal int) (*db.Camp, error) {
			calls++
			if calls == 1 {
				return nil, db.ErrConflict
			}
			return &db.Camp{ID: id, Beds: newOriginal, OriginalBeds: newOriginal}, nil
		},
	}

	camp, err := SetCampCapacity(context.Background(), store, zap.NewNop(), volunteer("vol-1"), "camp-1", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 10, camp.OriginalBeds)
}
