package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

func TestAddCamp_Success(t *testing.T) {
	var created *db.Camp
	store := &mockCampStore{
		createFn: func(ctx context.Context, camp *db.Camp) error {
			created = camp
			return nil
		},
	}

	camp, err := AddCamp(context.Background(), store, zap.NewNop(), volunteer("vol-1"), NewCamp{
		Name:      "Eastside Gym",
		Beds:      40,
		Resources: []string{"water", "food"},
		Contact:   "+1-555-0199",
		Ambulance: true,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, camp.ID)
	assert.Equal(t, "Eastside Gym", camp.Name)
	assert.Equal(t, 40, camp.Beds)
	assert.Equal(t, 40, camp.OriginalBeds, "creation capacity fixes original_beds")
	assert.Equal(t, db.CampTypeVolunteerAdded, camp.Type)
	assert.Equal(t, "vol-1", camp.AddedBy)
}

func TestAddCamp_RefugeeNotAuthorized(t *testing.T) {
	store := &mockCampStore{}

	_, err := AddCamp(context.Background(), store, zap.NewNop(), refugee("user-1"), NewCamp{
		Name: "Eastside Gym",
		Beds: 40,
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestAddCamp_NegativeBeds(t *testing.T) {
	store := &mockCampStore{}

	_, err := AddCamp(context.Background(), store, zap.NewNop(), volunteer("vol-1"), NewCamp{
		Name: "Eastside Gym",
		Beds: -1,
	})
	assert.Error(t, err)
}

func TestAddCamp_MissingName(t *testing.T) {
	store := &mockCampStore{}

	_, err := AddCamp(context.Background(), store, zap.NewNop(), volunteer("vol-1"), NewCamp{
		Beds: 10,
	})
	assert.Error(t, err)
}

func TestAddCamp_ZeroBedsAllowed(t *testing.T) {
	store := &mockCampStore{
		createFn: func(ctx context.Context, camp *db.Camp) error { return nil },
	}

	camp, err := AddCamp(context.Background(), store, zap.NewNop(), volunteer("vol-1"), NewCamp{
		Name: "Overflow Site",
		Beds: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, camp.Beds)
	assert.Equal(t, 0, camp.OriginalBeds)
}
