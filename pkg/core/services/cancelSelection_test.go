package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

func TestCancelSelection_Success(t *testing.T) {
	now := time.Now()
	store := &mockSelectionStore{
		cancelFn: func(ctx context.Context, userID string) (*db.CampSelection, *db.Camp, error) {
			assert.Equal(t, "user-1", userID)
			return &db.CampSelection{
					ID:          "sel-1",
					UserID:      userID,
					CampID:      "camp-1",
					Status:      db.SelectionCancelled,
					CancelledAt: &now,
				}, &db.Camp{
					ID: "camp-1", Beds: 5, OriginalBeds: 5,
				}, nil
		},
	}

	result, err := CancelSelection(context.Background(), store, zap.NewNop(), refugee("user-1"))
	require.NoError(t, err)

	assert.Equal(t, db.SelectionCancelled, result.Selection.Status)
	require.NotNil(t, result.Selection.CancelledAt)
	assert.Equal(t, 5, result.Camp.Beds)
}

func TestCancelSelection_NoActiveSelection(t *testing.T) {
	store := &mockSelectionStore{
		cancelFn: func(ctx context.Context, userID string) (*db.CampSelection, *db.Camp, error) {
			return nil, nil, fmt.Errorf("user %s: %w", userID, db.ErrNoActiveSelection)
		},
	}

	_, err := CancelSelection(context.Background(), store, zap.NewNop(), refugee("user-1"))
	assert.ErrorIs(t, err, db.ErrNoActiveSelection)
}

func TestCancelSelection_RetriesOnceOnConflict(t *testing.T) {
	calls := 0
	store := &mockSelectionStore{
		cancelFn: func(ctx context.Context, userID string) (*db.CampSelection, *db.Camp, error) {
			calls++
			if calls == 1 {
				return nil, nil, db.ErrConflict
			}
			return &db.CampSelection{ID: "sel-1", Status: db.SelectionCancelled},
				&db.Camp{ID: "camp-1", Beds: 1, OriginalBeds: 1}, nil
		},
	}

	result, err := CancelSelection(context.Background(), store, zap.NewNop(), refugee("user-1"))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, db.SelectionCancelled, result.Selection.Status)
}
