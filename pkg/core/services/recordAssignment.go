package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shelterops/campledger/pkg/db"
)

// RecordAssignment appends an entry to the volunteer assignment log for
// a camp. The log is append-only; a volunteer may be assigned to the
// same camp any number of times.
func RecordAssignment(ctx context.Context, store db.AssignmentStore, logger *zap.Logger, caller *db.User, campID string) (*db.VolunteerAssignment, error) {
	if err := requireVolunteer(caller); err != nil {
		return nil, err
	}

	assignment := &db.VolunteerAssignment{
		ID:          uuid.New().String(),
		VolunteerID: caller.ID,
		CampID:      campID,
	}

	if err := store.InsertAssignment(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to record assignment: %w", err)
	}

	logger.Info("Assignment recorded",
		zap.String("assignment_id", assignment.ID),
		zap.String("volunteer_id", caller.ID),
		zap.String("camp_id", campID))

	return assignment, nil
}
