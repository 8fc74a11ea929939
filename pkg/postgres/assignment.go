package postgres

import (
	"context"
	"fmt"

	"github.com/shelterops/campledger/pkg/db"
)

// InsertAssignment appends a volunteer assignment log entry. The log is
// append-only and duplicates are allowed.
func (d *DB) InsertAssignment(ctx context.Context, a *db.VolunteerAssignment) error {
	row := d.pool.QueryRow(ctx, `
		INSERT INTO volunteer_assignments (id, volunteer_id, camp_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, a.ID, a.VolunteerID, a.CampID)

	if err := row.Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert assignment: %w", mapError(err))
	}
	return nil
}

// GetAssignments retrieves the assignment log for a camp, oldest first
func (d *DB) GetAssignments(ctx context.Context, campID string) ([]db.VolunteerAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, volunteer_id, camp_id, created_at
		FROM volunteer_assignments
		WHERE camp_id = $1
		ORDER BY created_at
	`, campID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", mapError(err))
	}
	defer rows.Close()

	var assignments []db.VolunteerAssignment
	for rows.Next() {
		var a db.VolunteerAssignment
		if err := rows.Scan(&a.ID, &a.VolunteerID, &a.CampID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", mapError(err))
	}

	return assignments, nil
}
