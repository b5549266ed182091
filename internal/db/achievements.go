package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// ListAchievedMilestones returns the user's milestone records of every status,
// oldest completion first. Callers decide which statuses count.
func (db *DB) ListAchievedMilestones(ctx context.Context, userID uuid.UUID) ([]types.AchievedMilestone, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT COALESCE(milestone_id, ''), name, status, completed_at
		 FROM user_milestones WHERE user_id = $1
		 ORDER BY completed_at ASC NULLS LAST, name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	defer rows.Close()

	records := []types.AchievedMilestone{}
	for rows.Next() {
		var m types.AchievedMilestone
		if err := rows.Scan(&m.ExternalID, &m.Name, &m.Status, &m.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate milestones: %w", err)
	}
	return records, nil
}
