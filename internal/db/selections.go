package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/pathway-tracker/internal/lifecycle"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// ErrSelectionConflict is returned by SaveSelection when the stored version no
// longer matches the version the write was based on. It matches lifecycle.ErrConflict.
var ErrSelectionConflict = lifecycle.ErrConflict

// GetSelection returns the user's stored selection, or an empty selection at
// version 0 when the user has none.
func (db *DB) GetSelection(ctx context.Context, userID uuid.UUID) (*types.PathwaySelection, error) {
	var row selectionRow
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, selected, archived, version, updated_at
		 FROM pathway_selections WHERE user_id = $1`,
		userID,
	).Scan(&row.UserID, &row.Selected, &row.Archived, &row.Version, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return (&types.PathwaySelection{UserID: userID}).Clone(), nil
		}
		return nil, fmt.Errorf("failed to get selection: %w", err)
	}
	return row.decode()
}

// SaveSelection writes sel if the stored version equals sel.Version and returns
// the stored record with its new version. Version 0 means no record exists yet.
func (db *DB) SaveSelection(ctx context.Context, sel *types.PathwaySelection) (*types.PathwaySelection, error) {
	selected, archived, err := encodeSelection(sel)
	if err != nil {
		return nil, err
	}

	var row selectionRow
	if sel.Version == 0 {
		err = db.pool.QueryRow(ctx,
			`INSERT INTO pathway_selections (user_id, selected, archived, version, updated_at)
			 VALUES ($1, $2, $3, 1, NOW())
			 ON CONFLICT (user_id) DO NOTHING
			 RETURNING user_id, selected, archived, version, updated_at`,
			sel.UserID, selected, archived,
		).Scan(&row.UserID, &row.Selected, &row.Archived, &row.Version, &row.UpdatedAt)
	} else {
		err = db.pool.QueryRow(ctx,
			`UPDATE pathway_selections
			 SET selected = $2, archived = $3, version = version + 1, updated_at = NOW()
			 WHERE user_id = $1 AND version = $4
			 RETURNING user_id, selected, archived, version, updated_at`,
			sel.UserID, selected, archived, sel.Version,
		).Scan(&row.UserID, &row.Selected, &row.Archived, &row.Version, &row.UpdatedAt)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("selection for user %s changed since version %d: %w", sel.UserID, sel.Version, ErrSelectionConflict)
		}
		return nil, fmt.Errorf("failed to save selection: %w", err)
	}
	return row.decode()
}

// DeleteSelection removes the user's selection record. Achievement records are untouched.
func (db *DB) DeleteSelection(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM pathway_selections WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete selection: %w", err)
	}
	return nil
}
