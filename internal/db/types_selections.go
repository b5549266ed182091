package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// selectionRow is the stored form of a PathwaySelection.
type selectionRow struct {
	UserID    uuid.UUID
	Selected  []byte
	Archived  []byte
	Version   int
	UpdatedAt time.Time
}

func encodeSelection(sel *types.PathwaySelection) (selected, archived []byte, err error) {
	c := sel.Clone()
	selected, err = json.Marshal(c.Selected)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal selected pathways: %w", err)
	}
	archived, err = json.Marshal(c.Archived)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal archived pathways: %w", err)
	}
	return selected, archived, nil
}

func (r selectionRow) decode() (*types.PathwaySelection, error) {
	sel := &types.PathwaySelection{UserID: r.UserID, Version: r.Version, UpdatedAt: r.UpdatedAt}
	if len(r.Selected) > 0 {
		if err := json.Unmarshal(r.Selected, &sel.Selected); err != nil {
			return nil, fmt.Errorf("failed to unmarshal selected pathways: %w", err)
		}
	}
	if len(r.Archived) > 0 {
		if err := json.Unmarshal(r.Archived, &sel.Archived); err != nil {
			return nil, fmt.Errorf("failed to unmarshal archived pathways: %w", err)
		}
	}
	return sel.Clone(), nil
}
