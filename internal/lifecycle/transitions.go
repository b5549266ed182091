// Package lifecycle manages which pathways a user has selected or archived.
package lifecycle

import (
	"slices"

	"github.com/jonathan/pathway-tracker/internal/types"
)

// Op names a lifecycle operation.
type Op string

const (
	OpAdd     Op = "add"
	OpArchive Op = "archive"
	OpRestore Op = "restore"
	OpRemove  Op = "remove"
)

// State is the lifecycle state of one pathway within a selection.
type State string

const (
	StateUnselected State = "not selected"
	StateActive     State = "active"
	StateArchived   State = "archived"
)

// StateOf returns the state of id within sel.
func StateOf(sel *types.PathwaySelection, id string) State {
	switch {
	case !sel.IsSelected(id):
		return StateUnselected
	case sel.IsArchived(id):
		return StateArchived
	default:
		return StateActive
	}
}

// Apply runs op against a copy of sel. On error the returned selection is nil
// and sel is untouched; callers never observe a partial mutation.
func Apply(sel *types.PathwaySelection, op Op, id string) (*types.PathwaySelection, error) {
	if id == "" {
		return nil, ErrEmptyPathway
	}
	from := StateOf(sel, id)
	next := sel.Clone()

	switch op {
	case OpAdd:
		if from == StateUnselected {
			next.Selected = append(next.Selected, id)
		}
	case OpArchive:
		if from != StateActive {
			return nil, &InvalidTransitionError{PathwayID: id, Op: op, From: from}
		}
		next.Archived = append(next.Archived, id)
	case OpRestore:
		if from != StateArchived {
			return nil, &InvalidTransitionError{PathwayID: id, Op: op, From: from}
		}
		next.Archived = slices.DeleteFunc(next.Archived, func(s string) bool { return s == id })
	case OpRemove:
		if from == StateUnselected {
			return nil, &InvalidTransitionError{PathwayID: id, Op: op, From: from}
		}
		next.Selected = slices.DeleteFunc(next.Selected, func(s string) bool { return s == id })
		next.Archived = slices.DeleteFunc(next.Archived, func(s string) bool { return s == id })
	default:
		return nil, &InvalidTransitionError{PathwayID: id, Op: op, From: from}
	}
	return next, nil
}

// Changed reports whether two selections differ in their selected or archived sets.
func Changed(a, b *types.PathwaySelection) bool {
	return !slices.Equal(a.Selected, b.Selected) || !slices.Equal(a.Archived, b.Archived)
}
