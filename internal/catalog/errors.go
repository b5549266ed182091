// Package catalog provides the build-once pathway registry and requirement resolution.
package catalog

import (
	"errors"
	"fmt"
)

// ErrPathwayNotFound is matched by every NotFoundError via errors.Is.
var ErrPathwayNotFound = errors.New("pathway not found")

// NotFoundError indicates no catalog entry exists for an id.
// It is an expected outcome for custom pathway names, not a failure.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pathway not found: %s", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrPathwayNotFound
}

// MalformedRequirementError is returned while building a catalog when a
// requirement is missing mandatory data or collides with a sibling.
type MalformedRequirementError struct {
	PathwayID string
	Index     int    // Position within the pathway's requirement list
	Field     string // Offending field, e.g. "name", "category", "order"
	Reason    string
}

func (e *MalformedRequirementError) Error() string {
	return fmt.Sprintf("malformed requirement %d in pathway %s: %s: %s", e.Index, e.PathwayID, e.Field, e.Reason)
}

// DuplicatePathwayError indicates two registries define the same pathway id.
type DuplicatePathwayError struct {
	ID       string
	Country  string
	Previous string
}

func (e *DuplicatePathwayError) Error() string {
	return fmt.Sprintf("duplicate pathway id %s in %s (already defined in %s)", e.ID, e.Country, e.Previous)
}

// LoadError represents an error during file I/O, decoding or schema validation
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// MalformedPathwayError indicates a pathway definition without an id or name.
type MalformedPathwayError struct {
	Country string
	Index   int
	Field   string
	Reason  string
}

func (e *MalformedPathwayError) Error() string {
	return fmt.Sprintf("malformed pathway %d in %s: %s: %s", e.Index, e.Country, e.Field, e.Reason)
}
