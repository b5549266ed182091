package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// AddPathwayRequest represents the request body for POST /users/{id}/pathways
type AddPathwayRequest struct {
	Pathway string `json:"pathway" validate:"required"`
}

// SelectionResponse represents a user's pathway selection
type SelectionResponse struct {
	UserID   string   `json:"user_id"`
	Selected []string `json:"selected"`
	Archived []string `json:"archived"`
	Active   []string `json:"active"`
	Version  int      `json:"version"`
}

func toSelectionResponse(sel *types.PathwaySelection) SelectionResponse {
	c := sel.Clone()
	return SelectionResponse{
		UserID:   c.UserID.String(),
		Selected: c.Selected,
		Archived: c.Archived,
		Active:   c.Active(),
		Version:  c.Version,
	}
}

// parseUserID reads the {id} path value. It writes a 400 response and returns
// false when the value is not a UUID.
func (s *Server) parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userID, true
}

// handleGetSelection returns the user's selected and archived pathways
func (s *Server) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	sel, err := s.engine.Selection(r.Context(), userID)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, toSelectionResponse(sel))
}

// handleAddPathway selects a catalog id or custom pathway name
func (s *Server) handleAddPathway(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	var req AddPathwayRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	s.applyLifecycle(w, r, userID, req.Pathway, s.engine.AddPathway)
}

// handleArchivePathway archives an active pathway
func (s *Server) handleArchivePathway(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	s.applyLifecycle(w, r, userID, r.PathValue("pathway"), s.engine.ArchivePathway)
}

// handleRestorePathway restores an archived pathway
func (s *Server) handleRestorePathway(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	s.applyLifecycle(w, r, userID, r.PathValue("pathway"), s.engine.RestorePathway)
}

// handleRemovePathway removes a pathway from the selection
func (s *Server) handleRemovePathway(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	s.applyLifecycle(w, r, userID, r.PathValue("pathway"), s.engine.RemovePathway)
}

type lifecycleOp func(ctx context.Context, userID uuid.UUID, id string) (*types.PathwaySelection, error)

func (s *Server) applyLifecycle(w http.ResponseWriter, r *http.Request, userID uuid.UUID, pathway string, op lifecycleOp) {
	sel, err := op(r.Context(), userID, pathway)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.logger.Debug("selection updated", "user_id", userID, "pathway", pathway, "version", sel.Version)
	s.jsonResponse(w, http.StatusOK, toSelectionResponse(sel))
}

// handleUserPathwayProgress computes one pathway's progress from the user's records
func (s *Server) handleUserPathwayProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	p, err := s.engine.UserProgress(r.Context(), userID, r.PathValue("pathway"))
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

// handleUserProgress computes progress for every active pathway of the user
func (s *Server) handleUserProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	all, err := s.engine.SelectionProgress(r.Context(), userID)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"user_id": userID.String(), "pathways": all})
}
