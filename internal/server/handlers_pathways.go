package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/pathway-tracker/internal/milestones"
	"github.com/jonathan/pathway-tracker/internal/types"
)

// PathwayListResponse represents the response for GET /pathways
type PathwayListResponse struct {
	Country  string                    `json:"country,omitempty"`
	Count    int                       `json:"count"`
	Pathways []types.PathwayDefinition `json:"pathways"`
}

// SpecialtyPathsResponse represents the response for GET /specialties/{specialty}/paths
type SpecialtyPathsResponse struct {
	Specialty string                    `json:"specialty"`
	Mapped    bool                      `json:"mapped"` // false when the default list was returned
	Paths     []types.CareerPath        `json:"paths"`
	Exams     []string                  `json:"exams"`
	Pathways  []types.PathwayDefinition `json:"pathways"` // Linked catalog definitions, with matched_via set
}

// AggregateRequest represents the request body for POST /milestones/aggregate
type AggregateRequest struct {
	Selected []string `json:"selected" validate:"dive,required"`
}

// AggregateResponse represents the response for POST /milestones/aggregate
type AggregateResponse struct {
	Mode       milestones.Mode   `json:"mode"`
	Milestones []types.Milestone `json:"milestones"`
}

// ProgressRequest represents the request body for POST /progress
type ProgressRequest struct {
	Pathway  string   `json:"pathway" validate:"required"`
	Achieved []string `json:"achieved"`
}

// handleListPathways lists catalog pathways, optionally filtered by ?country=
func (s *Server) handleListPathways(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	pathways := s.engine.Pathways(country)
	s.jsonResponse(w, http.StatusOK, PathwayListResponse{
		Country:  country,
		Count:    len(pathways),
		Pathways: pathways,
	})
}

// handleGetPathway returns one pathway by exact id
func (s *Server) handleGetPathway(w http.ResponseWriter, r *http.Request) {
	def, err := s.engine.ResolvePathway(r.PathValue("id"))
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, def)
}

// handleSpecialtyPaths returns the career paths and exams for a specialty
func (s *Server) handleSpecialtyPaths(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("specialty")
	exams := s.engine.ExamsFor(name)
	if exams == nil {
		exams = []string{}
	}
	s.jsonResponse(w, http.StatusOK, SpecialtyPathsResponse{
		Specialty: name,
		Mapped:    s.engine.SpecialtyMapped(name),
		Paths:     s.engine.PathsFor(name),
		Exams:     exams,
		Pathways:  s.engine.ResolveCareerPaths(name),
	})
}

// handleAggregateMilestones returns milestone templates for selected career paths
func (s *Server) handleAggregateMilestones(w http.ResponseWriter, r *http.Request) {
	var req AggregateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	ms, mode := s.engine.AggregateMilestones(req.Selected)
	s.jsonResponse(w, http.StatusOK, AggregateResponse{Mode: mode, Milestones: ms})
}

// handleComputeProgress evaluates an achieved set against a pathway id or custom name
func (s *Server) handleComputeProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.ComputeProgress(req.Pathway, req.Achieved))
}

// decodeAndValidate decodes a JSON body into dst and runs struct validation.
// It writes a 400 response and returns false on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorFromErr(w, validationError(err))
		return false
	}
	return true
}
