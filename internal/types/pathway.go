// Package types provides type definitions for structured data used throughout the pathway tracker.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"
	"sort"
)

// RequirementCategory classifies a pathway requirement
type RequirementCategory string

const (
	CategoryExam          RequirementCategory = "Exam"
	CategoryRegistration  RequirementCategory = "Registration"
	CategoryTraining      RequirementCategory = "Training"
	CategoryLanguage      RequirementCategory = "Language"
	CategoryDocument      RequirementCategory = "Document"
	CategoryCertification RequirementCategory = "Certification"
)

// VerificationStatus records how a requirement's details were last checked
type VerificationStatus string

const (
	VerificationManual        VerificationStatus = "manual"
	VerificationAIValidated   VerificationStatus = "ai_validated"
	VerificationAIUnvalidated VerificationStatus = "ai_unvalidated"
	VerificationCommunity     VerificationStatus = "community"
	VerificationStale         VerificationStatus = "stale"
)

// CostEstimate is an indicative cost range for completing a requirement
type CostEstimate struct {
	Label     string   `json:"label,omitempty" yaml:"label,omitempty"`
	Min       float64  `json:"min" yaml:"min" validate:"gte=0"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Currency  string   `json:"currency" yaml:"currency" validate:"required,len=3"`
	Note      string   `json:"note,omitempty" yaml:"note,omitempty"`
	SourceURL string   `json:"source_url,omitempty" yaml:"source_url,omitempty" validate:"omitempty,url"`
}

// PathwayRequirement is a single named item within a pathway
type PathwayRequirement struct {
	Name               string              `json:"name" yaml:"name" validate:"required"`
	Category           RequirementCategory `json:"category" yaml:"category" validate:"required,oneof=Exam Registration Training Language Document Certification"`
	IsRequired         bool                `json:"is_required" yaml:"is_required"`
	Order              int                 `json:"order" yaml:"order"`
	Description        string              `json:"description,omitempty" yaml:"description,omitempty"`
	EvidenceTypes      []string            `json:"evidence_types,omitempty" yaml:"evidence_types,omitempty"`
	ResourceURL        string              `json:"resource_url,omitempty" yaml:"resource_url,omitempty"`
	Alternatives       []string            `json:"alternatives,omitempty" yaml:"alternatives,omitempty" validate:"dive,required"`
	ExternalID         string              `json:"external_id,omitempty" yaml:"external_id,omitempty"` // Stable id of the milestone template, survives renames
	EstimatedDuration  string              `json:"estimated_duration,omitempty" yaml:"estimated_duration,omitempty"`
	CostEstimate       *CostEstimate       `json:"cost_estimate,omitempty" yaml:"cost_estimate,omitempty"`
	VerificationStatus VerificationStatus  `json:"verification_status,omitempty" yaml:"verification_status,omitempty" validate:"omitempty,oneof=manual ai_validated ai_unvalidated community stale"`
	LastVerifiedAt     string              `json:"last_verified_at,omitempty" yaml:"last_verified_at,omitempty"`
}

// PathwayDefinition is a country/specialty-specific credentialing programme
type PathwayDefinition struct {
	ID                string               `json:"id" yaml:"id" validate:"required"`
	Name              string               `json:"name" yaml:"name" validate:"required"`
	Description       string               `json:"description" yaml:"description"`
	Requirements      []PathwayRequirement `json:"requirements" yaml:"requirements"`
	EstimatedDuration string               `json:"estimated_duration" yaml:"estimated_duration"`
	TargetRole        string               `json:"target_role" yaml:"target_role"`
	Country           string               `json:"country,omitempty" yaml:"country,omitempty"`
	MatchedVia        string               `json:"matched_via,omitempty" yaml:"-"` // Original free-text selection that resolved to this id
}

// RequiredItems returns the required requirements of a pathway sorted by order.
func RequiredItems(p *PathwayDefinition) []PathwayRequirement {
	if p == nil {
		return nil
	}
	items := make([]PathwayRequirement, 0, len(p.Requirements))
	for _, r := range p.Requirements {
		if r.IsRequired {
			items = append(items, r)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
	return items
}

// Clone returns a deep copy so callers can annotate a definition without touching the catalog.
func (p *PathwayDefinition) Clone() *PathwayDefinition {
	if p == nil {
		return nil
	}
	out := *p
	out.Requirements = make([]PathwayRequirement, len(p.Requirements))
	for i, r := range p.Requirements {
		out.Requirements[i] = r.Clone()
	}
	return &out
}

// Clone returns a copy that shares no slices or pointers with r.
func (r PathwayRequirement) Clone() PathwayRequirement {
	out := r
	out.EvidenceTypes = slices.Clone(r.EvidenceTypes)
	out.Alternatives = slices.Clone(r.Alternatives)
	if r.CostEstimate != nil {
		ce := *r.CostEstimate
		if r.CostEstimate.Max != nil {
			hi := *r.CostEstimate.Max
			ce.Max = &hi
		}
		out.CostEstimate = &ce
	}
	return out
}
