// Package types provides type definitions for structured data used throughout the ATS CV generator.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// GenerateCVRequest represents the request body for CV generation and analysis.
type GenerateCVRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=50,max=10000"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// Validate validates the GenerateCVRequest using the validator.
// JobURL takes precedence over JobDescription when both are set, so the
// length constraint on the description only applies when no URL is given.
func (r *GenerateCVRequest) Validate() error {
	validate := validator.New()
	if r.JobURL != "" {
		return validate.Var(r.JobURL, "url")
	}
	return validate.Struct(r)
}

// GenerateCVResponse is the API response for a completed generation run.
type GenerateCVResponse struct {
	CVID      uuid.UUID       `json:"cv_id"`
	ATSScore  int             `json:"ats_score"`
	Attempts  int             `json:"attempts"`
	LaTeXCode string          `json:"latex_code"`
	Analysis  *AnalysisResult `json:"analysis"`
}

// GeneratedCV is the persisted record of one winning generation attempt.
type GeneratedCV struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	JobDescription string    `json:"job_description"`
	AlignedSkills  []string  `json:"aligned_skills"`
	ATSScore       int       `json:"ats_score"`
	LaTeXCode      string    `json:"latex_code"`
	CreatedAt      time.Time `json:"created_at"`
}
