// Package types provides type definitions for structured data used throughout the ATS CV generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PersonalDetails holds the contact block of a profile.
type PersonalDetails struct {
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Location string `json:"location,omitempty" validate:"max=200"`
	Phone    string `json:"phone,omitempty" validate:"max=20"`
	Email    string `json:"email" validate:"required,email"`
	LinkedIn string `json:"linkedin,omitempty" validate:"max=200"`
	GitHub   string `json:"github,omitempty" validate:"max=200"`
}

// Education represents a single education entry.
type Education struct {
	CollegeName      string `json:"college_name" validate:"required,max=200"`
	Degree           string `json:"degree" validate:"required,max=200"`
	CGPAOrPercentage string `json:"cgpa_or_percentage,omitempty" validate:"max=50"`
	SessionYear      string `json:"session_year" validate:"max=50"` // e.g., "2018-2022"
}

// Skills holds the three labeled skill lists of a profile.
type Skills struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	TechnicalSkills      []string `json:"technical_skills"`
	DeveloperTools       []string `json:"developer_tools"`
}

// IsEmpty reports whether all three skill lists are empty.
func (s *Skills) IsEmpty() bool {
	return len(s.ProgrammingLanguages) == 0 && len(s.TechnicalSkills) == 0 && len(s.DeveloperTools) == 0
}

// Project represents a project entry with its tech stack and bullets.
type Project struct {
	ProjectName  string   `json:"project_name" validate:"required,max=200"`
	ProjectLink  string   `json:"project_link,omitempty" validate:"max=500"`
	TechStack    []string `json:"tech_stack"`
	BulletPoints []string `json:"bullet_points"`
}

// Internship represents an internship entry.
type Internship struct {
	InternshipName string   `json:"internship_name" validate:"required,max=200"`
	CompanyName    string   `json:"company_name" validate:"required,max=200"`
	BulletPoints   []string `json:"bullet_points"`
}

// Certification represents a certification entry.
type Certification struct {
	CertificateName string   `json:"certificate_name" validate:"required,max=200"`
	IssuingCompany  string   `json:"issuing_company" validate:"required,max=200"`
	BulletPoints    []string `json:"bullet_points"`
}

// ProfileSnapshot is an immutable view of a candidate's structured data.
// The generation engine only reads it; ownership stays with the profile store.
type ProfileSnapshot struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	PersonalDetails PersonalDetails `json:"personal_details"`
	Education       []Education     `json:"education"`
	Skills          Skills          `json:"skills"`
	Projects        []Project       `json:"projects"`
	Internships     []Internship    `json:"internships"`
	Certifications  []Certification `json:"certifications"`
	Achievements    []string        `json:"achievements"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProfileUpsertRequest represents the request body for creating or replacing a profile.
type ProfileUpsertRequest struct {
	PersonalDetails PersonalDetails `json:"personal_details" validate:"required"`
	Education       []Education     `json:"education" validate:"dive"`
	Skills          Skills          `json:"skills"`
	Projects        []Project       `json:"projects" validate:"dive"`
	Internships     []Internship    `json:"internships" validate:"dive"`
	Certifications  []Certification `json:"certifications" validate:"dive"`
	Achievements    []string        `json:"achievements"`
}

// Validate validates the ProfileUpsertRequest using the validator.
func (r *ProfileUpsertRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
