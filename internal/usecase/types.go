package usecase

import (
	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// ResumePatch updates the mutable resume header fields; nil fields are left untouched.
type ResumePatch struct {
	Title    *string
	IsActive *bool
}

// JobMatchRequest names a resume and either an inline job description or a
// stored one owned by the caller. Inline text wins when both are set.
type JobMatchRequest struct {
	ResumeID         uuid.UUID
	JobDescription   string
	JobDescriptionID *uuid.UUID
}

// ExportOptions is recorded on the archived version.
type ExportOptions struct {
	JobDescriptionID *uuid.UUID
	MatchScore       *int
}

// Document is an exported file ready to be sent to the caller.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
	// Version is set when the export was archived.
	Version *domain.ResumeVersion
}

// Patch functions mutate a loaded child row before it is written back.
type (
	WorkExperiencePatch func(*domain.WorkExperience) error
	EducationPatch      func(*domain.Education) error
	SkillPatch          func(*domain.Skill) error
)

const (
	pdfContentType = "application/pdf"

	// statsDefaultMatchScore is reported while no export carries a score.
	statsDefaultMatchScore = 85
	// viewsPerResume approximates profile views from the resume count.
	viewsPerResume = 15
)
