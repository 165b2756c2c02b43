package usecase

import (
	"context"
	"io"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// Lookups return domain.ErrNotFound when the row does not exist, except
// GetPersonalInfo which returns (nil, nil) for a resume without one.

type UserStore interface {
	UpsertUser(ctx context.Context, u *domain.User) (*domain.User, error)
}

type ResumeStore interface {
	ListResumes(ctx context.Context, userID string) ([]domain.Resume, error)
	GetResume(ctx context.Context, id uuid.UUID) (*domain.Resume, error)
	CreateResume(ctx context.Context, r *domain.Resume) error
	UpdateResume(ctx context.Context, r *domain.Resume) error
	// DeleteResume removes the resume and every owned child in one transaction.
	DeleteResume(ctx context.Context, id uuid.UUID) error
}

type SectionStore interface {
	GetPersonalInfo(ctx context.Context, resumeID uuid.UUID) (*domain.PersonalInfo, error)
	UpsertPersonalInfo(ctx context.Context, p *domain.PersonalInfo) error

	ListWorkExperience(ctx context.Context, resumeID uuid.UUID) ([]domain.WorkExperience, error)
	GetWorkExperience(ctx context.Context, id uuid.UUID) (*domain.WorkExperience, error)
	CreateWorkExperience(ctx context.Context, w *domain.WorkExperience) error
	UpdateWorkExperience(ctx context.Context, w *domain.WorkExperience) error
	DeleteWorkExperience(ctx context.Context, id uuid.UUID) error

	ListEducation(ctx context.Context, resumeID uuid.UUID) ([]domain.Education, error)
	GetEducation(ctx context.Context, id uuid.UUID) (*domain.Education, error)
	CreateEducation(ctx context.Context, e *domain.Education) error
	UpdateEducation(ctx context.Context, e *domain.Education) error
	DeleteEducation(ctx context.Context, id uuid.UUID) error

	ListSkills(ctx context.Context, resumeID uuid.UUID) ([]domain.Skill, error)
	GetSkill(ctx context.Context, id uuid.UUID) (*domain.Skill, error)
	CreateSkill(ctx context.Context, s *domain.Skill) error
	UpdateSkill(ctx context.Context, s *domain.Skill) error
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type JobDescriptionStore interface {
	ListJobDescriptions(ctx context.Context, userID string) ([]domain.JobDescription, error)
	GetJobDescription(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error)
	CreateJobDescription(ctx context.Context, j *domain.JobDescription) error
}

type VersionStore interface {
	// CreateResumeVersion assigns the next version number for the resume.
	CreateResumeVersion(ctx context.Context, v *domain.ResumeVersion) error
	ListResumeVersions(ctx context.Context, resumeID uuid.UUID) ([]domain.ResumeVersion, error)
	ListUserVersions(ctx context.Context, userID string) ([]domain.ResumeVersion, error)
}

// Store is the full record store used by the service layer.
type Store interface {
	UserStore
	ResumeStore
	SectionStore
	JobDescriptionStore
	VersionStore
}

// Renderer turns a rendered HTML page into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ObjectStore keeps exported documents.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
