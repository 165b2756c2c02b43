package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Resume struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the resume belongs to the given caller.
func (r *Resume) OwnedBy(userID string) bool {
	return r != nil && userID != "" && r.UserID == userID
}

// FullResume is the aggregate view: a resume with all of its sections.
type FullResume struct {
	Resume
	PersonalInfo   *PersonalInfo    `json:"personalInfo"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []Skill          `json:"skills"`
}

// ResumeVersion is one archived export of a resume.
type ResumeVersion struct {
	ID               uuid.UUID  `json:"id"`
	ResumeID         uuid.UUID  `json:"resumeId"`
	Version          int        `json:"version"`
	ObjectKey        string     `json:"objectKey"`
	PDFURL           string     `json:"pdfUrl"`
	MatchScore       *int       `json:"matchScore,omitempty"`
	JobDescriptionID *uuid.UUID `json:"jobDescriptionId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

type DashboardStats struct {
	TotalResumes      int `json:"totalResumes"`
	TotalDownloads    int `json:"totalDownloads"`
	AverageMatchScore int `json:"averageMatchScore"`
	ProfileViews      int `json:"profileViews"`
}
