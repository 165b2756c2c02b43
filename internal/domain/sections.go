package domain

import (
	"time"

	"github.com/google/uuid"
)

type PersonalInfo struct {
	ID        uuid.UUID `json:"id"`
	ResumeID  uuid.UUID `json:"resumeId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	Website   string    `json:"website,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	GitHub    string    `json:"github,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type WorkExperience struct {
	ID           uuid.UUID `json:"id"`
	ResumeID     uuid.UUID `json:"resumeId"`
	JobTitle     string    `json:"jobTitle"`
	Company      string    `json:"company"`
	Location     string    `json:"location,omitempty"`
	StartMonth   int       `json:"startMonth"`
	StartYear    int       `json:"startYear"`
	EndMonth     *int      `json:"endMonth"`
	EndYear      *int      `json:"endYear"`
	IsPresent    bool      `json:"isPresent"`
	Description  string    `json:"description,omitempty"`
	Achievements []string  `json:"achievements"`
	Order        int       `json:"order"`
}

// Normalize enforces that an open-ended entry carries no end date and that
// achievements is never nil.
func (w *WorkExperience) Normalize() {
	if w.IsPresent {
		w.EndMonth, w.EndYear = nil, nil
	}
	if w.Achievements == nil {
		w.Achievements = []string{}
	}
}

type Education struct {
	ID           uuid.UUID `json:"id"`
	ResumeID     uuid.UUID `json:"resumeId"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldOfStudy,omitempty"`
	StartMonth   int       `json:"startMonth"`
	StartYear    int       `json:"startYear"`
	EndMonth     *int      `json:"endMonth"`
	EndYear      *int      `json:"endYear"`
	IsPresent    bool      `json:"isPresent"`
	GPA          *float64  `json:"gpa,omitempty"`
	Achievements []string  `json:"achievements"`
	Order        int       `json:"order"`
}

func (e *Education) Normalize() {
	if e.IsPresent {
		e.EndMonth, e.EndYear = nil, nil
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
}

type Skill struct {
	ID          uuid.UUID `json:"id"`
	ResumeID    uuid.UUID `json:"resumeId"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Proficiency int       `json:"proficiency"`
	Order       int       `json:"order"`
}

// DefaultProficiency is used when a skill is created without a level.
const DefaultProficiency = 3

type JobDescription struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	Company      string    `json:"company,omitempty"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	CreatedAt    time.Time `json:"createdAt"`
}
