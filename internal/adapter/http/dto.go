package http

import (
	"resume-builder/internal/domain"
)

type resumeRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	IsActive *bool  `json:"isActive"`
}

type resumePatchRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	IsActive *bool   `json:"isActive"`
}

type personalInfoRequest struct {
	FullName string `json:"fullName" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Phone    string `json:"phone" validate:"max=50"`
	Location string `json:"location" validate:"max=200"`
	Website  string `json:"website" validate:"max=500"`
	LinkedIn string `json:"linkedin" validate:"max=500"`
	GitHub   string `json:"github" validate:"max=500"`
	// matches the export document schema
	Summary  string `json:"summary" validate:"max=2000"`
}

func (r personalInfoRequest) toDomain(s *Sanitizer) *domain.PersonalInfo {
	return &domain.PersonalInfo{
		FullName: s.String(r.FullName),
		Email:    r.Email,
		Phone:    s.String(r.Phone),
		Location: s.String(r.Location),
		Website:  s.String(r.Website),
		LinkedIn: s.String(r.LinkedIn),
		GitHub:   s.String(r.GitHub),
		Summary:  s.String(r.Summary),
	}
}

// Partial updates decode into a request seeded from the stored row, so the
// seed must not alias it.

func intCopy(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func floatCopy(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// workExperienceRequest is used for create and, seeded from the stored row,
// for partial update.
type workExperienceRequest struct {
	JobTitle     string   `json:"jobTitle" validate:"required,max=200"`
	Company      string   `json:"company" validate:"required,max=200"`
	Location     string   `json:"location" validate:"max=200"`
	StartMonth   int      `json:"startMonth" validate:"required,min=1,max=12"`
	StartYear    int      `json:"startYear" validate:"required,min=1900,max=2100"`
	EndMonth     *int     `json:"endMonth" validate:"omitempty,min=1,max=12"`
	EndYear      *int     `json:"endYear" validate:"omitempty,min=1900,max=2100"`
	IsPresent    bool     `json:"isPresent"`
	Description  string   `json:"description" validate:"max=5000"`
	Achievements []string `json:"achievements" validate:"max=50,dive,max=1000"`
	Order        int      `json:"order"`
}

func newWorkExperienceRequest(w *domain.WorkExperience) workExperienceRequest {
	return workExperienceRequest{
		JobTitle:     w.JobTitle,
		Company:      w.Company,
		Location:     w.Location,
		StartMonth:   w.StartMonth,
		StartYear:    w.StartYear,
		EndMonth:     intCopy(w.EndMonth),
		EndYear:      intCopy(w.EndYear),
		IsPresent:    w.IsPresent,
		Description:  w.Description,
		Achievements: append([]string(nil), w.Achievements...),
		Order:        w.Order,
	}
}

func (r workExperienceRequest) applyTo(w *domain.WorkExperience, s *Sanitizer) {
	w.JobTitle = s.String(r.JobTitle)
	w.Company = s.String(r.Company)
	w.Location = s.String(r.Location)
	w.StartMonth, w.StartYear = r.StartMonth, r.StartYear
	w.EndMonth, w.EndYear = r.EndMonth, r.EndYear
	w.IsPresent = r.IsPresent
	w.Description = s.String(r.Description)
	w.Achievements = s.Strings(r.Achievements)
	w.Order = r.Order
}

type educationRequest struct {
	Institution  string   `json:"institution" validate:"required,max=200"`
	Degree       string   `json:"degree" validate:"required,max=200"`
	FieldOfStudy string   `json:"fieldOfStudy" validate:"max=200"`
	StartMonth   int      `json:"startMonth" validate:"required,min=1,max=12"`
	StartYear    int      `json:"startYear" validate:"required,min=1900,max=2100"`
	EndMonth     *int     `json:"endMonth" validate:"omitempty,min=1,max=12"`
	EndYear      *int     `json:"endYear" validate:"omitempty,min=1900,max=2100"`
	IsPresent    bool     `json:"isPresent"`
	GPA          *float64 `json:"gpa" validate:"omitempty,min=0,max=10"`
	Achievements []string `json:"achievements" validate:"max=50,dive,max=1000"`
	Order        int      `json:"order"`
}

func newEducationRequest(e *domain.Education) educationRequest {
	return educationRequest{
		Institution:  e.Institution,
		Degree:       e.Degree,
		FieldOfStudy: e.FieldOfStudy,
		StartMonth:   e.StartMonth,
		StartYear:    e.StartYear,
		EndMonth:     intCopy(e.EndMonth),
		EndYear:      intCopy(e.EndYear),
		IsPresent:    e.IsPresent,
		GPA:          floatCopy(e.GPA),
		Achievements: append([]string(nil), e.Achievements...),
		Order:        e.Order,
	}
}

func (r educationRequest) applyTo(e *domain.Education, s *Sanitizer) {
	e.Institution = s.String(r.Institution)
	e.Degree = s.String(r.Degree)
	e.FieldOfStudy = s.String(r.FieldOfStudy)
	e.StartMonth, e.StartYear = r.StartMonth, r.StartYear
	e.EndMonth, e.EndYear = r.EndMonth, r.EndYear
	e.IsPresent = r.IsPresent
	e.GPA = r.GPA
	e.Achievements = s.Strings(r.Achievements)
	e.Order = r.Order
}

// skillRequest leaves Proficiency nil when omitted; a value that is present
// must be 1..5.
type skillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"max=100"`
	Proficiency *int   `json:"proficiency" validate:"omitempty,min=1,max=5"`
	Order       int    `json:"order"`
}

func newSkillRequest(sk *domain.Skill) skillRequest {
	return skillRequest{Name: sk.Name, Category: sk.Category, Proficiency: intCopy(&sk.Proficiency), Order: sk.Order}
}

func (r skillRequest) applyTo(sk *domain.Skill, s *Sanitizer) {
	sk.Name = s.String(r.Name)
	sk.Category = s.String(r.Category)
	if r.Proficiency != nil {
		sk.Proficiency = *r.Proficiency
	}
	sk.Order = r.Order
}

type jobDescriptionRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Company      string   `json:"company" validate:"max=200"`
	Description  string   `json:"description" validate:"required,max=20000"`
	Requirements []string `json:"requirements" validate:"max=100,dive,max=500"`
}

func (r jobDescriptionRequest) toDomain(s *Sanitizer) *domain.JobDescription {
	return &domain.JobDescription{
		Title:        s.String(r.Title),
		Company:      s.String(r.Company),
		Description:  s.String(r.Description),
		Requirements: s.Strings(r.Requirements),
	}
}

type enhanceSummaryRequest struct {
	PersonalInfo   *domain.PersonalInfo    `json:"personalInfo" validate:"required"`
	WorkExperience []domain.WorkExperience `json:"workExperience"`
	Skills         []domain.Skill          `json:"skills"`
	JobDescription string                  `json:"jobDescription" validate:"max=20000"`
}

type enhanceExperienceRequest struct {
	Experience     *domain.WorkExperience `json:"experience" validate:"required"`
	JobDescription string                 `json:"jobDescription" validate:"max=20000"`
}

type jobMatchRequest struct {
	ResumeID         string  `json:"resumeId" validate:"required,uuid"`
	JobDescription   string  `json:"jobDescription" validate:"max=20000"`
	JobDescriptionID *string `json:"jobDescriptionId" validate:"omitempty,uuid"`
}

type suggestSkillsRequest struct {
	CurrentSkills  []string `json:"currentSkills" validate:"max=200,dive,max=100"`
	JobDescription string   `json:"jobDescription" validate:"max=20000"`
}

type exportRequest struct {
	JobDescriptionID *string `json:"jobDescriptionId" validate:"omitempty,uuid"`
	MatchScore       *int    `json:"matchScore" validate:"omitempty,min=0,max=100"`
}
