package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/pkg/ai"

	"github.com/google/uuid"
)

// Service orchestrates the resume workflows on behalf of an authenticated
// caller. Resume-level lookups hide other users' resumes behind ErrNotFound;
// child lookups report ErrForbidden once the child itself was found.
type Service struct {
	store    Store
	agg      *Aggregator
	exporter *Exporter
	gateway  *ai.Gateway
}

func NewService(store Store, exporter *Exporter, gateway *ai.Gateway) *Service {
	return &Service{store: store, agg: NewAggregator(store), exporter: exporter, gateway: gateway}
}

func (s *Service) ownedResume(ctx context.Context, userID string, id uuid.UUID) (*domain.Resume, error) {
	r, err := s.store.GetResume(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.OwnedBy(userID) {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// authorizeChild checks the parent of an already located child row.
func (s *Service) authorizeChild(ctx context.Context, userID string, resumeID uuid.UUID) error {
	r, err := s.store.GetResume(ctx, resumeID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrForbidden
	}
	if err != nil {
		return err
	}
	if !r.OwnedBy(userID) {
		return domain.ErrForbidden
	}
	return nil
}

// CurrentUser records the caller's profile and returns the stored row.
func (s *Service) CurrentUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	return s.store.UpsertUser(ctx, u)
}

func (s *Service) ListResumes(ctx context.Context, userID string) ([]domain.Resume, error) {
	return s.store.ListResumes(ctx, userID)
}

func (s *Service) CreateResume(ctx context.Context, userID, title string, isActive *bool) (*domain.Resume, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	now := time.Now().UTC()
	r := &domain.Resume{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if isActive != nil {
		r.IsActive = *isActive
	}
	if err := s.store.CreateResume(ctx, r); err != nil {
		return nil, fmt.Errorf("create resume: %w", err)
	}
	return r, nil
}

func (s *Service) UpdateResume(ctx context.Context, userID string, id uuid.UUID, patch ResumePatch) (*domain.Resume, error) {
	r, err := s.ownedResume(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if t == "" {
			return nil, domain.NewValidationError("title", "must not be empty")
		}
		r.Title = t
	}
	if patch.IsActive != nil {
		r.IsActive = *patch.IsActive
	}
	r.UpdatedAt = time.Now().UTC()
	if err := s.store.UpdateResume(ctx, r); err != nil {
		return nil, fmt.Errorf("update resume: %w", err)
	}
	return r, nil
}

func (s *Service) DeleteResume(ctx context.Context, userID string, id uuid.UUID) error {
	if _, err := s.ownedResume(ctx, userID, id); err != nil {
		return err
	}
	return s.store.DeleteResume(ctx, id)
}

// FullResume returns the aggregated view of an owned resume.
func (s *Service) FullResume(ctx context.Context, userID string, id uuid.UUID) (*domain.FullResume, error) {
	if _, err := s.ownedResume(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.agg.Aggregate(ctx, id)
}

func (s *Service) UpsertPersonalInfo(ctx context.Context, userID string, resumeID uuid.UUID, p *domain.PersonalInfo) (*domain.PersonalInfo, error) {
	if _, err := s.ownedResume(ctx, userID, resumeID); err != nil {
		return nil, err
	}
	// the store keeps the id of an existing row
	p.ID = uuid.New()
	p.ResumeID = resumeID
	p.UpdatedAt = time.Now().UTC()
	if err := s.store.UpsertPersonalInfo(ctx, p); err != nil {
		return nil, fmt.Errorf("upsert personal info: %w", err)
	}
	return p, nil
}

func (s *Service) AddWorkExperience(ctx context.Context, userID string, resumeID uuid.UUID, w *domain.WorkExperience) (*domain.WorkExperience, error) {
	if _, err := s.ownedResume(ctx, userID, resumeID); err != nil {
		return nil, err
	}
	w.ID = uuid.New()
	w.ResumeID = resumeID
	w.Normalize()
	if err := s.store.CreateWorkExperience(ctx, w); err != nil {
		return nil, fmt.Errorf("create work experience: %w", err)
	}
	return w, nil
}

func (s *Service) UpdateWorkExperience(ctx context.Context, userID string, id uuid.UUID, apply WorkExperiencePatch) (*domain.WorkExperience, error) {
	w, err := s.store.GetWorkExperience(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeChild(ctx, userID, w.ResumeID); err != nil {
		return nil, err
	}
	if err := apply(w); err != nil {
		return nil, err
	}
	w.ID = id
	w.Normalize()
	if err := s.store.UpdateWorkExperience(ctx, w); err != nil {
		return nil, fmt.Errorf("update work experience: %w", err)
	}
	return w, nil
}

func (s *Service) DeleteWorkExperience(ctx context.Context, userID string, id uuid.UUID) error {
	w, err := s.store.GetWorkExperience(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeChild(ctx, userID, w.ResumeID); err != nil {
		return err
	}
	return s.store.DeleteWorkExperience(ctx, id)
}

func (s *Service) AddEducation(ctx context.Context, userID string, resumeID uuid.UUID, e *domain.Education) (*domain.Education, error) {
	if _, err := s.ownedResume(ctx, userID, resumeID); err != nil {
		return nil, err
	}
	e.ID = uuid.New()
	e.ResumeID = resumeID
	e.Normalize()
	if err := s.store.CreateEducation(ctx, e); err != nil {
		return nil, fmt.Errorf("create education: %w", err)
	}
	return e, nil
}

func (s *Service) UpdateEducation(ctx context.Context, userID string, id uuid.UUID, apply EducationPatch) (*domain.Education, error) {
	e, err := s.store.GetEducation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeChild(ctx, userID, e.ResumeID); err != nil {
		return nil, err
	}
	if err := apply(e); err != nil {
		return nil, err
	}
	e.ID = id
	e.Normalize()
	if err := s.store.UpdateEducation(ctx, e); err != nil {
		return nil, fmt.Errorf("update education: %w", err)
	}
	return e, nil
}

func (s *Service) DeleteEducation(ctx context.Context, userID string, id uuid.UUID) error {
	e, err := s.store.GetEducation(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeChild(ctx, userID, e.ResumeID); err != nil {
		return err
	}
	return s.store.DeleteEducation(ctx, id)
}

func (s *Service) AddSkill(ctx context.Context, userID string, resumeID uuid.UUID, sk *domain.Skill) (*domain.Skill, error) {
	if _, err := s.ownedResume(ctx, userID, resumeID); err != nil {
		return nil, err
	}
	sk.ID = uuid.New()
	sk.ResumeID = resumeID
	if sk.Proficiency == 0 {
		sk.Proficiency = domain.DefaultProficiency
	}
	if err := s.store.CreateSkill(ctx, sk); err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return sk, nil
}

func (s *Service) UpdateSkill(ctx context.Context, userID string, id uuid.UUID, apply SkillPatch) (*domain.Skill, error) {
	sk, err := s.store.GetSkill(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeChild(ctx, userID, sk.ResumeID); err != nil {
		return nil, err
	}
	if err := apply(sk); err != nil {
		return nil, err
	}
	sk.ID = id
	if sk.Proficiency == 0 {
		sk.Proficiency = domain.DefaultProficiency
	}
	if err := s.store.UpdateSkill(ctx, sk); err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return sk, nil
}

func (s *Service) DeleteSkill(ctx context.Context, userID string, id uuid.UUID) error {
	sk, err := s.store.GetSkill(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeChild(ctx, userID, sk.ResumeID); err != nil {
		return err
	}
	return s.store.DeleteSkill(ctx, id)
}

func (s *Service) ListJobDescriptions(ctx context.Context, userID string) ([]domain.JobDescription, error) {
	return s.store.ListJobDescriptions(ctx, userID)
}

func (s *Service) CreateJobDescription(ctx context.Context, userID string, j *domain.JobDescription) (*domain.JobDescription, error) {
	j.ID = uuid.New()
	j.UserID = userID
	j.CreatedAt = time.Now().UTC()
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if err := s.store.CreateJobDescription(ctx, j); err != nil {
		return nil, fmt.Errorf("create job description: %w", err)
	}
	return j, nil
}

// jobDescriptionText resolves the text to match against.
func (s *Service) jobDescriptionText(ctx context.Context, userID string, req JobMatchRequest) (string, error) {
	if text := strings.TrimSpace(req.JobDescription); text != "" {
		return text, nil
	}
	if req.JobDescriptionID == nil {
		return "", domain.NewValidationError("jobDescription", "is required")
	}
	j, err := s.store.GetJobDescription(ctx, *req.JobDescriptionID)
	if err != nil {
		return "", err
	}
	if j.UserID != userID {
		return "", domain.ErrNotFound
	}
	text := j.Description
	if len(j.Requirements) > 0 {
		text += "\n\nRequirements:\n- " + strings.Join(j.Requirements, "\n- ")
	}
	return text, nil
}

// AnalyzeJobMatch scores an owned resume against a job description.
func (s *Service) AnalyzeJobMatch(ctx context.Context, userID string, req JobMatchRequest) (*ai.JobMatch, error) {
	jd, err := s.jobDescriptionText(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	full, err := s.FullResume(ctx, userID, req.ResumeID)
	if err != nil {
		return nil, err
	}
	return s.gateway.AnalyzeJobMatch(ctx, full, jd)
}

func (s *Service) EnhanceSummary(ctx context.Context, info *domain.PersonalInfo, experience []domain.WorkExperience, skills []domain.Skill, jobDescription string) (*ai.SummaryResult, error) {
	return s.gateway.EnhanceSummary(ctx, info, experience, skills, jobDescription)
}

func (s *Service) EnhanceExperience(ctx context.Context, exp domain.WorkExperience, jobDescription string) (*ai.ExperienceResult, error) {
	return s.gateway.EnhanceExperience(ctx, exp, jobDescription)
}

func (s *Service) SuggestSkills(ctx context.Context, current []string, jobDescription string) (*ai.SkillSuggestions, error) {
	return s.gateway.SuggestSkills(ctx, current, jobDescription)
}

// Export renders an owned resume.
func (s *Service) Export(ctx context.Context, userID string, id uuid.UUID, opts ExportOptions) (*Document, error) {
	full, err := s.FullResume(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if opts.MatchScore != nil && (*opts.MatchScore < 0 || *opts.MatchScore > 100) {
		return nil, domain.NewValidationError("matchScore", "must be between 0 and 100")
	}
	return s.exporter.Export(ctx, full, opts)
}

func (s *Service) ListVersions(ctx context.Context, userID string, resumeID uuid.UUID) ([]domain.ResumeVersion, error) {
	if _, err := s.ownedResume(ctx, userID, resumeID); err != nil {
		return nil, err
	}
	versions, err := s.store.ListResumeVersions(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	s.exporter.refreshURLs(ctx, versions)
	return versions, nil
}

// Stats summarizes the caller's dashboard.
func (s *Service) Stats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	resumes, err := s.store.ListResumes(ctx, userID)
	if err != nil {
		return nil, err
	}
	versions, err := s.store.ListUserVersions(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := &domain.DashboardStats{
		TotalResumes:      len(resumes),
		TotalDownloads:    len(versions),
		AverageMatchScore: statsDefaultMatchScore,
		ProfileViews:      len(resumes) * viewsPerResume,
	}
	sum, n := 0, 0
	for _, v := range versions {
		if v.MatchScore != nil {
			sum += *v.MatchScore
			n++
		}
	}
	if n > 0 {
		stats.AverageMatchScore = (sum + n/2) / n
	}
	return stats, nil
}
