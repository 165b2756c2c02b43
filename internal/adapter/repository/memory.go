package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/google/uuid"
)

var _ usecase.Store = (*MemoryStore)(nil)

// MemoryStore is a process-local record store used when no database is
// configured and in tests. It follows the same contracts as Store.
type MemoryStore struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	resumes    map[uuid.UUID]domain.Resume
	personal   map[uuid.UUID]domain.PersonalInfo // keyed by resume id
	experience map[uuid.UUID]domain.WorkExperience
	education  map[uuid.UUID]domain.Education
	skills     map[uuid.UUID]domain.Skill
	jobs       map[uuid.UUID]domain.JobDescription
	versions   map[uuid.UUID]domain.ResumeVersion
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      map[string]domain.User{},
		resumes:    map[uuid.UUID]domain.Resume{},
		personal:   map[uuid.UUID]domain.PersonalInfo{},
		experience: map[uuid.UUID]domain.WorkExperience{},
		education:  map[uuid.UUID]domain.Education{},
		skills:     map[uuid.UUID]domain.Skill{},
		jobs:       map[uuid.UUID]domain.JobDescription{},
		versions:   map[uuid.UUID]domain.ResumeVersion{},
	}
}

func cloneStrings(s []string) []string {
	return append([]string{}, s...)
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneWork copies w without sharing any slice or pointer with it.
func cloneWork(w domain.WorkExperience) domain.WorkExperience {
	w.EndMonth, w.EndYear = cloneInt(w.EndMonth), cloneInt(w.EndYear)
	w.Achievements = cloneStrings(w.Achievements)
	return w
}

func cloneEducation(e domain.Education) domain.Education {
	e.EndMonth, e.EndYear = cloneInt(e.EndMonth), cloneInt(e.EndYear)
	if e.GPA != nil {
		g := *e.GPA
		e.GPA = &g
	}
	e.Achievements = cloneStrings(e.Achievements)
	return e
}

func (m *MemoryStore) UpsertUser(_ context.Context, u *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	cur, ok := m.users[u.ID]
	if !ok {
		cur = domain.User{ID: u.ID, CreatedAt: now}
	}
	if u.Email != "" {
		cur.Email = u.Email
	}
	if u.FirstName != "" {
		cur.FirstName = u.FirstName
	}
	if u.LastName != "" {
		cur.LastName = u.LastName
	}
	if u.ProfileImageURL != "" {
		cur.ProfileImageURL = u.ProfileImageURL
	}
	cur.UpdatedAt = now
	m.users[u.ID] = cur
	out := cur
	return &out, nil
}

func (m *MemoryStore) ListResumes(_ context.Context, userID string) ([]domain.Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Resume{}
	for _, r := range m.resumes {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (m *MemoryStore) GetResume(_ context.Context, id uuid.UUID) (*domain.Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.resumes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

func (m *MemoryStore) CreateResume(_ context.Context, r *domain.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumes[r.ID] = *r
	return nil
}

func (m *MemoryStore) UpdateResume(_ context.Context, r *domain.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[r.ID]; !ok {
		return domain.ErrNotFound
	}
	m.resumes[r.ID] = *r
	return nil
}

func (m *MemoryStore) DeleteResume(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.personal, id)
	for k, v := range m.experience {
		if v.ResumeID == id {
			delete(m.experience, k)
		}
	}
	for k, v := range m.education {
		if v.ResumeID == id {
			delete(m.education, k)
		}
	}
	for k, v := range m.skills {
		if v.ResumeID == id {
			delete(m.skills, k)
		}
	}
	for k, v := range m.versions {
		if v.ResumeID == id {
			delete(m.versions, k)
		}
	}
	delete(m.resumes, id)
	return nil
}

func (m *MemoryStore) GetPersonalInfo(_ context.Context, resumeID uuid.UUID) (*domain.PersonalInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.personal[resumeID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MemoryStore) UpsertPersonalInfo(_ context.Context, p *domain.PersonalInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.personal[p.ResumeID]; ok {
		p.ID = cur.ID
	} else if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.personal[p.ResumeID] = *p
	return nil
}

func (m *MemoryStore) ListWorkExperience(_ context.Context, resumeID uuid.UUID) ([]domain.WorkExperience, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.WorkExperience{}
	for _, w := range m.experience {
		if w.ResumeID == resumeID {
			out = append(out, cloneWork(w))
		}
	}
	domain.SortWorkExperience(out)
	return out, nil
}

func (m *MemoryStore) GetWorkExperience(_ context.Context, id uuid.UUID) (*domain.WorkExperience, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.experience[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := cloneWork(w)
	return &c, nil
}

func (m *MemoryStore) CreateWorkExperience(_ context.Context, w *domain.WorkExperience) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[w.ResumeID]; !ok {
		return domain.ErrNotFound
	}
	m.experience[w.ID] = cloneWork(*w)
	return nil
}

func (m *MemoryStore) UpdateWorkExperience(_ context.Context, w *domain.WorkExperience) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.experience[w.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c := cloneWork(*w)
	c.ResumeID = cur.ResumeID
	m.experience[w.ID] = c
	return nil
}

func (m *MemoryStore) DeleteWorkExperience(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.experience[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.experience, id)
	return nil
}

func (m *MemoryStore) ListEducation(_ context.Context, resumeID uuid.UUID) ([]domain.Education, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Education{}
	for _, e := range m.education {
		if e.ResumeID == resumeID {
			out = append(out, cloneEducation(e))
		}
	}
	domain.SortEducation(out)
	return out, nil
}

func (m *MemoryStore) GetEducation(_ context.Context, id uuid.UUID) (*domain.Education, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.education[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := cloneEducation(e)
	return &c, nil
}

func (m *MemoryStore) CreateEducation(_ context.Context, e *domain.Education) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[e.ResumeID]; !ok {
		return domain.ErrNotFound
	}
	m.education[e.ID] = cloneEducation(*e)
	return nil
}

func (m *MemoryStore) UpdateEducation(_ context.Context, e *domain.Education) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.education[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c := cloneEducation(*e)
	c.ResumeID = cur.ResumeID
	m.education[e.ID] = c
	return nil
}

func (m *MemoryStore) DeleteEducation(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.education[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.education, id)
	return nil
}

func (m *MemoryStore) ListSkills(_ context.Context, resumeID uuid.UUID) ([]domain.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Skill{}
	for _, s := range m.skills {
		if s.ResumeID == resumeID {
			out = append(out, s)
		}
	}
	domain.SortSkills(out)
	return out, nil
}

func (m *MemoryStore) GetSkill(_ context.Context, id uuid.UUID) (*domain.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.skills[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) CreateSkill(_ context.Context, s *domain.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[s.ResumeID]; !ok {
		return domain.ErrNotFound
	}
	m.skills[s.ID] = *s
	return nil
}

func (m *MemoryStore) UpdateSkill(_ context.Context, s *domain.Skill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.skills[s.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c := *s
	c.ResumeID = cur.ResumeID
	m.skills[s.ID] = c
	return nil
}

func (m *MemoryStore) DeleteSkill(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.skills[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.skills, id)
	return nil
}

func (m *MemoryStore) ListJobDescriptions(_ context.Context, userID string) ([]domain.JobDescription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.JobDescription{}
	for _, j := range m.jobs {
		if j.UserID == userID {
			j.Requirements = cloneStrings(j.Requirements)
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) GetJobDescription(_ context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	j.Requirements = cloneStrings(j.Requirements)
	return &j, nil
}

func (m *MemoryStore) CreateJobDescription(_ context.Context, j *domain.JobDescription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *j
	c.Requirements = cloneStrings(j.Requirements)
	m.jobs[j.ID] = c
	return nil
}

func (m *MemoryStore) CreateResumeVersion(_ context.Context, v *domain.ResumeVersion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[v.ResumeID]; !ok {
		return domain.ErrNotFound
	}
	next := 1
	for _, cur := range m.versions {
		if cur.ResumeID == v.ResumeID && cur.Version >= next {
			next = cur.Version + 1
		}
	}
	v.Version = next
	m.versions[v.ID] = *v
	return nil
}

func (m *MemoryStore) ListResumeVersions(_ context.Context, resumeID uuid.UUID) ([]domain.ResumeVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.ResumeVersion{}
	for _, v := range m.versions {
		if v.ResumeID == resumeID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version > out[j].Version })
	return out, nil
}

func (m *MemoryStore) ListUserVersions(_ context.Context, userID string) ([]domain.ResumeVersion, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.ResumeVersion{}
	for _, v := range m.versions {
		if r, ok := m.resumes[v.ResumeID]; ok && r.UserID == userID {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
