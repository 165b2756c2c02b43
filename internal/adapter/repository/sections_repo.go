package repository

import (
	"context"
	"errors"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

const personalInfoColumns = `id, resume_id AS "resumeId", full_name AS "fullName", email, phone, location,
	website, linkedin, github, summary, updated_at AS "updatedAt"`

const experienceColumns = `id, resume_id AS "resumeId", job_title AS "jobTitle", company, location,
	start_month AS "startMonth", start_year AS "startYear", end_month AS "endMonth", end_year AS "endYear",
	is_present AS "isPresent", description, coalesce(achievements, '{}') AS achievements, sort_order AS "order"`

const educationColumns = `id, resume_id AS "resumeId", institution, degree, field_of_study AS "fieldOfStudy",
	start_month AS "startMonth", start_year AS "startYear", end_month AS "endMonth", end_year AS "endYear",
	is_present AS "isPresent", gpa::float8 AS gpa, coalesce(achievements, '{}') AS achievements, sort_order AS "order"`

const skillColumns = `id, resume_id AS "resumeId", name, category, proficiency, sort_order AS "order"`

const datedOrder = `ORDER BY sort_order ASC, start_year DESC, start_month DESC`

func (s *Store) GetPersonalInfo(ctx context.Context, resumeID uuid.UUID) (*domain.PersonalInfo, error) {
	p, err := queryOne[domain.PersonalInfo](ctx, s.pool, one(personalInfoColumns, `personal_info WHERE resume_id = $1`), resumeID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (s *Store) UpsertPersonalInfo(ctx context.Context, p *domain.PersonalInfo) error {
	var id string
	err := s.pool.QueryRow(ctx, `INSERT INTO personal_info (id, resume_id, full_name, email, phone, location, website, linkedin, github, summary, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (resume_id) DO UPDATE SET full_name = EXCLUDED.full_name, email = EXCLUDED.email, phone = EXCLUDED.phone,
			location = EXCLUDED.location, website = EXCLUDED.website, linkedin = EXCLUDED.linkedin, github = EXCLUDED.github,
			summary = EXCLUDED.summary, updated_at = EXCLUDED.updated_at
		RETURNING id::text`,
		p.ID, p.ResumeID, p.FullName, p.Email, p.Phone, p.Location, p.Website, p.LinkedIn, p.GitHub, p.Summary, p.UpdatedAt).Scan(&id)
	if err != nil {
		return err
	}
	// an existing row keeps its id
	p.ID, err = uuid.Parse(id)
	return err
}

func (s *Store) ListWorkExperience(ctx context.Context, resumeID uuid.UUID) ([]domain.WorkExperience, error) {
	return queryList[domain.WorkExperience](ctx, s.pool,
		many(experienceColumns, `work_experience WHERE resume_id = $1 `+datedOrder), resumeID)
}

func (s *Store) GetWorkExperience(ctx context.Context, id uuid.UUID) (*domain.WorkExperience, error) {
	return queryOne[domain.WorkExperience](ctx, s.pool, one(experienceColumns, `work_experience WHERE id = $1`), id)
}

func (s *Store) CreateWorkExperience(ctx context.Context, w *domain.WorkExperience) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO work_experience (id, resume_id, job_title, company, location, start_month, start_year,
		end_month, end_year, is_present, description, achievements, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		w.ID, w.ResumeID, w.JobTitle, w.Company, w.Location, w.StartMonth, w.StartYear,
		w.EndMonth, w.EndYear, w.IsPresent, w.Description, nonNil(w.Achievements), w.Order)
	return err
}

func (s *Store) UpdateWorkExperience(ctx context.Context, w *domain.WorkExperience) error {
	return s.exec(ctx, `UPDATE work_experience SET job_title = $2, company = $3, location = $4, start_month = $5, start_year = $6,
		end_month = $7, end_year = $8, is_present = $9, description = $10, achievements = $11, sort_order = $12
		WHERE id = $1`,
		w.ID, w.JobTitle, w.Company, w.Location, w.StartMonth, w.StartYear,
		w.EndMonth, w.EndYear, w.IsPresent, w.Description, nonNil(w.Achievements), w.Order)
}

func (s *Store) DeleteWorkExperience(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, `DELETE FROM work_experience WHERE id = $1`, id)
}

func (s *Store) ListEducation(ctx context.Context, resumeID uuid.UUID) ([]domain.Education, error) {
	return queryList[domain.Education](ctx, s.pool,
		many(educationColumns, `education WHERE resume_id = $1 `+datedOrder), resumeID)
}

func (s *Store) GetEducation(ctx context.Context, id uuid.UUID) (*domain.Education, error) {
	return queryOne[domain.Education](ctx, s.pool, one(educationColumns, `education WHERE id = $1`), id)
}

func (s *Store) CreateEducation(ctx context.Context, e *domain.Education) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO education (id, resume_id, institution, degree, field_of_study, start_month, start_year,
		end_month, end_year, is_present, gpa, achievements, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		e.ID, e.ResumeID, e.Institution, e.Degree, e.FieldOfStudy, e.StartMonth, e.StartYear,
		e.EndMonth, e.EndYear, e.IsPresent, e.GPA, nonNil(e.Achievements), e.Order)
	return err
}

func (s *Store) UpdateEducation(ctx context.Context, e *domain.Education) error {
	return s.exec(ctx, `UPDATE education SET institution = $2, degree = $3, field_of_study = $4, start_month = $5, start_year = $6,
		end_month = $7, end_year = $8, is_present = $9, gpa = $10, achievements = $11, sort_order = $12
		WHERE id = $1`,
		e.ID, e.Institution, e.Degree, e.FieldOfStudy, e.StartMonth, e.StartYear,
		e.EndMonth, e.EndYear, e.IsPresent, e.GPA, nonNil(e.Achievements), e.Order)
}

func (s *Store) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, `DELETE FROM education WHERE id = $1`, id)
}

func (s *Store) ListSkills(ctx context.Context, resumeID uuid.UUID) ([]domain.Skill, error) {
	return queryList[domain.Skill](ctx, s.pool,
		many(skillColumns, `skills WHERE resume_id = $1 ORDER BY sort_order ASC, lower(name) ASC`), resumeID)
}

func (s *Store) GetSkill(ctx context.Context, id uuid.UUID) (*domain.Skill, error) {
	return queryOne[domain.Skill](ctx, s.pool, one(skillColumns, `skills WHERE id = $1`), id)
}

func (s *Store) CreateSkill(ctx context.Context, sk *domain.Skill) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO skills (id, resume_id, name, category, proficiency, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		sk.ID, sk.ResumeID, sk.Name, sk.Category, sk.Proficiency, sk.Order)
	return err
}

func (s *Store) UpdateSkill(ctx context.Context, sk *domain.Skill) error {
	return s.exec(ctx, `UPDATE skills SET name = $2, category = $3, proficiency = $4, sort_order = $5 WHERE id = $1`,
		sk.ID, sk.Name, sk.Category, sk.Proficiency, sk.Order)
}

func (s *Store) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
}
