package repository

import (
	"context"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

const jobDescriptionColumns = `id, user_id AS "userId", title, company, description,
	coalesce(requirements, '{}') AS requirements, created_at AS "createdAt"`

func (s *Store) ListJobDescriptions(ctx context.Context, userID string) ([]domain.JobDescription, error) {
	return queryList[domain.JobDescription](ctx, s.pool,
		many(jobDescriptionColumns, `job_descriptions WHERE user_id = $1 ORDER BY created_at DESC`), userID)
}

func (s *Store) GetJobDescription(ctx context.Context, id uuid.UUID) (*domain.JobDescription, error) {
	return queryOne[domain.JobDescription](ctx, s.pool, one(jobDescriptionColumns, `job_descriptions WHERE id = $1`), id)
}

func (s *Store) CreateJobDescription(ctx context.Context, j *domain.JobDescription) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO job_descriptions (id, user_id, title, company, description, requirements, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		j.ID, j.UserID, j.Title, j.Company, j.Description, nonNil(j.Requirements), j.CreatedAt)
	return err
}
