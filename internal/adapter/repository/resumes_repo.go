package repository

import (
	"context"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

const resumeColumns = `id, user_id AS "userId", title, is_active AS "isActive",
	created_at AS "createdAt", updated_at AS "updatedAt"`

func (s *Store) ListResumes(ctx context.Context, userID string) ([]domain.Resume, error) {
	return queryList[domain.Resume](ctx, s.pool,
		many(resumeColumns, `resumes WHERE user_id = $1 ORDER BY updated_at DESC`), userID)
}

func (s *Store) GetResume(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	return queryOne[domain.Resume](ctx, s.pool, one(resumeColumns, `resumes WHERE id = $1`), id)
}

func (s *Store) CreateResume(ctx context.Context, r *domain.Resume) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO resumes (id, user_id, title, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		r.ID, r.UserID, r.Title, r.IsActive, r.CreatedAt, r.UpdatedAt)
	return err
}

func (s *Store) UpdateResume(ctx context.Context, r *domain.Resume) error {
	return s.exec(ctx, `UPDATE resumes SET title = $2, is_active = $3, updated_at = $4 WHERE id = $1`,
		r.ID, r.Title, r.IsActive, r.UpdatedAt)
}

// resumeChildren lists the tables deleted together with a resume.
var resumeChildren = []string{
	"personal_info",
	"work_experience",
	"education",
	"skills",
	"resume_versions",
}

func (s *Store) DeleteResume(ctx context.Context, id uuid.UUID) error {
	return s.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		for _, table := range resumeChildren {
			if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE resume_id = $1`, id); err != nil {
				return err
			}
		}
		tag, err := tx.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
