package repository

import (
	"context"
	"errors"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

const versionColumns = `v.id, v.resume_id AS "resumeId", v.version, v.object_key AS "objectKey", v.pdf_url AS "pdfUrl",
	v.match_score AS "matchScore", v.job_description_id AS "jobDescriptionId", v.created_at AS "createdAt"`

func (s *Store) CreateResumeVersion(ctx context.Context, v *domain.ResumeVersion) error {
	return s.pool.BeginFunc(ctx, func(tx pgx.Tx) error {
		// serialize version numbering per resume
		var locked int
		if err := tx.QueryRow(ctx, `SELECT 1 FROM resumes WHERE id = $1 FOR UPDATE`, v.ResumeID).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := tx.QueryRow(ctx, `SELECT coalesce(max(version), 0) + 1 FROM resume_versions WHERE resume_id = $1`, v.ResumeID).Scan(&v.Version); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `INSERT INTO resume_versions (id, resume_id, version, object_key, pdf_url, match_score, job_description_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			v.ID, v.ResumeID, v.Version, v.ObjectKey, v.PDFURL, v.MatchScore, v.JobDescriptionID, v.CreatedAt)
		return err
	})
}

func (s *Store) ListResumeVersions(ctx context.Context, resumeID uuid.UUID) ([]domain.ResumeVersion, error) {
	return queryList[domain.ResumeVersion](ctx, s.pool,
		many(versionColumns, `resume_versions v WHERE v.resume_id = $1 ORDER BY v.version DESC`), resumeID)
}

func (s *Store) ListUserVersions(ctx context.Context, userID string) ([]domain.ResumeVersion, error) {
	return queryList[domain.ResumeVersion](ctx, s.pool,
		many(versionColumns, `resume_versions v JOIN resumes r ON r.id = v.resume_id WHERE r.user_id = $1 ORDER BY v.created_at DESC`), userID)
}
