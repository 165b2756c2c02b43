package repository

import (
	"context"

	"resume-builder/internal/domain"
)

const userColumns = `id, email, first_name AS "firstName", last_name AS "lastName",
	profile_image_url AS "profileImageUrl", created_at AS "createdAt", updated_at AS "updatedAt"`

func (s *Store) UpsertUser(ctx context.Context, u *domain.User) (*domain.User, error) {
	_, err := s.pool.Exec(ctx, `INSERT INTO users (id, email, first_name, last_name, profile_image_url, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			email = coalesce(EXCLUDED.email, users.email),
			first_name = coalesce(NULLIF(EXCLUDED.first_name, ''), users.first_name),
			last_name = coalesce(NULLIF(EXCLUDED.last_name, ''), users.last_name),
			profile_image_url = coalesce(NULLIF(EXCLUDED.profile_image_url, ''), users.profile_image_url),
			updated_at = now()`,
		u.ID, u.Email, u.FirstName, u.LastName, u.ProfileImageURL)
	if err != nil {
		return nil, err
	}
	return queryOne[domain.User](ctx, s.pool, one(userColumns, `users WHERE id = $1`), u.ID)
}
