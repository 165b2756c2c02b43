package migration

import (
	"context"
	"fmt"

	"resume-builder/internal/logger"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration is one idempotent schema step.
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// Migrations lists the schema steps in apply order.
var Migrations = []Migration{
	{Name: "create_users", Up: execAll(createUsers)},
	{Name: "create_resumes", Up: execAll(createResumes, `CREATE INDEX IF NOT EXISTS resumes_user_id_idx ON resumes (user_id)`)},
	{Name: "create_personal_info", Up: execAll(createPersonalInfo)},
	{Name: "create_work_experience", Up: execAll(createWorkExperience, `CREATE INDEX IF NOT EXISTS work_experience_resume_id_idx ON work_experience (resume_id)`)},
	{Name: "create_education", Up: execAll(createEducation, `CREATE INDEX IF NOT EXISTS education_resume_id_idx ON education (resume_id)`)},
	{Name: "create_skills", Up: execAll(createSkills, `CREATE INDEX IF NOT EXISTS skills_resume_id_idx ON skills (resume_id)`)},
	{Name: "create_job_descriptions", Up: execAll(createJobDescriptions)},
	{Name: "create_resume_versions", Up: execAll(createResumeVersions)},
	{Name: "add_location_to_work_experience", Up: addColumn("work_experience", "location", "TEXT")},
}

// RunMigrations applies every migration in order, stopping at the first failure.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	logger.Info().Int("count", len(Migrations)).Msg("starting database migrations")
	for _, m := range Migrations {
		if err := m.Up(ctx, pool); err != nil {
			logger.Error().Err(err).Str("name", m.Name).Msg("migration failed")
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		logger.Debug().Str("name", m.Name).Msg("migration completed")
	}
	logger.Info().Msg("all migrations completed")
	return nil
}

func execAll(stmts ...string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		for _, q := range stmts {
			if _, err := pool.Exec(ctx, q); err != nil {
				return err
			}
		}
		return nil
	}
}

// addColumn adds a column to an existing table. Failures are logged and
// tolerated since older databases may already carry the column.
func addColumn(table, column, typ string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		q := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN IF NOT EXISTS %s %s`, table, column, typ)
		if _, err := pool.Exec(ctx, q); err != nil {
			logger.Warn().Err(err).Str("table", table).Str("column", column).Msg("error adding column (may already exist)")
		}
		return nil
	}
}

const createUsers = `
CREATE TABLE IF NOT EXISTS users (
	id VARCHAR PRIMARY KEY,
	email VARCHAR UNIQUE,
	first_name VARCHAR,
	last_name VARCHAR,
	profile_image_url VARCHAR,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const createResumes = `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY,
	user_id VARCHAR NOT NULL,
	title TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const createPersonalInfo = `
CREATE TABLE IF NOT EXISTS personal_info (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL UNIQUE REFERENCES resumes (id) ON DELETE CASCADE,
	full_name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	location TEXT,
	website TEXT,
	linkedin TEXT,
	github TEXT,
	summary TEXT,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const createWorkExperience = `
CREATE TABLE IF NOT EXISTS work_experience (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes (id) ON DELETE CASCADE,
	job_title TEXT NOT NULL,
	company TEXT NOT NULL,
	start_month INTEGER NOT NULL,
	start_year INTEGER NOT NULL,
	end_month INTEGER,
	end_year INTEGER,
	is_present BOOLEAN NOT NULL DEFAULT false,
	description TEXT,
	achievements TEXT[] NOT NULL DEFAULT '{}',
	sort_order INTEGER NOT NULL DEFAULT 0
)`

const createEducation = `
CREATE TABLE IF NOT EXISTS education (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes (id) ON DELETE CASCADE,
	institution TEXT NOT NULL,
	degree TEXT NOT NULL,
	field_of_study TEXT,
	start_month INTEGER NOT NULL,
	start_year INTEGER NOT NULL,
	end_month INTEGER,
	end_year INTEGER,
	is_present BOOLEAN NOT NULL DEFAULT false,
	gpa NUMERIC(3, 2),
	achievements TEXT[] NOT NULL DEFAULT '{}',
	sort_order INTEGER NOT NULL DEFAULT 0
)`

const createSkills = `
CREATE TABLE IF NOT EXISTS skills (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes (id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	category TEXT,
	proficiency INTEGER NOT NULL DEFAULT 3,
	sort_order INTEGER NOT NULL DEFAULT 0
)`

const createJobDescriptions = `
CREATE TABLE IF NOT EXISTS job_descriptions (
	id UUID PRIMARY KEY,
	user_id VARCHAR NOT NULL,
	title TEXT NOT NULL,
	company TEXT,
	description TEXT NOT NULL,
	requirements TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const createResumeVersions = `
CREATE TABLE IF NOT EXISTS resume_versions (
	id UUID PRIMARY KEY,
	resume_id UUID NOT NULL REFERENCES resumes (id) ON DELETE CASCADE,
	version INTEGER NOT NULL,
	object_key TEXT NOT NULL,
	pdf_url TEXT,
	match_score INTEGER,
	job_description_id UUID REFERENCES job_descriptions (id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (resume_id, version)
)`
