package repository

import (
	"context"
	"testing"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, m *MemoryStore, userID string) uuid.UUID {
	t.Helper()
	r := &domain.Resume{ID: uuid.New(), UserID: userID, Title: "CV"}
	require.NoError(t, m.CreateResume(context.Background(), r))
	return r.ID
}

func TestMemoryPersonalInfoUpsertKeepsID(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	id := seed(t, m, "u1")

	info, err := m.GetPersonalInfo(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, info)

	first := &domain.PersonalInfo{ResumeID: id, FullName: "Ada"}
	require.NoError(t, m.UpsertPersonalInfo(ctx, first))
	second := &domain.PersonalInfo{ID: uuid.New(), ResumeID: id, FullName: "Ada L."}
	require.NoError(t, m.UpsertPersonalInfo(ctx, second))

	got, err := m.GetPersonalInfo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Ada L.", got.FullName)
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	id := seed(t, m, "u1")
	w := &domain.WorkExperience{ID: uuid.New(), ResumeID: id, Achievements: []string{"one"}}
	require.NoError(t, m.CreateWorkExperience(ctx, w))

	w.Achievements[0] = "mutated"
	got, err := m.GetWorkExperience(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, got.Achievements)
}

func TestMemoryDoesNotShareDatePointers(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	id := seed(t, m, "u1")
	month, year, gpa := 6, 2022, 3.7
	w := &domain.WorkExperience{ID: uuid.New(), ResumeID: id, StartMonth: 1, StartYear: 2020, EndMonth: &month, EndYear: &year}
	e := &domain.Education{ID: uuid.New(), ResumeID: id, StartMonth: 9, StartYear: 2016, EndMonth: &month, EndYear: &year, GPA: &gpa}
	require.NoError(t, m.CreateWorkExperience(ctx, w))
	require.NoError(t, m.CreateEducation(ctx, e))

	// the caller's variables are not the stored ones
	month, year, gpa = 99, 1800, 0

	gotW, err := m.GetWorkExperience(ctx, w.ID)
	require.NoError(t, err)
	*gotW.EndMonth, *gotW.EndYear = 12, 1999
	gotE, err := m.GetEducation(ctx, e.ID)
	require.NoError(t, err)
	*gotE.GPA = 1

	listW, err := m.ListWorkExperience(ctx, id)
	require.NoError(t, err)
	require.Len(t, listW, 1)
	assert.Equal(t, 6, *listW[0].EndMonth)
	assert.Equal(t, 2022, *listW[0].EndYear)

	listE, err := m.ListEducation(ctx, id)
	require.NoError(t, err)
	require.Len(t, listE, 1)
	assert.Equal(t, 6, *listE[0].EndMonth)
	assert.Equal(t, 3.7, *listE[0].GPA)

	// an update keeps its own copy too
	end := 2023
	gotW.EndYear = &end
	require.NoError(t, m.UpdateWorkExperience(ctx, gotW))
	end = 1800
	again, err := m.GetWorkExperience(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 2023, *again.EndYear)
}

func TestMemoryChildRequiresResume(t *testing.T) {
	m := NewMemoryStore()

	err := m.CreateSkill(context.Background(), &domain.Skill{ID: uuid.New(), ResumeID: uuid.New(), Name: "Go"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryVersionNumbering(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	a, b := seed(t, m, "u1"), seed(t, m, "u1")

	for _, rid := range []uuid.UUID{a, a, b, a} {
		require.NoError(t, m.CreateResumeVersion(ctx, &domain.ResumeVersion{ID: uuid.New(), ResumeID: rid}))
	}

	va, err := m.ListResumeVersions(ctx, a)
	require.NoError(t, err)
	require.Len(t, va, 3)
	assert.Equal(t, 3, va[0].Version)
	assert.Equal(t, 1, va[2].Version)

	vb, err := m.ListResumeVersions(ctx, b)
	require.NoError(t, err)
	require.Len(t, vb, 1)
	assert.Equal(t, 1, vb[0].Version)

	all, err := m.ListUserVersions(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 4)
	none, err := m.ListUserVersions(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryDeleteResumeCascades(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	keep, drop := seed(t, m, "u1"), seed(t, m, "u1")
	for _, rid := range []uuid.UUID{keep, drop} {
		require.NoError(t, m.CreateSkill(ctx, &domain.Skill{ID: uuid.New(), ResumeID: rid, Name: "Go"}))
		require.NoError(t, m.CreateEducation(ctx, &domain.Education{ID: uuid.New(), ResumeID: rid}))
	}

	require.NoError(t, m.DeleteResume(ctx, drop))
	assert.ErrorIs(t, m.DeleteResume(ctx, drop), domain.ErrNotFound)

	skills, err := m.ListSkills(ctx, drop)
	require.NoError(t, err)
	assert.Empty(t, skills)
	skills, err = m.ListSkills(ctx, keep)
	require.NoError(t, err)
	assert.Len(t, skills, 1)
	edu, err := m.ListEducation(ctx, keep)
	require.NoError(t, err)
	assert.Len(t, edu, 1)
}

func TestMemoryUpsertUser(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	u, err := m.UpsertUser(ctx, &domain.User{ID: "u1", Email: "a@example.com"})
	require.NoError(t, err)
	created := u.CreatedAt

	u, err = m.UpsertUser(ctx, &domain.User{ID: "u1", Email: "b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", u.Email)
	assert.Equal(t, created, u.CreatedAt)
}
