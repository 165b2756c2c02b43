package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "user-alice"
	bob   = "user-bob"
)

type fakeRenderer struct {
	out   []byte
	err   error
	calls int
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.calls++
	return f.out, f.err
}

type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

func newFakeObjects() *fakeObjects { return &fakeObjects{objects: map[string][]byte{}} }

func (f *fakeObjects) Upload(_ context.Context, key string, r io.Reader, size int64, contentType string) error {
	if f.failPut {
		return errors.New("bucket unavailable")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = b
	return nil
}

func (f *fakeObjects) PresignedURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://objects.test/%s?exp=%d", key, int(expiry.Seconds())), nil
}

func newService(t *testing.T, renderer usecase.Renderer, objects usecase.ObjectStore, gen ai.TextGenerator) (*usecase.Service, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	exporter := usecase.NewExporter(renderer, objects, store, time.Hour).WithRetry(3, 0)
	if gen == nil {
		gen = ai.GeneratorFunc(func(context.Context, []ai.Message, int) (string, error) { return "", nil })
	}
	return usecase.NewService(store, exporter, ai.NewGateway(gen)), store
}

func seedResume(t *testing.T, svc *usecase.Service, owner string) *domain.Resume {
	t.Helper()
	r, err := svc.CreateResume(context.Background(), owner, "Backend Engineer", nil)
	require.NoError(t, err)
	return r
}

func TestCreateResumeRequiresTitle(t *testing.T) {
	svc, _ := newService(t, nil, nil, nil)

	_, err := svc.CreateResume(context.Background(), alice, "  ", nil)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
}

func TestResumeLookupHidesOtherOwners(t *testing.T) {
	svc, _ := newService(t, nil, nil, nil)
	ctx := context.Background()
	r := seedResume(t, svc, alice)

	_, err := svc.FullResume(ctx, bob, r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.FullResume(ctx, alice, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.DeleteResume(ctx, bob, r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChildLookupDistinguishesMissingFromForeign(t *testing.T) {
	svc, _ := newService(t, nil, nil, nil)
	ctx := context.Background()
	r := seedResume(t, svc, alice)
	w, err := svc.AddWorkExperience(ctx, alice, r.ID, &domain.WorkExperience{JobTitle: "Engineer", Company: "Acme", StartMonth: 1, StartYear: 2020})
	require.NoError(t, err)

	noop := func(*domain.WorkExperience) error { return nil }

	_, err = svc.UpdateWorkExperience(ctx, bob, w.ID, noop)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteWorkExperience(ctx, bob, w.ID), domain.ErrForbidden)

	_, err = svc.UpdateWorkExperience(ctx, alice, uuid.New(), noop)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteSkill(ctx, alice, uuid.New()), domain.ErrNotFound)

	assert.NoError(t, svc.DeleteWorkExperience(ctx, alice, w.ID))
}

func TestForeignEducationAndSkillsAreForbidden(t *testing.T) {
	svc, _ := newService(t, nil, nil, nil)
	ctx := context.Background()
	r := seedResume(t, svc, alice)
	e, err := svc.AddEducation(ctx, alice, r.ID, &domain.Education{Institution: "MIT", Degree: "BSc", StartMonth: 9, StartYear: 2012})
	require.NoError(t, err)
	sk, err := svc.AddSkill(ctx, alice, r.ID, &domain.Skill{Name: "Go"})
	require.NoError(t, err)

	_, err = svc.UpdateEducation(ctx, bob, e.ID, func(*domain.Education) error { return nil })
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteEducation(ctx, bob, e.ID), domain.ErrForbidden)

	_, err = svc.UpdateSkill(ctx, bob, sk.ID, func(*domain.Skill) error { return nil })
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteSkill(ctx, bob, sk.ID), domain.ErrForbidden)

	_, err = svc.UpdateEducation(ctx, alice, uuid.New(), func(*domain.Education) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSkillNeverStoresZeroProficiency(t *testing.T) {
	svc, store := newService(t, nil, nil, nil)
	ctx := context.Background()
	r := seedResume(t, svc, alice)
	sk, err := svc.AddSkill(ctx, alice, r.ID, &domain.Skill{Name: "Go", Proficiency: 5})
	require.NoError(t, err)

	out, err := svc.UpdateSkill(ctx, alice, sk.ID, func(s *domain.Skill) error {
		s.Proficiency = 0
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProficiency, out.Proficiency)

	stored, err := store.GetSkill(ctx, sk.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProficiency, stored.Proficiency)

	_, err = svc.Export(ctx, alice, r.ID, usecase.ExportOptions{})
	assert.NoError(t, err)
}

func TestAddSectionToForeignResumeIsNotFound(t *testing.T) {
	svc, _ := newService(t, nil, nil, nil)
	r := seedResume(t, svc, alice)

	_, err := svc.AddSkill(context.Background(), bob, r.ID, &domain.Skill{Name: "Go"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAchievementsRoundTrip(t *testing.T) {
	svc, _ := newService(t, nil, nil, nil)
	ctx := context.Background()
	r := seedResume(t, svc, alice)
	achievements := []string{"Cut p99 latency by 40%", "Led a team of 4", "Cut p99 latency by 40%"}

	_, err := svc.AddWorkExperience(ctx, alice, r.ID, &domain.WorkExperience{
		JobTitle: "Engineer", Company: "Acme", StartMonth: 2, StartYear: 2021, Achievements: achievements,
	})
	require.NoError(t, err)

	full, err := svc.FullResume(ctx, alice, r.ID)
	require.NoError(t, err)
	require.Len(t, full.WorkExperience, 1)
	assert.Equal(t, achievements, full.WorkExperience[0].Achievements)
}

func TestUpdateClearsEndDateWhenPresent(t *testing.T) {
	svc, _ := newService(t, nil, nil, nil)
	ctx := context.Background()
	r := seedResume(t, svc, alice)
	end, year := 5, 2022
	w, err := svc.AddWorkExperience(ctx, alice, r.ID, &domain.WorkExperience{
		JobTitle: "Engineer", Company: "Acme", StartMonth: 1, StartYear: 2020, EndMonth: &end, EndYear: &year,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateWorkExperience(ctx, alice, w.ID, func(w *domain.WorkExperience) error {
		w.IsPresent = true
		return nil
	})
	require.NoError(t, err)

	assert.Nil(t, updated.EndMonth)
	assert.Nil(t, updated.EndYear)
	full, err := svc.FullResume(ctx, alice, r.ID)
	require.NoError(t, err)
	assert.Nil(t, full.WorkExperience[0].EndYear)
}

func TestAddSkillDefaultsProficiency(t *testing.T) {
	svc, _ := newService(t, nil, nil, nil)
	r := seedResume(t, svc, alice)

	sk, err := svc.AddSkill(context.Background(), alice, r.ID, &domain.Skill{Name: "Go"})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProficiency, sk.Proficiency)
}

func TestDeleteResumeCascades(t *testing.T) {
	svc, store := newService(t, nil, newFakeObjects(), nil)
	ctx := context.Background()
	r := seedResume(t, svc, alice)
	_, err := svc.UpsertPersonalInfo(ctx, alice, r.ID, &domain.PersonalInfo{FullName: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	w, err := svc.AddWorkExperience(ctx, alice, r.ID, &domain.WorkExperience{JobTitle: "Engineer", Company: "Acme", StartMonth: 1, StartYear: 2020})
	require.NoError(t, err)
	e, err := svc.AddEducation(ctx, alice, r.ID, &domain.Education{Institution: "MIT", Degree: "BSc", StartMonth: 9, StartYear: 2012})
	require.NoError(t, err)
	sk, err := svc.AddSkill(ctx, alice, r.ID, &domain.Skill{Name: "Go"})
	require.NoError(t, err)
	_, err = svc.Export(ctx, alice, r.ID, usecase.ExportOptions{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResume(ctx, alice, r.ID))

	info, err := store.GetPersonalInfo(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, info)
	_, err = store.GetWorkExperience(ctx, w.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.GetEducation(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.GetSkill(ctx, sk.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	versions, err := store.ListUserVersions(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestExportPlainTextWithoutRenderer(t *testing.T) {
	svc, _ := newService(t, nil, nil, nil)
	ctx := context.Background()
	r := seedResume(t, svc, alice)
	_, err := svc.UpsertPersonalInfo(ctx, alice, r.ID, &domain.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"})
	require.NoError(t, err)

	doc, err := svc.Export(ctx, alice, r.ID, usecase.ExportOptions{})
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "Backend Engineer.pdf", doc.Filename)
	assert.True(t, strings.HasPrefix(string(doc.Body), "Resume for Ada Lovelace"))
	assert.Nil(t, doc.Version)
}

func TestExportRetriesInvalidPDF(t *testing.T) {
	renderer := &fakeRenderer{out: []byte("<html>not a pdf")}
	svc, _ := newService(t, renderer, nil, nil)
	r := seedResume(t, svc, alice)

	_, err := svc.Export(context.Background(), alice, r.ID, usecase.ExportOptions{})

	assert.ErrorIs(t, err, usecase.ErrInvalidPDF)
	assert.Equal(t, 3, renderer.calls)
}

func TestExportArchivesVersion(t *testing.T) {
	renderer := &fakeRenderer{out: []byte("%PDF-1.7 body")}
	objects := newFakeObjects()
	svc, _ := newService(t, renderer, objects, nil)
	ctx := context.Background()
	r := seedResume(t, svc, alice)
	score := 64

	doc, err := svc.Export(ctx, alice, r.ID, usecase.ExportOptions{MatchScore: &score})
	require.NoError(t, err)
	require.NotNil(t, doc.Version)

	assert.Equal(t, 1, renderer.calls)
	assert.Equal(t, 1, doc.Version.Version)
	assert.Equal(t, usecase.ArchiveKey(r.ID, doc.Version.ID), doc.Version.ObjectKey)
	assert.True(t, bytes.Equal(doc.Body, objects.objects[doc.Version.ObjectKey]))

	_, err = svc.Export(ctx, alice, r.ID, usecase.ExportOptions{})
	require.NoError(t, err)

	versions, err := svc.ListVersions(ctx, alice, r.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].Version)
	assert.Contains(t, versions[0].PDFURL, versions[0].ObjectKey)
}

func TestExportSucceedsWhenArchiveFails(t *testing.T) {
	objects := newFakeObjects()
	objects.failPut = true
	svc, _ := newService(t, nil, objects, nil)
	r := seedResume(t, svc, alice)

	doc, err := svc.Export(context.Background(), alice, r.ID, usecase.ExportOptions{})

	require.NoError(t, err)
	assert.Nil(t, doc.Version)
	assert.NotEmpty(t, doc.Body)
}

func TestStats(t *testing.T) {
	svc, _ := newService(t, nil, newFakeObjects(), nil)
	ctx := context.Background()

	stats, err := svc.Stats(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{AverageMatchScore: 85}, *stats)

	r := seedResume(t, svc, alice)
	seedResume(t, svc, alice)
	seedResume(t, svc, bob)
	s1, s2 := 70, 81
	_, err = svc.Export(ctx, alice, r.ID, usecase.ExportOptions{MatchScore: &s1})
	require.NoError(t, err)
	_, err = svc.Export(ctx, alice, r.ID, usecase.ExportOptions{MatchScore: &s2})
	require.NoError(t, err)
	_, err = svc.Export(ctx, alice, r.ID, usecase.ExportOptions{})
	require.NoError(t, err)

	stats, err = svc.Stats(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalResumes)
	assert.Equal(t, 3, stats.TotalDownloads)
	assert.Equal(t, 76, stats.AverageMatchScore)
	assert.Equal(t, 30, stats.ProfileViews)
}

func TestAnalyzeJobMatchUsesStoredDescription(t *testing.T) {
	var prompt string
	gen := ai.GeneratorFunc(func(_ context.Context, messages []ai.Message, _ int) (string, error) {
		prompt = messages[len(messages)-1].Content
		return `{"matchScore": 91, "missingSkills": [], "strengths": ["Go"], "suggestions": []}`, nil
	})
	svc, _ := newService(t, nil, nil, gen)
	ctx := context.Background()
	r := seedResume(t, svc, alice)
	jd, err := svc.CreateJobDescription(ctx, alice, &domain.JobDescription{
		Title: "Platform Engineer", Description: "Operate Kubernetes clusters", Requirements: []string{"Go"},
	})
	require.NoError(t, err)

	m, err := svc.AnalyzeJobMatch(ctx, alice, usecase.JobMatchRequest{ResumeID: r.ID, JobDescriptionID: &jd.ID})
	require.NoError(t, err)

	assert.Equal(t, 91, m.MatchScore)
	assert.Contains(t, prompt, "Operate Kubernetes clusters")

	_, err = svc.AnalyzeJobMatch(ctx, bob, usecase.JobMatchRequest{ResumeID: r.ID, JobDescription: "anything"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AnalyzeJobMatch(ctx, bob, usecase.JobMatchRequest{ResumeID: r.ID, JobDescriptionID: &jd.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AnalyzeJobMatch(ctx, alice, usecase.JobMatchRequest{ResumeID: r.ID})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}
