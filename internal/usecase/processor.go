package usecase

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"path"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

const (
	defaultRenderAttempts = 3
	defaultRenderBackoff  = time.Second
	defaultURLExpiry      = 24 * time.Hour
)

// ErrInvalidPDF is returned when the renderer output lacks a PDF header.
var ErrInvalidPDF = errors.New("renderer returned invalid PDF output")

// Exporter turns an aggregated resume into a downloadable document and
// optionally archives it.
type Exporter struct {
	renderer  Renderer
	objects   ObjectStore
	versions  VersionStore
	tpl       *template.Template
	urlExpiry time.Duration
	attempts  int
	backoff   time.Duration
}

// NewExporter wires the exporter. renderer and objects may be nil: without a
// renderer the plain-text layout is returned, without an object store nothing
// is archived.
func NewExporter(renderer Renderer, objects ObjectStore, versions VersionStore, urlExpiry time.Duration) *Exporter {
	if urlExpiry <= 0 {
		urlExpiry = defaultURLExpiry
	}
	tpl := template.Must(template.New("resume.html.tmpl").
		Funcs(template.FuncMap{"stars": stars}).
		ParseFS(templateFS, "templates/resume.html.tmpl"))
	return &Exporter{
		renderer:  renderer,
		objects:   objects,
		versions:  versions,
		tpl:       tpl,
		urlExpiry: urlExpiry,
		attempts:  defaultRenderAttempts,
		backoff:   defaultRenderBackoff,
	}
}

// WithRetry overrides the render attempt count and the initial backoff.
func (e *Exporter) WithRetry(attempts int, backoff time.Duration) *Exporter {
	if attempts > 0 {
		e.attempts = attempts
	}
	e.backoff = backoff
	return e
}

func stars(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 5 {
		level = 5
	}
	return strings.Repeat("●", level) + strings.Repeat("○", 5-level)
}

// Export builds, validates and renders the resume. Archiving is best-effort.
func (e *Exporter) Export(ctx context.Context, full *domain.FullResume, opts ExportOptions) (*Document, error) {
	doc := BuildDocument(full)
	if err := model.ValidateDocument(doc); err != nil {
		return nil, err
	}

	body, err := e.render(ctx, doc)
	if err != nil {
		return nil, err
	}

	out := &Document{
		Filename:    filename(full.Title),
		ContentType: pdfContentType,
		Body:        body,
	}
	if e.objects != nil && e.versions != nil {
		v, err := e.archive(ctx, full.ID, body, opts)
		if err != nil {
			logger.Ctx(ctx).Warn().Err(err).Str("resume_id", full.ID.String()).Msg("archive export failed")
		} else {
			out.Version = v
		}
	}
	return out, nil
}

// RenderHTML executes the embedded template for doc.
func (e *Exporter) RenderHTML(doc *model.Document) (string, error) {
	var buf bytes.Buffer
	if err := e.tpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

func (e *Exporter) render(ctx context.Context, doc *model.Document) ([]byte, error) {
	if e.renderer == nil {
		return PlainText(doc), nil
	}
	html, err := e.RenderHTML(doc)
	if err != nil {
		return nil, err
	}

	var renderErr error
	for i := 0; i < e.attempts; i++ {
		pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
		if err == nil && bytes.HasPrefix(pdf, []byte("%PDF")) {
			return pdf, nil
		}
		if err == nil {
			err = fmt.Errorf("%w (len=%d)", ErrInvalidPDF, len(pdf))
		}
		renderErr = err
		logger.Ctx(ctx).Warn().Err(err).Int("attempt", i+1).Msg("render attempt failed")
		if i < e.attempts-1 {
			select {
			case <-time.After(e.backoff << i):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("render pdf after %d attempts: %w", e.attempts, renderErr)
}

func (e *Exporter) archive(ctx context.Context, resumeID uuid.UUID, body []byte, opts ExportOptions) (*domain.ResumeVersion, error) {
	v := &domain.ResumeVersion{
		ID:               uuid.New(),
		ResumeID:         resumeID,
		MatchScore:       opts.MatchScore,
		JobDescriptionID: opts.JobDescriptionID,
		CreatedAt:        time.Now().UTC(),
	}
	v.ObjectKey = ArchiveKey(resumeID, v.ID)
	if err := e.objects.Upload(ctx, v.ObjectKey, bytes.NewReader(body), int64(len(body)), pdfContentType); err != nil {
		return nil, fmt.Errorf("upload %s: %w", v.ObjectKey, err)
	}
	url, err := e.objects.PresignedURL(ctx, v.ObjectKey, e.urlExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", v.ObjectKey, err)
	}
	v.PDFURL = url
	if err := e.versions.CreateResumeVersion(ctx, v); err != nil {
		return nil, fmt.Errorf("record version: %w", err)
	}
	return v, nil
}

// refreshURLs re-signs archived object URLs, which expire.
func (e *Exporter) refreshURLs(ctx context.Context, versions []domain.ResumeVersion) {
	if e == nil || e.objects == nil {
		return
	}
	for i := range versions {
		if versions[i].ObjectKey == "" {
			continue
		}
		url, err := e.objects.PresignedURL(ctx, versions[i].ObjectKey, e.urlExpiry)
		if err != nil {
			logger.Ctx(ctx).Warn().Err(err).Str("object_key", versions[i].ObjectKey).Msg("presign archived export failed")
			continue
		}
		versions[i].PDFURL = url
	}
}

// ArchiveKey is the object key of one archived export.
func ArchiveKey(resumeID, versionID uuid.UUID) string {
	return path.Join("resumes", resumeID.String(), versionID.String()+".pdf")
}

func filename(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "resume"
	}
	title = strings.Map(func(r rune) rune {
		switch r {
		case '"', '/', '\\', '\r', '\n':
			return '_'
		}
		return r
	}, title)
	return title + ".pdf"
}
