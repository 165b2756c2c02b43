package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// AppConfig carries the transport settings of the API.
type AppConfig struct {
	JWTSecret    string
	Issuer       string
	BodyLimit    int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewApp builds the Fiber application with middleware and all routes.
func NewApp(h *Handler, cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "resume-builder",
		ErrorHandler:          ErrorHandler,
		BodyLimit:             cfg.BodyLimit,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger())

	RegisterRoutes(app, h, Auth(cfg.JWTSecret, cfg.Issuer))
	return app
}

func RegisterRoutes(app *fiber.App, h *Handler, auth fiber.Handler) {
	app.Get("/healthz", h.Health)

	api := app.Group("/api", auth)
	api.Get("/auth/user", h.CurrentUser)
	api.Get("/dashboard/stats", h.DashboardStats)

	api.Get("/resumes", h.ListResumes)
	api.Post("/resumes", h.CreateResume)
	api.Get("/resumes/:id", h.GetResume)
	api.Put("/resumes/:id", h.UpdateResume)
	api.Delete("/resumes/:id", h.DeleteResume)
	api.Put("/resumes/:id/personal-info", h.UpsertPersonalInfo)
	api.Post("/resumes/:id/personal-info", h.UpsertPersonalInfo)
	api.Post("/resumes/:id/work-experience", h.CreateWorkExperience)
	api.Post("/resumes/:id/education", h.CreateEducation)
	api.Post("/resumes/:id/skills", h.CreateSkill)
	api.Post("/resumes/:id/export", h.ExportResume)
	api.Get("/resumes/:id/versions", h.ListVersions)

	api.Put("/work-experience/:id", h.UpdateWorkExperience)
	api.Delete("/work-experience/:id", h.DeleteWorkExperience)
	api.Put("/education/:id", h.UpdateEducation)
	api.Delete("/education/:id", h.DeleteEducation)
	api.Put("/skills/:id", h.UpdateSkill)
	api.Delete("/skills/:id", h.DeleteSkill)

	api.Post("/ai/enhance-summary", h.EnhanceSummary)
	api.Post("/ai/enhance-experience", h.EnhanceExperience)
	api.Post("/ai/analyze-job-match", h.AnalyzeJobMatch)
	api.Post("/ai/suggest-skills", h.SuggestSkills)

	api.Get("/job-descriptions", h.ListJobDescriptions)
	api.Post("/job-descriptions", h.CreateJobDescription)
}
