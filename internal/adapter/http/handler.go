package http

import (
	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	svc       *usecase.Service
	sanitizer *Sanitizer
}

func NewHandler(svc *usecase.Service) *Handler {
	return &Handler{svc: svc, sanitizer: NewSanitizer()}
}

// idParam parses the :id route parameter. An unparseable id cannot name a
// stored row, so it is reported as not found.
func idParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

func optionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) CurrentUser(c *fiber.Ctx) error {
	u, err := h.svc.CurrentUser(c.UserContext(), caller(c))
	if err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *Handler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.svc.Stats(c.UserContext(), callerID(c))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
