package http

import (
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// ExportResume streams the rendered document as an attachment. The body is
// optional and only tags the archived version.
func (h *Handler) ExportResume(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req exportRequest
	if len(c.Body()) > 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}
	jdID, err := optionalUUID(req.JobDescriptionID)
	if err != nil {
		return domain.NewValidationError("jobDescriptionId", "must be a valid UUID")
	}

	doc, err := h.svc.Export(c.UserContext(), callerID(c), id, usecase.ExportOptions{
		JobDescriptionID: jdID,
		MatchScore:       req.MatchScore,
	})
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	if doc.Version != nil {
		c.Set("X-Resume-Version", fmt.Sprint(doc.Version.Version))
	}
	return c.Send(doc.Body)
}

func (h *Handler) ListVersions(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	versions, err := h.svc.ListVersions(c.UserContext(), callerID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(versions)
}

func (h *Handler) ListJobDescriptions(c *fiber.Ctx) error {
	items, err := h.svc.ListJobDescriptions(c.UserContext(), callerID(c))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *Handler) CreateJobDescription(c *fiber.Ctx) error {
	var req jobDescriptionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	j, err := h.svc.CreateJobDescription(c.UserContext(), callerID(c), req.toDomain(h.sanitizer))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(j)
}
