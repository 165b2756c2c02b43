package http

import (
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	resumes, err := h.svc.ListResumes(c.UserContext(), callerID(c))
	if err != nil {
		return err
	}
	return c.JSON(resumes)
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req resumeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	r, err := h.svc.CreateResume(c.UserContext(), callerID(c), h.sanitizer.String(req.Title), req.IsActive)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	full, err := h.svc.FullResume(c.UserContext(), callerID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(full)
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req resumePatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	patch := usecase.ResumePatch{IsActive: req.IsActive}
	if req.Title != nil {
		t := h.sanitizer.String(*req.Title)
		patch.Title = &t
	}
	r, err := h.svc.UpdateResume(c.UserContext(), callerID(c), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteResume(c.UserContext(), callerID(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) UpsertPersonalInfo(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req personalInfoRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	info, err := h.svc.UpsertPersonalInfo(c.UserContext(), callerID(c), id, req.toDomain(h.sanitizer))
	if err != nil {
		return err
	}
	return c.JSON(info)
}
