package http

import (
	"resume-builder/internal/domain"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateWorkExperience(c *fiber.Ctx) error {
	resumeID, err := idParam(c)
	if err != nil {
		return err
	}
	var req workExperienceRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	w := &domain.WorkExperience{}
	req.applyTo(w, h.sanitizer)
	out, err := h.svc.AddWorkExperience(c.UserContext(), callerID(c), resumeID, w)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateWorkExperience merges the body over the stored row, so omitted
// fields keep their value.
func (h *Handler) UpdateWorkExperience(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.svc.UpdateWorkExperience(c.UserContext(), callerID(c), id, func(w *domain.WorkExperience) error {
		req := newWorkExperienceRequest(w)
		if err := bind(c, &req); err != nil {
			return err
		}
		req.applyTo(w, h.sanitizer)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *Handler) DeleteWorkExperience(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteWorkExperience(c.UserContext(), callerID(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) CreateEducation(c *fiber.Ctx) error {
	resumeID, err := idParam(c)
	if err != nil {
		return err
	}
	var req educationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	e := &domain.Education{}
	req.applyTo(e, h.sanitizer)
	out, err := h.svc.AddEducation(c.UserContext(), callerID(c), resumeID, e)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.svc.UpdateEducation(c.UserContext(), callerID(c), id, func(e *domain.Education) error {
		req := newEducationRequest(e)
		if err := bind(c, &req); err != nil {
			return err
		}
		req.applyTo(e, h.sanitizer)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *Handler) DeleteEducation(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteEducation(c.UserContext(), callerID(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) CreateSkill(c *fiber.Ctx) error {
	resumeID, err := idParam(c)
	if err != nil {
		return err
	}
	var req skillRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	sk := &domain.Skill{}
	req.applyTo(sk, h.sanitizer)
	out, err := h.svc.AddSkill(c.UserContext(), callerID(c), resumeID, sk)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	out, err := h.svc.UpdateSkill(c.UserContext(), callerID(c), id, func(sk *domain.Skill) error {
		req := newSkillRequest(sk)
		if err := bind(c, &req); err != nil {
			return err
		}
		req.applyTo(sk, h.sanitizer)
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *Handler) DeleteSkill(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteSkill(c.UserContext(), callerID(c), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
