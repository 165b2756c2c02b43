package http

import (
	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (h *Handler) EnhanceSummary(c *fiber.Ctx) error {
	var req enhanceSummaryRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.EnhanceSummary(c.UserContext(), req.PersonalInfo, req.WorkExperience, req.Skills, req.JobDescription)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *Handler) EnhanceExperience(c *fiber.Ctx) error {
	var req enhanceExperienceRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.EnhanceExperience(c.UserContext(), *req.Experience, req.JobDescription)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *Handler) AnalyzeJobMatch(c *fiber.Ctx) error {
	var req jobMatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return domain.NewValidationError("resumeId", "must be a valid UUID")
	}
	jdID, err := optionalUUID(req.JobDescriptionID)
	if err != nil {
		return domain.NewValidationError("jobDescriptionId", "must be a valid UUID")
	}
	res, err := h.svc.AnalyzeJobMatch(c.UserContext(), callerID(c), usecase.JobMatchRequest{
		ResumeID:         resumeID,
		JobDescription:   req.JobDescription,
		JobDescriptionID: jdID,
	})
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *Handler) SuggestSkills(c *fiber.Ctx) error {
	var req suggestSkillsRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.SuggestSkills(c.UserContext(), req.CurrentSkills, req.JobDescription)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
