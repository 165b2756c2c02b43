package http

import (
	"errors"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried in the response envelope.
const (
	codeUnauthorized = "UNAUTHORIZED"
	codeForbidden    = "FORBIDDEN"
	codeNotFound     = "NOT_FOUND"
	codeValidation   = "VALIDATION_FAILED"
	codeUpstream     = "UPSTREAM_UNAVAILABLE"
	codeInternal     = "INTERNAL_ERROR"
)

// ErrorHandler maps domain errors onto the JSON error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		verr *domain.ValidationError
		uerr *domain.UpstreamError
		ferr *fiber.Error
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return abortJSON(c, fiber.StatusNotFound, "resource not found", codeNotFound)
	case errors.Is(err, domain.ErrForbidden):
		return abortJSON(c, fiber.StatusForbidden, "access denied", codeForbidden)
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"code":   codeValidation,
			"fields": verr.Fields,
		})
	case errors.As(err, &uerr):
		logger.Ctx(c.UserContext()).Warn().Err(err).Str("op", uerr.Op).Int("status", uerr.Status).Msg("text generation upstream failed")
		return abortJSON(c, fiber.StatusBadGateway, "text generation service unavailable", codeUpstream)
	case errors.As(err, &ferr):
		return abortJSON(c, ferr.Code, ferr.Message, statusCode(ferr.Code))
	default:
		logger.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return abortJSON(c, fiber.StatusInternalServerError, "internal server error", codeInternal)
	}
}

func statusCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return codeNotFound
	case fiber.StatusUnauthorized:
		return codeUnauthorized
	case fiber.StatusForbidden:
		return codeForbidden
	case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge, fiber.StatusUnprocessableEntity:
		return codeValidation
	}
	return codeInternal
}

func abortJSON(c *fiber.Ctx, status int, message, code string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}
