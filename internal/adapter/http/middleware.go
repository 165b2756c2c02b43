package http

import (
	"errors"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	localsUser      = "caller"
	localsRequestID = "requestid"
)

// Claims are the identity claims read from the caller's token.
type Claims struct {
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Picture    string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Auth verifies an HS256 bearer token and stores the caller on the context.
func Auth(secret, issuer string) fiber.Handler {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return abortJSON(c, fiber.StatusUnauthorized, "Authorization header required", "MISSING_AUTH_HEADER")
		}
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			return abortJSON(c, fiber.StatusUnauthorized, "Bearer token required", "INVALID_AUTH_FORMAT")
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			return abortJSON(c, fiber.StatusUnauthorized, "Token cannot be empty", "EMPTY_TOKEN")
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return abortJSON(c, fiber.StatusUnauthorized, "Token expired", "TOKEN_EXPIRED")
			}
			return abortJSON(c, fiber.StatusUnauthorized, "Invalid token", "TOKEN_INVALID")
		}
		if !token.Valid || strings.TrimSpace(claims.Subject) == "" {
			return abortJSON(c, fiber.StatusUnauthorized, "Invalid token claims", "INVALID_CLAIMS")
		}

		c.Locals(localsUser, &domain.User{
			ID:              claims.Subject,
			Email:           claims.Email,
			FirstName:       claims.GivenName,
			LastName:        claims.FamilyName,
			ProfileImageURL: claims.Picture,
		})
		ctx := logger.Ctx(c.UserContext()).With().Str("user_id", claims.Subject).Logger().WithContext(c.UserContext())
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// caller returns the authenticated user set by Auth.
func caller(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals(localsUser).(*domain.User)
	if u == nil {
		return &domain.User{}
	}
	return u
}

func callerID(c *fiber.Ctx) string {
	return caller(c).ID
}

// RequestLogger attaches a request-scoped logger and logs one line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid, _ := c.Locals(localsRequestID).(string)
		l := logger.Logger.With().Str("request_id", rid).Logger()
		c.SetUserContext(l.WithContext(c.UserContext()))

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := logger.Ctx(c.UserContext()).Info()
		if status >= fiber.StatusInternalServerError {
			ev = logger.Ctx(c.UserContext()).Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}
