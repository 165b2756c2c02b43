// Command mockllm serves an OpenAI-compatible chat completions endpoint backed
// by the offline model, for running the API without provider credentials.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"resume-builder/internal/logger"
	"resume-builder/pkg/ai"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/pflag"
)

type chatRequest struct {
	Model       string       `json:"model"`
	Messages    []ai.Message `json:"messages"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature float64      `json:"temperature"`
}

type chatChoice struct {
	Index        int        `json:"index"`
	Message      ai.Message `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

func main() {
	addr := pflag.String("addr", ":8089", "listen address")
	level := pflag.String("log-level", "info", "log level")
	pflag.Parse()

	logger.Init(logger.Config{Level: *level, Format: "pretty"})

	gen := ai.NewEinoGenerator(ai.NewOfflineChatModel(), 0.7)
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	complete := func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil || len(req.Messages) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fiber.Map{"message": "messages are required"}})
		}
		text, err := gen.GenerateText(c.UserContext(), req.Messages, req.MaxTokens)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fiber.Map{"message": err.Error()}})
		}
		logger.Debug().Str("model", req.Model).Int("max_tokens", req.MaxTokens).Msg("mockllm: completion served")
		return c.JSON(fiber.Map{
			"object":  "chat.completion",
			"model":   req.Model,
			"choices": []chatChoice{{Message: ai.Message{Role: ai.RoleAssistant, Content: text}, FinishReason: "stop"}},
		})
	}
	app.Post("/chat/completions", complete)
	app.Post("/v1/chat/completions", complete)

	go func() {
		logger.Info().Str("addr", *addr).Msg("mockllm listening")
		if err := app.Listen(*addr); err != nil {
			logger.Fatal().Err(err).Msg("mockllm failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	_ = app.Shutdown()
}
