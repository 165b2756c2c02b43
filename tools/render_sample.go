// Command render_sample renders a resume JSON file (the GET /api/resumes/:id
// payload) to HTML and, with --pdf, to PDF through headless Chrome.
package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/pflag"
)

func main() {
	in := pflag.String("in", "resume.json", "aggregated resume JSON")
	outDir := pflag.String("out", "generated", "output directory")
	pdf := pflag.Bool("pdf", false, "also render a PDF with chromedp")
	chrome := pflag.String("chrome", os.Getenv("CHROME_PATH"), "Chrome executable")
	pflag.Parse()

	logger.Init(logger.Config{Level: "info", Format: "pretty"})

	b, err := os.ReadFile(*in)
	if err != nil {
		logger.Fatal().Err(err).Str("file", *in).Msg("read resume")
	}
	var full domain.FullResume
	if err := json.Unmarshal(b, &full); err != nil {
		logger.Fatal().Err(err).Msg("unmarshal resume")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal().Err(err).Msg("create output directory")
	}

	var renderer usecase.Renderer
	if *pdf {
		renderer = infra.NewChromedpRenderer(*chrome, 60*time.Second, 8.27, 11.69)
	}
	exporter := usecase.NewExporter(renderer, nil, nil, 0)

	html, err := exporter.RenderHTML(usecase.BuildDocument(&full))
	if err != nil {
		logger.Fatal().Err(err).Msg("render html")
	}
	base := strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
	htmlPath := filepath.Join(*outDir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		logger.Fatal().Err(err).Msg("write html")
	}
	logger.Info().Str("file", htmlPath).Msg("wrote html")

	out, err := exporter.Export(context.Background(), &full, usecase.ExportOptions{})
	if err != nil {
		logger.Fatal().Err(err).Msg("export")
	}
	ext := ".txt"
	if *pdf {
		ext = ".pdf"
	}
	docPath := filepath.Join(*outDir, base+ext)
	if err := os.WriteFile(docPath, out.Body, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("write export")
	}
	logger.Info().Str("file", docPath).Int("bytes", len(out.Body)).Msg("wrote export")
}
