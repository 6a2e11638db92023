package generate

import (
	"context"
	"strings"
	"time"

	"cvbuilder/cv/render"
	"cvbuilder/internal/documents"
	"cvbuilder/internal/shared/metrics"
)

// Service turns document text into a finished PDF.
type Service struct {
	Documents *documents.Service
	Renderer  *render.Renderer
}

// Result is a rendered PDF ready for download.
type Result struct {
	Filename string
	PDF      []byte
}

// Generate renders the given document text. Blank text falls back to
// the currently stored document, so a download works without the
// editor sending its buffer along.
func (s *Service) Generate(ctx context.Context, text string) (Result, error) {
	startedAt := time.Now()
	metrics.IncGenerateStarted()

	if strings.TrimSpace(text) == "" {
		stored, err := s.Documents.Load(ctx)
		if err != nil {
			return Result{}, fail(startedAt, err)
		}
		text = stored
	}

	doc, err := s.Documents.Validate(text)
	if err != nil {
		return Result{}, fail(startedAt, err)
	}

	pdf, err := s.Renderer.Render(doc)
	if err != nil {
		return Result{}, fail(startedAt, err)
	}

	metrics.IncGenerateCompleted()
	metrics.ObserveGenerateDurationMs(durationMs(startedAt))
	return Result{Filename: doc.OutputFilename(), PDF: pdf}, nil
}

func fail(startedAt time.Time, err error) error {
	metrics.IncGenerateFailed()
	metrics.ObserveGenerateDurationMs(durationMs(startedAt))
	return err
}

func durationMs(startedAt time.Time) float64 {
	return float64(time.Since(startedAt).Microseconds()) / 1000.0
}
