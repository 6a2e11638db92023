package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cvbuilder/cv/model"
	"cvbuilder/cv/render"
	"cvbuilder/internal/pdftext"
)

func main() {
	outPath := flag.String("out", "./out/sample_cv.pdf", "output path for generated PDF")
	flag.Parse()

	doc := sampleDocument()

	renderer := render.New(render.Options{})
	pdfBytes, err := renderer.Render(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutputs(*outPath, doc, pdfBytes); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	if err := validateRenderedPDF(pdfBytes, doc); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func writeOutputs(outPath string, doc model.Document, pdfBytes []byte) error {
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
		return err
	}

	docPath := filepath.Join(dir, "sample_cv.yaml")
	payload, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(docPath, payload, 0o644)
}

func sampleDocument() model.Document {
	return model.Document{
		Meta: model.Meta{
			OutputFilename: "sample_cv.pdf",
			PDFTitle:       "Jordan Lee - CV",
		},
		Header: model.Header{
			Name:         "Jordan Lee",
			Role:         "Senior Backend Engineer",
			ContactLine1: "jordan.lee@example.com · +1-555-0102 · Austin, TX",
			ContactLine2: "github.com/jordanlee · linkedin.com/in/jordanlee",
		},
		Profile: "Backend engineer with 8+ years of experience building resilient APIs " +
			"and data services. Led platform modernization initiatives spanning cloud " +
			"migration and observability adoption.",
		Experience: []model.Experience{
			{
				Company:   "Acme Logistics",
				Period:    "2021 - Present",
				Highlight: "Promoted to technical lead of the routing team",
				Bullets: []string{
					"Designed a routing service that reduced shipment latency by 18%",
					"Implemented distributed tracing to cut incident triage time by 35%",
				},
			},
			{
				Company: "Blue Harbor Systems",
				Period:  "2018 - 2021",
				Bullets: []string{
					"Built event-driven ingestion pipelines for compliance data feeds",
				},
			},
		},
		Skills: []model.Skill{
			{Label: "Languages", Value: "Go, Java, SQL"},
			{Label: "Infrastructure", Value: "AWS, Docker, Kubernetes, PostgreSQL, Redis"},
			{Label: "Observability", Value: "OpenTelemetry, Datadog"},
		},
		Education: []model.Education{
			{
				Degree:      "BSc Computer Science",
				Institution: "University of Texas at Austin",
				Detail:      "Graduated with honors, 2016",
			},
		},
	}
}

func validateRenderedPDF(pdfBytes []byte, doc model.Document) error {
	text, err := pdftext.Text(pdfBytes)
	if err != nil {
		return err
	}
	for _, want := range []string{doc.Header.Name, "EXPERIENCE", "EDUCATION"} {
		if !strings.Contains(text, want) {
			return fmt.Errorf("expected %q in extracted text", want)
		}
	}
	return nil
}
