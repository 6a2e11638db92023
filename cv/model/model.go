package model

import (
	"errors"
	"strings"
)

// Document represents the whole CV as stored and edited.
type Document struct {
	Meta       Meta         `yaml:"meta"`
	Header     Header       `yaml:"header"`
	Profile    string       `yaml:"profile"`
	Experience []Experience `yaml:"experience"`
	Skills     []Skill      `yaml:"skills"`
	Education  []Education  `yaml:"education"`
}

// Meta carries output metadata for the generated PDF.
type Meta struct {
	OutputFilename string `yaml:"output_filename"`
	PDFTitle       string `yaml:"pdf_title"`
}

// Header captures the identity block at the top of the CV.
type Header struct {
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	ContactLine1 string `yaml:"contact_line1"`
	ContactLine2 string `yaml:"contact_line2"`
	Photo        string `yaml:"photo"`
}

// Experience represents one work history entry.
type Experience struct {
	Company   string   `yaml:"company"`
	Period    string   `yaml:"period"`
	Highlight string   `yaml:"highlight"`
	Bullets   []string `yaml:"bullets"`
}

// Skill represents one label/value row in the skills table.
type Skill struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Education represents one education entry.
type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Detail      string `yaml:"detail"`
}

// Validate enforces the fields rendering cannot proceed without. Everything
// outside the header identity fields is optional.
func (d Document) Validate() error {
	if strings.TrimSpace(d.Header.Name) == "" {
		return errors.New("header.name is required")
	}
	if strings.TrimSpace(d.Header.Role) == "" {
		return errors.New("header.role is required")
	}
	return nil
}

// Title returns the PDF title metadata, defaulting to the header name.
func (d Document) Title() string {
	if t := strings.TrimSpace(d.Meta.PDFTitle); t != "" {
		return t
	}
	return d.Header.Name
}

// OutputFilename returns the download filename for the generated PDF.
func (d Document) OutputFilename() string {
	if name := strings.TrimSpace(d.Meta.OutputFilename); name != "" {
		return name
	}
	return "cv.pdf"
}
