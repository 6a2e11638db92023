package render

import (
	"strings"

	"cvbuilder/cv/model"
)

// Block is one styled visual unit placed in page order. The painter draws
// blocks strictly in the order Compose emits them.
type Block interface {
	block()
}

// Header is the top identity band. Photo is nil for the text-only layout.
type Header struct {
	Name    string
	Role    string
	Contact []string
	Photo   *Photo
}

// Section introduces a titled part of the page with a rule under the title.
type Section struct {
	Title string
}

// Paragraph is a plain body paragraph (the profile text).
type Paragraph struct {
	Text string
}

// Job is one experience entry: company/period row, optional highlight line,
// bullet lines. Painted as a unit that is not split across pages.
type Job struct {
	Company   string
	Period    string
	Highlight string
	Bullets   []string
}

// SkillRow is one label/value row of the skills table.
type SkillRow struct {
	Label string
	Value string
}

// Education is one degree line with an optional detail line under it.
type Education struct {
	Degree      string
	Institution string
	Detail      string
}

func (Header) block()    {}
func (Section) block()   {}
func (Paragraph) block() {}
func (Job) block()       {}
func (SkillRow) block()  {}
func (Education) block() {}

// Section titles in page order.
const (
	titleProfile    = "Profile"
	titleExperience = "Experience"
	titleSkills     = "Technical Skills"
	titleEducation  = "Education"
)

// Compose maps a document onto the fixed block sequence. It is pure: the
// same document and photo always yield the same blocks. Absent sections are
// skipped entirely, so a document with only a header composes to a single
// Header block.
func Compose(doc model.Document, photo *Photo) []Block {
	blocks := []Block{headerBlock(doc.Header, photo)}

	if text := strings.TrimSpace(doc.Profile); text != "" {
		blocks = append(blocks, Section{Title: titleProfile}, Paragraph{Text: text})
	}

	if len(doc.Experience) > 0 {
		blocks = append(blocks, Section{Title: titleExperience})
		for _, job := range doc.Experience {
			blocks = append(blocks, Job{
				Company:   job.Company,
				Period:    job.Period,
				Highlight: job.Highlight,
				Bullets:   job.Bullets,
			})
		}
	}

	if len(doc.Skills) > 0 {
		blocks = append(blocks, Section{Title: titleSkills})
		for _, skill := range doc.Skills {
			blocks = append(blocks, SkillRow{Label: skill.Label, Value: skill.Value})
		}
	}

	if len(doc.Education) > 0 {
		blocks = append(blocks, Section{Title: titleEducation})
		for _, edu := range doc.Education {
			blocks = append(blocks, Education{
				Degree:      edu.Degree,
				Institution: edu.Institution,
				Detail:      edu.Detail,
			})
		}
	}

	return blocks
}

func headerBlock(h model.Header, photo *Photo) Header {
	var contact []string
	for _, line := range []string{h.ContactLine1, h.ContactLine2} {
		if strings.TrimSpace(line) != "" {
			contact = append(contact, line)
		}
	}
	return Header{Name: h.Name, Role: h.Role, Contact: contact, Photo: photo}
}
