package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"cvbuilder/cv/model"
)

// Page geometry in millimetres. Font sizes and leadings stay in points and
// are converted where drawn.
const (
	pt = 25.4 / 72.0 // one point in millimetres

	pageMarginX = 18.0
	pageMarginY = 10.0

	bandPadX = 12 * pt
	bandPadY = 10 * pt

	photoSide      = 33.0
	photoPadLeft   = 4.0
	photoImageName = "cv_photo"

	glyphStar  = "★"
	glyphArrow = "▸"
)

type painter struct {
	pdf        *fpdf.Fpdf
	translate  func(string) string
	unicode    bool
	coreActive bool
	innerW     float64
	pageH      float64
}

func (r *Renderer) paint(doc model.Document, blocks []Block) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title(), true)
	pdf.SetAuthor(doc.Header.Name, true)
	pdf.SetMargins(pageMarginX, pageMarginY, pageMarginX)
	pdf.SetAutoPageBreak(true, pageMarginY)

	p := &painter{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	p.unicode = registerUnicodeFont(pdf, r.opts.FontFile)
	pageW, pageH := pdf.GetPageSize()
	p.innerW = pageW - 2*pageMarginX
	p.pageH = pageH

	pdf.AddPage()

	for i, b := range blocks {
		switch blk := b.(type) {
		case Header:
			p.header(blk)
		case Section:
			p.section(blk)
		case Paragraph:
			p.paragraph(blk)
		case Job:
			p.job(blk)
		case SkillRow:
			p.skillRow(blk)
			if i+1 == len(blocks) || !isSkillRow(blocks[i+1]) {
				pdf.SetY(pdf.GetY() + 7*pt)
			}
		case Education:
			p.education(blk)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func isSkillRow(b Block) bool {
	_, ok := b.(SkillRow)
	return ok
}

// setStyle activates a named style and returns it. Styles marked Unicode use
// the registered TTF when available.
func (p *painter) setStyle(name string) TextStyle {
	st := Styles[name]
	if st.Unicode && p.unicode {
		p.pdf.SetFont(unicodeFont, "", st.Size)
		p.coreActive = false
	} else {
		p.pdf.SetFont(bodyFont, st.Style, st.Size)
		p.coreActive = true
	}
	p.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	return st
}

// text prepares s for the active font. Core fonts take cp1252, so the
// translator maps what it can.
func (p *painter) text(s string) string {
	if p.coreActive {
		return p.translate(s)
	}
	return s
}

// header draws the identity band: light background, optional circular photo
// on the left, name/role/contact centered in the remaining width.
func (p *painter) header(h Header) {
	pdf := p.pdf
	top := pdf.GetY()

	textH := headerTextHeight(len(h.Contact))
	contentH := textH
	if h.Photo != nil && photoSide > contentH {
		contentH = photoSide
	}
	bandH := contentH + 2*bandPadY

	pdf.SetFillColor(ColorBand.R, ColorBand.G, ColorBand.B)
	pdf.Rect(pageMarginX, top, p.innerW, bandH, "F")

	textX := pageMarginX + bandPadX
	textW := p.innerW - 2*bandPadX
	if h.Photo != nil {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(photoImageName, opts, bytes.NewReader(h.Photo.PNG))
		photoY := top + (bandH-photoSide)/2
		pdf.ImageOptions(photoImageName, pageMarginX+bandPadX+photoPadLeft, photoY, photoSide, photoSide, false, opts, 0, "")

		photoColW := photoSide + photoPadLeft + 4
		textX += photoColW
		textW -= photoColW
	}

	y := top + (bandH-textH)/2
	y = p.centeredLine(textX, y, textW, "name", h.Name)
	y += 3 * pt
	y = p.centeredLine(textX, y, textW, "role", h.Role)
	y += 7 * pt
	for _, line := range h.Contact {
		y = p.centeredLine(textX, y, textW, "contact", line)
	}

	pdf.SetY(top + bandH + 8*pt)
}

func (p *painter) centeredLine(x, y, w float64, styleName, text string) float64 {
	st := p.setStyle(styleName)
	lead := st.Leading * pt
	p.pdf.SetXY(x, y)
	p.pdf.CellFormat(w, lead, p.text(text), "", 0, "C", false, 0, "")
	return y + lead
}

func headerTextHeight(contactLines int) float64 {
	h := Styles["name"].Leading + 3 + Styles["role"].Leading + 7
	h += float64(contactLines) * Styles["contact"].Leading
	return h * pt
}

// section draws an uppercased title with a thin rule under it.
func (p *painter) section(s Section) {
	pdf := p.pdf
	st := p.setStyle("section")

	pdf.SetXY(pageMarginX, pdf.GetY()+8*pt)
	pdf.CellFormat(p.innerW, st.Leading*pt, p.text(strings.ToUpper(s.Title)), "", 1, "L", false, 0, "")

	ruleY := pdf.GetY() + 3*pt
	pdf.SetDrawColor(ColorRule.R, ColorRule.G, ColorRule.B)
	pdf.SetLineWidth(0.5 * pt)
	pdf.Line(pageMarginX, ruleY, pageMarginX+p.innerW, ruleY)
	pdf.SetY(ruleY + 4*pt)
}

func (p *painter) paragraph(par Paragraph) {
	st := p.setStyle("about")
	p.pdf.SetXY(pageMarginX, p.pdf.GetY())
	p.pdf.MultiCell(p.innerW, st.Leading*pt, p.text(par.Text), "", "L", false)
	p.pdf.SetY(p.pdf.GetY() + 7*pt)
}

// job draws one experience entry and keeps it on a single page unless it is
// taller than a page by itself.
func (p *painter) job(j Job) {
	pdf := p.pdf
	height := p.jobHeight(j)
	limit := p.pageH - pageMarginY
	usable := p.pageH - 2*pageMarginY
	if y := pdf.GetY(); y+height > limit && height <= usable {
		pdf.AddPage()
	}

	companyW := 0.72 * p.innerW
	periodW := p.innerW - companyW

	st := p.setStyle("company")
	companyLead := st.Leading * pt
	lines := pdf.SplitText(p.text(j.Company), companyW)
	rowH := float64(max(len(lines), 1)) * companyLead

	y := pdf.GetY()
	dateStyle := p.setStyle("date")
	dateLead := dateStyle.Leading * pt
	pdf.SetXY(pageMarginX+companyW, y+(rowH-dateLead)/2)
	pdf.CellFormat(periodW, dateLead, p.text(j.Period), "", 0, "R", false, 0, "")

	p.setStyle("company")
	pdf.SetXY(pageMarginX, y)
	pdf.MultiCell(companyW, companyLead, p.text(j.Company), "", "L", false)

	pdf.SetY(y + rowH + 2*pt)
	if strings.TrimSpace(j.Highlight) != "" {
		p.markedLine("highlight", glyphStar, "*", j.Highlight)
	}
	for _, bullet := range j.Bullets {
		p.markedLine("bullet", glyphArrow, "›", bullet)
	}
	pdf.SetY(pdf.GetY() + 5*pt)
}

func (p *painter) jobHeight(j Job) float64 {
	st := p.setStyle("company")
	lines := p.pdf.SplitText(p.text(j.Company), 0.72*p.innerW)
	h := float64(max(len(lines), 1))*st.Leading*pt + 2*pt
	if strings.TrimSpace(j.Highlight) != "" {
		h += p.markedHeight("highlight", glyphStar, "*", j.Highlight)
	}
	for _, bullet := range j.Bullets {
		h += p.markedHeight("bullet", glyphArrow, "›", bullet)
	}
	return h + 5*pt
}

// markerSetup activates the marker font and returns the marker with its
// width. Markers fall back to cp1252-safe glyphs without the unicode font.
func (p *painter) markerSetup(st TextStyle, glyph, fallback string) (string, float64) {
	marker := fallback
	if p.unicode {
		marker = glyph
		p.pdf.SetFont(unicodeFont, "", st.Size)
		p.coreActive = false
	} else {
		p.pdf.SetFont(bodyFont, st.Style, st.Size)
		p.coreActive = true
	}
	marker += "  "
	return marker, p.pdf.GetStringWidth(p.text(marker))
}

// markedLine draws an accent marker followed by indented text with a hanging
// wrap.
func (p *painter) markedLine(styleName, glyph, fallback, text string) {
	st := Styles[styleName]
	lead := st.Leading * pt
	indent := 10 * pt

	marker, markerW := p.markerSetup(st, glyph, fallback)
	p.pdf.SetTextColor(ColorAccent.R, ColorAccent.G, ColorAccent.B)
	p.pdf.SetXY(pageMarginX+indent, p.pdf.GetY())
	p.pdf.CellFormat(markerW, lead, p.text(marker), "", 0, "L", false, 0, "")

	p.setStyle(styleName)
	p.pdf.MultiCell(p.innerW-indent-markerW, lead, p.text(text), "", "L", false)
	p.pdf.SetY(p.pdf.GetY() + 1.5*pt)
}

func (p *painter) markedHeight(styleName, glyph, fallback, text string) float64 {
	st := Styles[styleName]
	_, markerW := p.markerSetup(st, glyph, fallback)
	p.setStyle(styleName)
	lines := p.pdf.SplitText(p.text(text), p.innerW-10*pt-markerW)
	return float64(max(len(lines), 1))*st.Leading*pt + 1.5*pt
}

// skillRow draws one bold-label/value row of the skills table.
func (p *painter) skillRow(s SkillRow) {
	pdf := p.pdf
	st := Styles["skill"]
	lead := st.Leading * pt
	labelW := 0.22 * p.innerW
	valueW := p.innerW - labelW

	p.coreActive = true
	pdf.SetFont(bodyFont, "B", st.Size)
	labelLines := len(pdf.SplitText(p.text(s.Label), labelW))
	pdf.SetFont(bodyFont, "", st.Size)
	valueLines := len(pdf.SplitText(p.text(s.Value), valueW))
	rowH := float64(max(labelLines, valueLines, 1)) * lead

	y := pdf.GetY() + 2*pt
	if y+rowH > p.pageH-pageMarginY {
		pdf.AddPage()
		y = pdf.GetY() + 2*pt
	}

	pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	pdf.SetFont(bodyFont, "B", st.Size)
	pdf.SetXY(pageMarginX, y)
	pdf.MultiCell(labelW, lead, p.text(s.Label), "", "L", false)

	pdf.SetFont(bodyFont, "", st.Size)
	pdf.SetXY(pageMarginX+labelW, y)
	pdf.MultiCell(valueW, lead, p.text(s.Value), "", "L", false)

	pdf.SetY(y + rowH + 2*pt)
}

// education draws the bold degree with its institution inline, then the
// optional detail line.
func (p *painter) education(e Education) {
	pdf := p.pdf
	st := p.setStyle("edu")
	lead := st.Leading * pt

	pdf.SetXY(pageMarginX, pdf.GetY())
	pdf.SetFont(bodyFont, "B", st.Size)
	pdf.Write(lead, p.text(e.Degree))
	pdf.SetFont(bodyFont, "", st.Size)
	pdf.Write(lead, p.text(" · "+e.Institution))
	pdf.Ln(lead)

	if strings.TrimSpace(e.Detail) != "" {
		sub := p.setStyle("eduSub")
		pdf.SetXY(pageMarginX, pdf.GetY())
		pdf.MultiCell(p.innerW, sub.Leading*pt, p.text(e.Detail), "", "L", false)
	}
}
