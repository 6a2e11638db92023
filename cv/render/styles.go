package render

// RGB is a palette color.
type RGB struct {
	R, G, B int
}

// Palette used across the page.
var (
	ColorDark   = RGB{26, 35, 50}    // #1A2332, body text
	ColorAccent = RGB{37, 99, 235}   // #2563EB, titles and markers
	ColorBand   = RGB{241, 245, 249} // #F1F5F9, header background
	ColorMid    = RGB{100, 116, 139} // #64748B, secondary text
	ColorRule   = RGB{203, 213, 225} // #CBD5E1, section rules
)

// TextStyle captures the formatting of one kind of text element. Size and
// Leading are in points; the painter converts leadings to page units.
type TextStyle struct {
	Style   string // "", "B" or "I"
	Size    float64
	Leading float64
	Color   RGB
	Unicode bool // prefer the registered unicode font when available
}

// Styles centralizes the formatting for every element the painter draws.
var Styles = map[string]TextStyle{
	"name":      {Style: "B", Size: 22, Leading: 26, Color: ColorDark},
	"role":      {Size: 10, Leading: 14, Color: ColorAccent},
	"contact":   {Size: 8.5, Leading: 14, Color: ColorMid, Unicode: true},
	"section":   {Style: "B", Size: 9, Leading: 12, Color: ColorAccent},
	"company":   {Style: "B", Size: 9.5, Leading: 13, Color: ColorDark},
	"date":      {Style: "I", Size: 8.5, Leading: 12, Color: ColorMid},
	"bullet":    {Size: 8.5, Leading: 12.5, Color: ColorDark},
	"highlight": {Style: "B", Size: 8.5, Leading: 12.5, Color: ColorDark},
	"about":     {Size: 8.5, Leading: 13, Color: ColorDark},
	"skill":     {Size: 8.5, Leading: 12, Color: ColorDark},
	"edu":       {Size: 8.5, Leading: 12, Color: ColorDark},
	"eduSub":    {Size: 8, Leading: 12, Color: ColorMid},
}
