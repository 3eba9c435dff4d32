package layout

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jdelgado/resumepdf/internal/styles"
)

// PageConfig describes the printed page: size name ("letter" or "a4") and
// the four margins in inches.
type PageConfig struct {
	Size         string
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
}

// Document collects styled blocks and renders them to a single HTML page
// that Chrome paginates while printing.
type Document struct {
	page  PageConfig
	sheet *styles.Sheet
	story Story
}

// NewDocument creates an empty document for the given page setup and
// style sheet.
func NewDocument(page PageConfig, sheet *styles.Sheet) *Document {
	return &Document{page: page, sheet: sheet}
}

// Append adds blocks to the document flow.
func (d *Document) Append(blocks ...Block) {
	d.story.Append(blocks...)
}

// AppendStory adds every block of a story to the document flow.
func (d *Document) AppendStory(story *Story) {
	d.story.Append(story.Blocks()...)
}

// Gap below the divider rule, in points.
const dividerGap = 8.0

const documentTemplateText = `{{define "block"}}{{if eq .Kind "paragraph" -}}
<p class="s-{{.Class}}">{{.Text}}</p>
{{else if eq .Kind "spacer" -}}
<div class="spacer" style="{{.Style}}"></div>
{{else if eq .Kind "divider" -}}
<div class="rule" style="{{.Style}}"></div>
{{else if eq .Kind "group" -}}
<div class="group">
{{range .Children}}{{template "block" .}}{{end -}}
</div>
{{end}}{{end -}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
html, body { margin: 0; padding: 0; }
p { margin: 0; }
.group { break-inside: avoid; page-break-inside: avoid; }
.rule { height: 0; margin: 0 0 {{.DividerGap}}pt 0; }
{{.Stylesheet}}</style>
</head>
<body>
{{range .Blocks}}{{template "block" .}}{{end -}}
</body>
</html>
`

var documentTemplate = template.Must(template.New("document").Parse(documentTemplateText))

// documentView is the template-facing form of a document.
type documentView struct {
	Stylesheet template.CSS
	DividerGap float64
	Blocks     []htmlBlock
}

// htmlBlock is the template-facing form of one block. Text and Style are
// pre-built in Go so the template stays a plain dispatch.
type htmlBlock struct {
	Kind     string
	Class    string
	Text     template.HTML
	Style    template.CSS
	Children []htmlBlock
}

// HTML renders the accumulated blocks as a standalone HTML document with
// one CSS class per registered style.
func (d *Document) HTML() (string, error) {
	blocks, err := d.viewBlocks(d.story.Blocks())
	if err != nil {
		return "", err
	}

	view := documentView{
		Stylesheet: template.CSS(d.stylesheet()),
		DividerGap: dividerGap,
		Blocks:     blocks,
	}

	var out strings.Builder
	if err := documentTemplate.Execute(&out, view); err != nil {
		return "", &RenderError{Message: "failed to execute document template", Cause: err}
	}
	return out.String(), nil
}

func (d *Document) viewBlocks(blocks []Block) ([]htmlBlock, error) {
	out := make([]htmlBlock, 0, len(blocks))
	for _, b := range blocks {
		switch v := b.(type) {
		case Paragraph:
			if _, err := d.sheet.Lookup(v.Style); err != nil {
				return nil, &RenderError{Message: "paragraph references unregistered style", Cause: err}
			}
			out = append(out, htmlBlock{
				Kind:  "paragraph",
				Class: v.Style,
				Text:  template.HTML(v.Text),
			})
		case Spacer:
			out = append(out, htmlBlock{
				Kind:  "spacer",
				Style: template.CSS(fmt.Sprintf("height: %gpt", v.Height)),
			})
		case Divider:
			out = append(out, htmlBlock{
				Kind: "divider",
				Style: template.CSS(fmt.Sprintf(
					"width: %gpt; border-top: %gpt solid %s", v.Width, v.Thickness, v.Color)),
			})
		case Group:
			children, err := d.viewBlocks(v.Blocks)
			if err != nil {
				return nil, err
			}
			out = append(out, htmlBlock{Kind: "group", Children: children})
		default:
			return nil, &RenderError{Message: fmt.Sprintf("unsupported block type %T", b)}
		}
	}
	return out, nil
}

// stylesheet emits one CSS class per registered style, prefixed "s-".
func (d *Document) stylesheet() string {
	var b strings.Builder
	for _, s := range d.sheet.All() {
		writeStyleClass(&b, s)
	}
	return b.String()
}

func writeStyleClass(b *strings.Builder, s styles.Style) {
	family, weight, fontStyle := splitFontVariant(s.FontFamily)

	fmt.Fprintf(b, ".s-%s { font-family: %q, sans-serif; font-size: %gpt; color: %s; text-align: %s;",
		s.Name, family, s.FontSize, s.Color, s.Alignment)
	if weight != "normal" {
		fmt.Fprintf(b, " font-weight: %s;", weight)
	}
	if fontStyle != "normal" {
		fmt.Fprintf(b, " font-style: %s;", fontStyle)
	}
	if s.SpaceBefore > 0 {
		fmt.Fprintf(b, " margin-top: %gpt;", s.SpaceBefore)
	}
	if s.SpaceAfter > 0 {
		fmt.Fprintf(b, " margin-bottom: %gpt;", s.SpaceAfter)
	}
	if s.LeftIndent > 0 {
		fmt.Fprintf(b, " margin-left: %gpt;", s.LeftIndent)
	}
	if s.Leading > 0 {
		fmt.Fprintf(b, " line-height: %gpt;", s.Leading)
	}
	b.WriteString(" }\n")
}

// splitFontVariant interprets PostScript-style family names like
// "Helvetica-Bold" or "Helvetica-Oblique" into a CSS family plus weight
// and style. Names without a recognized variant suffix pass through
// unchanged.
func splitFontVariant(name string) (family, weight, style string) {
	weight, style = "normal", "normal"
	base, variant, found := strings.Cut(name, "-")
	if !found {
		return name, weight, style
	}
	switch strings.ToLower(variant) {
	case "bold":
		return base, "bold", style
	case "oblique", "italic":
		return base, weight, "italic"
	case "boldoblique", "bolditalic":
		return base, "bold", "italic"
	case "roman", "regular":
		return base, weight, style
	default:
		return name, weight, style
	}
}
