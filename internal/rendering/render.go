// Package rendering walks the structured resume model and produces the
// styled block sequence the layout engine paginates. Each section kind has
// its own renderer; routing is by case-insensitive substring on the
// section name.
package rendering

import (
	"strings"

	"github.com/jdelgado/resumepdf/internal/config"
	"github.com/jdelgado/resumepdf/internal/duration"
	"github.com/jdelgado/resumepdf/internal/formatting"
	"github.com/jdelgado/resumepdf/internal/layout"
	"github.com/jdelgado/resumepdf/internal/styles"
	"github.com/jdelgado/resumepdf/internal/types"
)

const pointsPerInch = 72

// Renderer builds the document story from a parsed resume.
type Renderer struct {
	durations *duration.Calculator
	group     bool
	divider   layout.Divider
}

// New creates a renderer bound to the merged theme configuration and a
// duration calculator.
func New(cfg config.Config, durations *duration.Calculator) *Renderer {
	return &Renderer{
		durations: durations,
		group:     cfg.GroupSections(),
		divider: layout.Divider{
			Width:     cfg.Divider.Width * pointsPerInch,
			Thickness: cfg.Divider.Thickness,
			Color:     cfg.Colors.Primary,
		},
	}
}

// Render produces the full block story: header first, then every section
// in document order.
func (r *Renderer) Render(doc *types.ResumeDocument) *layout.Story {
	story := &layout.Story{}
	r.renderHeader(story, doc)
	for _, section := range doc.Sections {
		r.renderSection(story, section)
	}
	return story
}

// renderHeader emits the name, title, and the <br/>-joined contact block.
// Name and title are rendered as-is; only contact items get inline
// formatting.
func (r *Renderer) renderHeader(story *layout.Story, doc *types.ResumeDocument) {
	story.Append(
		layout.Paragraph{Text: doc.Name, Style: styles.Name},
		layout.Paragraph{Text: doc.Title, Style: styles.Subtitle},
		layout.Paragraph{Text: formatting.ContactLine(doc.Contact), Style: styles.Contact},
	)
}

func (r *Renderer) renderSection(story *layout.Story, section types.Section) {
	name := strings.ToUpper(section.Name)
	switch {
	case strings.Contains(name, "SUMMARY"):
		r.renderSummary(story, section)
	case strings.Contains(name, "SKILL"):
		r.renderSkills(story, section)
	case strings.Contains(name, "EXPERIENCE"):
		r.renderExperience(story, section)
	default:
		r.renderGeneric(story, section)
	}
}

// appendSectionHeader emits the section header and its divider, wrapped as
// one atomic unit when grouping is on.
func (r *Renderer) appendSectionHeader(story *layout.Story, name string) {
	blocks := []layout.Block{
		layout.Paragraph{Text: name, Style: styles.SectionHeader},
		r.divider,
	}
	if r.group {
		story.Append(layout.Group{Blocks: blocks})
	} else {
		story.Append(blocks...)
	}
}

// Sections short enough to keep on one page when grouping is enabled.
var keepTogetherKeywords = []string{"EDUCATION", "CERTIFICATION", "AWARD", "HONOR"}

func (r *Renderer) keepSectionTogether(name string) bool {
	if !r.group {
		return false
	}
	upper := strings.ToUpper(name)
	for _, keyword := range keepTogetherKeywords {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}
