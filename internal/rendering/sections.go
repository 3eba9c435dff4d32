package rendering

import (
	"strings"

	"github.com/jdelgado/resumepdf/internal/formatting"
	"github.com/jdelgado/resumepdf/internal/layout"
	"github.com/jdelgado/resumepdf/internal/styles"
	"github.com/jdelgado/resumepdf/internal/types"
)

// renderSummary joins all content lines into one paragraph under the
// section header. Header, divider, and paragraph travel as one atomic unit
// when grouping is on.
func (r *Renderer) renderSummary(story *layout.Story, section types.Section) {
	text := formatting.ConvertInline(strings.Join(section.Content, " "))
	blocks := []layout.Block{
		layout.Paragraph{Text: section.Name, Style: styles.SectionHeader},
		r.divider,
		layout.Paragraph{Text: text, Style: styles.Summary},
	}
	if r.group {
		story.Append(layout.Group{Blocks: blocks})
	} else {
		story.Append(blocks...)
	}
}

// renderSkills emits category labels for fully bold-wrapped lines and list
// entries for everything else. A line that opens with ** but never closes
// it is skipped rather than guessed at.
func (r *Renderer) renderSkills(story *layout.Story, section types.Section) {
	r.appendSectionHeader(story, section.Name)

	for _, raw := range section.Content {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
			var category string
			if len(line) >= 4 {
				category = strings.TrimSpace(line[2 : len(line)-2])
			}
			if category != "" {
				story.Append(layout.Paragraph{Text: "<b>" + category + "</b>", Style: styles.SkillCategory})
			}
		case !strings.HasPrefix(line, "**"):
			converted := formatting.ConvertInline(line)
			if strings.TrimSpace(converted) != "" {
				story.Append(layout.Paragraph{Text: converted, Style: styles.SkillList})
			}
		}
	}
}

// renderGeneric handles education, certifications, projects, and any other
// section without a dedicated renderer. Per line, first match wins:
// condensed pipe entry, bullet, standalone bold sub-heading, plain text.
func (r *Renderer) renderGeneric(story *layout.Story, section types.Section) {
	header := []layout.Block{
		layout.Paragraph{Text: section.Name, Style: styles.SectionHeader},
		r.divider,
	}

	var content []layout.Block
	for _, raw := range section.Content {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "**") && strings.Contains(line, "|"):
			converted := formatting.ConvertInline(r.augmentCondensedLine(line))
			if strings.TrimSpace(converted) != "" {
				content = append(content,
					layout.Paragraph{Text: converted, Style: styles.ResumeBullet},
					layout.Spacer{Height: 6},
				)
			}
		case strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-"):
			converted := formatting.ConvertInline(line)
			if strings.TrimSpace(converted) != "" {
				content = append(content, layout.Paragraph{Text: converted, Style: styles.ResumeBullet})
			}
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
			title := strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
			content = append(content, layout.Paragraph{Text: "<b>" + title + "</b>", Style: styles.JobTitle})
		default:
			converted := formatting.ConvertInline(line)
			if strings.TrimSpace(converted) != "" {
				content = append(content, layout.Paragraph{Text: converted, Style: styles.SkillList})
			}
		}
	}

	if r.keepSectionTogether(section.Name) {
		blocks := append(header, content...)
		blocks = append(blocks, layout.Spacer{Height: 6})
		story.Append(layout.Group{Blocks: blocks})
	} else {
		story.Append(header...)
		story.Append(content...)
		story.Append(layout.Spacer{Height: 6})
	}
}
