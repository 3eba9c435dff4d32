package rendering

import (
	"regexp"
	"strings"

	"github.com/jdelgado/resumepdf/internal/formatting"
	"github.com/jdelgado/resumepdf/internal/layout"
	"github.com/jdelgado/resumepdf/internal/styles"
	"github.com/jdelgado/resumepdf/internal/types"
)

// trailingParenthetical matches a duration annotation like "(2 years)" at
// the end of a date line.
var trailingParenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// renderExperience emits the section header and one entry per subsection
// (one employer each).
func (r *Renderer) renderExperience(story *layout.Story, section types.Section) {
	r.appendSectionHeader(story, section.Name)
	for _, sub := range section.Subsections {
		r.renderExperienceEntry(story, sub)
	}
}

// renderExperienceEntry renders one employer: company line, job title with
// recomputed date duration, achievement bullets, technologies line, and a
// trailing spacer. A subsection named with both "Earlier" and "Experience"
// is delegated to the condensed renderer.
func (r *Renderer) renderExperienceEntry(story *layout.Story, sub types.Subsection) {
	if strings.Contains(sub.Name, "Earlier") && strings.Contains(sub.Name, "Experience") {
		r.renderEarlierExperience(story, sub)
		return
	}

	company := strings.ReplaceAll(sub.Name, "**", "")
	story.Append(layout.Paragraph{Text: "<b>" + company + "</b>", Style: styles.JobTitle})

	var jobTitle, dates, techLine string
	var bullets []string

	for i, raw := range sub.Lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// The first bold line is the job title; the line right after it,
		// when neither bold nor a bullet, is the date range.
		if jobTitle == "" && strings.HasPrefix(line, "**") {
			jobTitle = formatting.ConvertInline(line)
			if i+1 < len(sub.Lines) {
				next := strings.TrimSpace(sub.Lines[i+1])
				if next != "" && !strings.HasPrefix(next, "**") && !strings.HasPrefix(next, "•") {
					cleaned := stripTrailingParenthetical(next)
					dates = strings.TrimSpace(cleaned + " " + r.durations.FromRange(cleaned))
				}
			}
			continue
		}

		// The date line itself was already folded into the title line.
		if dates != "" && lineMatchesDates(line, dates) {
			continue
		}

		switch {
		case strings.HasPrefix(line, "•"):
			bullets = append(bullets, formatting.ConvertInline(line))
		case strings.Contains(line, "Technologies:") ||
			strings.Contains(line, "Tech used:") ||
			strings.HasPrefix(line, "**Tech"):
			techLine = formatting.ConvertInline(line)
		}
	}

	switch {
	case jobTitle != "" && dates != "":
		story.Append(layout.Paragraph{Text: jobTitle + " | " + dates, Style: styles.CompanyInfo})
	case jobTitle != "":
		story.Append(layout.Paragraph{Text: jobTitle, Style: styles.CompanyInfo})
	}

	for _, bullet := range bullets {
		if strings.TrimSpace(bullet) != "" {
			story.Append(layout.Paragraph{Text: bullet, Style: styles.ResumeBullet})
		}
	}

	if strings.TrimSpace(techLine) != "" {
		story.Append(layout.Paragraph{Text: techLine, Style: styles.CompanyInfo})
	}

	story.Append(layout.Spacer{Height: 8})
}

// renderEarlierExperience renders the condensed one-line-per-role block.
// The whole block is always one atomic unit, whatever the grouping flag
// says: splitting condensed entries across pages reads as a typo.
func (r *Renderer) renderEarlierExperience(story *layout.Story, sub types.Subsection) {
	company := strings.ReplaceAll(sub.Name, "**", "")

	blocks := []layout.Block{
		layout.Spacer{Height: 12},
		layout.Paragraph{Text: "<b>" + company + "</b>", Style: styles.JobTitle},
	}

	for _, raw := range sub.Lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		converted := formatting.ConvertInline(r.augmentCondensedLine(line))
		if strings.TrimSpace(converted) != "" {
			blocks = append(blocks,
				layout.Paragraph{Text: converted, Style: styles.ResumeBullet},
				layout.Spacer{Height: 4},
			)
		}
	}

	blocks = append(blocks, layout.Spacer{Height: 6})
	story.Append(layout.Group{Blocks: blocks})
}

// augmentCondensedLine recomputes the duration on a condensed
// "**Company** | Title | Dates" line: any existing trailing annotation on
// the dates segment is stripped and the computed one attached. Lines that
// don't match the three-part pipe shape, and lines whose dates can't be
// parsed, come back unchanged.
func (r *Renderer) augmentCondensedLine(line string) string {
	if !strings.HasPrefix(line, "**") || !strings.Contains(line, "|") {
		return line
	}
	parts := strings.Split(line, "|")
	if len(parts) < 3 {
		return line
	}

	company := strings.TrimSpace(parts[0])
	title := strings.TrimSpace(parts[1])
	dates := stripTrailingParenthetical(parts[2])

	annotation := r.durations.FromRange(dates)
	if annotation == "" {
		return line
	}
	return company + " | " + title + " | " + dates + " " + annotation
}

// stripTrailingParenthetical removes an existing duration annotation from
// the end of a date line.
func stripTrailingParenthetical(line string) string {
	return strings.TrimSpace(trailingParenthetical.ReplaceAllString(line, ""))
}

// lineMatchesDates reports whether a content line reproduces the captured
// date range, comparing with trailing annotations stripped from both
// sides.
func lineMatchesDates(line, dates string) bool {
	if dates == "" {
		return false
	}
	return stripTrailingParenthetical(line) == stripTrailingParenthetical(dates)
}
