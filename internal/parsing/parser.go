// Package parsing turns raw markdown resume text into the structured
// document model using line-level heuristics. No CommonMark engine is
// involved: the dialect is narrow enough that ordered prefix and wrapper
// checks recover the whole structure.
package parsing

import (
	"strings"

	"github.com/jdelgado/resumepdf/internal/types"
)

// noIndex marks a cursor slot as closed.
const noIndex = -1

// cursor tracks where content lines land while walking the document: the
// open section and subsection as indices into the document under
// construction. A fresh cursor is returned by every rule application, so
// the walk is a plain fold with no hidden state.
type cursor struct {
	section    int
	subsection int
}

func (c cursor) sectionOpen() bool    { return c.section != noIndex }
func (c cursor) subsectionOpen() bool { return c.subsection != noIndex }

// rule pairs a guard with the mutation it performs. The table below is
// evaluated top to bottom and the first rule whose applies reports true
// consumes the line.
type rule struct {
	name    string
	applies func(line string, doc *types.ResumeDocument, cur cursor) bool
	apply   func(line string, doc *types.ResumeDocument, cur cursor) cursor
}

// rules is the line classification table. Order is load-bearing: the title
// rule must run before contact detection because a title could contain a
// location token, and contact detection must run before content capture
// because contact lines precede any section and would otherwise be lost.
var rules = []rule{
	{
		name: "blank-or-divider",
		applies: func(line string, _ *types.ResumeDocument, _ cursor) bool {
			return line == "" || line == "---"
		},
		apply: func(_ string, _ *types.ResumeDocument, cur cursor) cursor {
			return cur
		},
	},
	{
		name: "name-heading",
		applies: func(line string, doc *types.ResumeDocument, _ cursor) bool {
			return strings.HasPrefix(line, "# ") && doc.Name == ""
		},
		apply: func(line string, doc *types.ResumeDocument, cur cursor) cursor {
			doc.Name = strings.TrimSpace(line[2:])
			return cur
		},
	},
	{
		name: "title-line",
		applies: func(line string, doc *types.ResumeDocument, _ cursor) bool {
			return isBoldWrapped(line) && doc.Title == ""
		},
		apply: func(line string, doc *types.ResumeDocument, cur cursor) cursor {
			doc.Title = strings.TrimSpace(line[2 : len(line)-2])
			return cur
		},
	},
	{
		name: "contact-info",
		applies: func(line string, _ *types.ResumeDocument, cur cursor) bool {
			return !cur.sectionOpen() && IsContactLine(line)
		},
		apply: func(line string, doc *types.ResumeDocument, cur cursor) cursor {
			doc.Contact = append(doc.Contact, line)
			return cur
		},
	},
	{
		name: "section-heading",
		applies: func(line string, _ *types.ResumeDocument, _ cursor) bool {
			return strings.HasPrefix(line, "## ")
		},
		apply: func(line string, doc *types.ResumeDocument, _ cursor) cursor {
			doc.Sections = append(doc.Sections, types.Section{
				Name:        strings.TrimSpace(line[3:]),
				Content:     []string{},
				Subsections: []types.Subsection{},
			})
			return cursor{section: len(doc.Sections) - 1, subsection: noIndex}
		},
	},
	{
		name: "subsection-heading",
		applies: func(line string, _ *types.ResumeDocument, _ cursor) bool {
			return strings.HasPrefix(line, "### ")
		},
		apply: func(line string, doc *types.ResumeDocument, cur cursor) cursor {
			// A subsection needs a parent section; without one the heading
			// is dropped and the cursor stays closed, so the orphan's body
			// lines fall through to the drop arm below.
			if !cur.sectionOpen() {
				return cur
			}
			section := &doc.Sections[cur.section]
			section.Subsections = append(section.Subsections, types.Subsection{
				Name:  strings.TrimSpace(line[4:]),
				Lines: []string{},
			})
			return cursor{section: cur.section, subsection: len(section.Subsections) - 1}
		},
	},
	{
		name: "content-line",
		applies: func(_ string, _ *types.ResumeDocument, _ cursor) bool {
			return true
		},
		apply: func(line string, doc *types.ResumeDocument, cur cursor) cursor {
			switch {
			case cur.subsectionOpen():
				sub := &doc.Sections[cur.section].Subsections[cur.subsection]
				sub.Lines = append(sub.Lines, line)
			case cur.sectionOpen():
				section := &doc.Sections[cur.section]
				section.Content = append(section.Content, line)
			}
			// Stray lines before any section are dropped.
			return cur
		},
	},
}

// Parse converts markdown resume text into a ResumeDocument. It never
// fails: malformed input degrades to empty or partial fields, which
// validation reports afterwards. Each input line is trimmed and classified
// by the first matching rule.
func Parse(markdown string) *types.ResumeDocument {
	doc := types.NewResumeDocument()
	cur := cursor{section: noIndex, subsection: noIndex}

	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)
		for _, r := range rules {
			if r.applies(line, doc, cur) {
				cur = r.apply(line, doc, cur)
				break
			}
		}
	}

	return doc
}

// isBoldWrapped reports whether a line is entirely wrapped in ** markers
// with room for content between them.
func isBoldWrapped(line string) bool {
	return len(line) > 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**")
}
