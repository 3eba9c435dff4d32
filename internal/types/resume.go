// Package types provides type definitions for structured data used throughout the resumepdf pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Subsection represents a titled entry inside a section, such as a single
// company under Experience or a single degree under Education.
type Subsection struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// Section represents a top-level resume section with its loose content lines
// and any titled subsections, both in source order.
type Section struct {
	Name        string       `json:"name"`
	Content     []string     `json:"content"`
	Subsections []Subsection `json:"subsections"`
}

// ResumeDocument is the semantic model extracted from a markdown resume.
// Fields a document does not provide stay at their zero values; validation
// decides which of them are required.
type ResumeDocument struct {
	Name     string    `json:"name,omitempty"`
	Title    string    `json:"title,omitempty"`
	Contact  []string  `json:"contact"`
	Sections []Section `json:"sections"`
}

// NewResumeDocument returns an empty document with allocated slices so
// callers can append without nil checks.
func NewResumeDocument() *ResumeDocument {
	return &ResumeDocument{
		Contact:  []string{},
		Sections: []Section{},
	}
}

// CountLines returns the total number of content lines in the document,
// counting both loose section content and subsection lines.
func (d *ResumeDocument) CountLines() int {
	count := 0
	for _, section := range d.Sections {
		count += len(section.Content)
		for _, sub := range section.Subsections {
			count += len(sub.Lines)
		}
	}
	return count
}
