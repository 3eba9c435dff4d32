// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jdelgado/resumepdf/internal/layout"
	"github.com/jdelgado/resumepdf/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of the parsed resume
// model: identity, contact count, and per-section sizes.
func (p *Printer) PrintResumeSummary(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", doc.Title))
	sb.WriteString(fmt.Sprintf("Contact:  %d lines\n", len(doc.Contact)))
	sb.WriteString("\n")

	if len(doc.Sections) > 0 {
		sb.WriteString(fmt.Sprintf("Sections (%d):\n", len(doc.Sections)))
		count := min(len(doc.Sections), maxItemsToShow)
		for i := 0; i < count; i++ {
			section := doc.Sections[i]
			name := section.Name
			if len(name) > 30 {
				name = name[:27] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s", name))
			if len(section.Subsections) > 0 {
				sb.WriteString(fmt.Sprintf(" (%d entries)", len(section.Subsections)))
			} else {
				sb.WriteString(fmt.Sprintf(" (%d lines)", len(section.Content)))
			}
			sb.WriteString("\n")
		}
		if len(doc.Sections) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Sections)-maxItemsToShow))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// RenderStats summarizes the generated block story.
type RenderStats struct {
	Paragraphs int
	Spacers    int
	Dividers   int
	Groups     int
}

// CollectRenderStats counts blocks in a story, descending into groups.
func CollectRenderStats(story *layout.Story) RenderStats {
	var stats RenderStats
	if story == nil {
		return stats
	}
	countBlocks(story.Blocks(), &stats)
	return stats
}

func countBlocks(blocks []layout.Block, stats *RenderStats) {
	for _, b := range blocks {
		switch v := b.(type) {
		case layout.Paragraph:
			stats.Paragraphs++
		case layout.Spacer:
			stats.Spacers++
		case layout.Divider:
			stats.Dividers++
		case layout.Group:
			stats.Groups++
			countBlocks(v.Blocks, stats)
		}
	}
}

// PrintRenderStats outputs story-level block counts after rendering.
func (p *Printer) PrintRenderStats(stats RenderStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Paragraphs:     %d\n", stats.Paragraphs))
	sb.WriteString(fmt.Sprintf("Spacers:        %d\n", stats.Spacers))
	sb.WriteString(fmt.Sprintf("Dividers:       %d\n", stats.Dividers))
	sb.WriteString(fmt.Sprintf("Atomic groups:  %d", stats.Groups))

	p.printBox("RENDERED BLOCKS", sb.String())
}
