// Package pipeline provides the high-level orchestration for converting a
// markdown resume into a PDF.
package pipeline

import (
	"context"
	"os"

	"github.com/jdelgado/resumepdf/internal/config"
	"github.com/jdelgado/resumepdf/internal/duration"
	"github.com/jdelgado/resumepdf/internal/ingestion"
	"github.com/jdelgado/resumepdf/internal/layout"
	"github.com/jdelgado/resumepdf/internal/observability"
	"github.com/jdelgado/resumepdf/internal/parsing"
	"github.com/jdelgado/resumepdf/internal/rendering"
	"github.com/jdelgado/resumepdf/internal/styles"
	"github.com/jdelgado/resumepdf/internal/types"
	"github.com/jdelgado/resumepdf/internal/validation"
)

// Options holds configuration for a single conversion run.
type Options struct {
	InputPath  string
	OutputPath string
	Theme      config.Config
	Verbose    bool
}

// Check reads, parses, and validates a resume without rendering it. The
// parsed document is returned so callers can print a summary.
func Check(path string) (*types.ResumeDocument, error) {
	content, err := ingestion.ReadMarkdown(path)
	if err != nil {
		return nil, err
	}

	doc := parsing.Parse(content)
	if err := validation.Validate(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Convert runs the full conversion: read and parse the markdown, validate
// required fields, render the block story, and print it to PDF. Step errors
// carry their own context and are returned as-is so callers can match on
// the ingestion, validation, and layout error types.
func Convert(ctx context.Context, opts Options) error {
	printer := observability.NewPrinter(os.Stdout)

	doc, err := Check(opts.InputPath)
	if err != nil {
		return err
	}
	if opts.Verbose {
		printer.PrintResumeSummary(doc)
	}

	document, stats := assemble(doc, opts.Theme)
	if opts.Verbose {
		printer.PrintRenderStats(stats)
	}

	return document.WritePDF(ctx, opts.OutputPath)
}

// assemble renders the parsed resume into a printable document.
func assemble(doc *types.ResumeDocument, theme config.Config) (*layout.Document, observability.RenderStats) {
	durations := duration.NewCalculator(theme.DurationsEnabled())
	story := rendering.New(theme, durations).Render(doc)

	document := layout.NewDocument(layout.PageConfig{
		Size:         theme.Page.Size,
		MarginTop:    theme.Page.MarginTop,
		MarginBottom: theme.Page.MarginBottom,
		MarginLeft:   theme.Page.MarginLeft,
		MarginRight:  theme.Page.MarginRight,
	}, styles.NewSheet(theme))
	document.AppendStory(story)

	return document, observability.CollectRenderStats(story)
}
