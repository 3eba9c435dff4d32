// Package styles builds the named paragraph style registry shared by the
// section renderers and the layout engine. The registry is built once per
// render from the merged configuration and never mutated afterwards.
package styles

import (
	"fmt"

	"github.com/jdelgado/resumepdf/internal/config"
)

// Style names registered by NewSheet. Renderers reference styles through
// these constants so a typo is a compile error, not a silent fallback.
const (
	Name          = "Name"
	Subtitle      = "Subtitle"
	Contact       = "Contact"
	SectionHeader = "SectionHeader"
	JobTitle      = "JobTitle"
	CompanyInfo   = "CompanyInfo"
	ResumeBullet  = "ResumeBullet"
	SkillCategory = "SkillCategory"
	SkillList     = "SkillList"
	Summary       = "Summary"
)

// Alignment selects horizontal text alignment for a style.
type Alignment string

// Alignments understood by the layout engine.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// Style describes one named paragraph style. Font size, spacing, leading,
// and indent are in points; the color is a CSS value. FontFamily is passed
// through as configured; variant suffixes like "-Bold" are interpreted by
// the layout engine.
type Style struct {
	Name        string
	FontFamily  string
	FontSize    float64
	Color       string
	SpaceBefore float64
	SpaceAfter  float64
	Leading     float64
	LeftIndent  float64
	Alignment   Alignment
}

// Sheet is an immutable registry of named styles.
type Sheet struct {
	styles map[string]Style
	order  []string
}

// NewSheet builds the style registry from the merged configuration.
func NewSheet(cfg config.Config) *Sheet {
	sheet := &Sheet{styles: make(map[string]Style)}

	sheet.add(Style{
		Name:       Name,
		FontFamily: cfg.Fonts.Bold,
		FontSize:   cfg.Sizes.Name,
		Color:      cfg.Colors.Primary,
		SpaceAfter: cfg.Spacing.AfterName,
		Alignment:  AlignCenter,
	})
	sheet.add(Style{
		Name:       Subtitle,
		FontFamily: cfg.Fonts.Base,
		FontSize:   cfg.Sizes.Subtitle,
		Color:      cfg.Colors.Accent,
		SpaceAfter: cfg.Spacing.AfterSubtitle,
		Alignment:  AlignCenter,
	})
	sheet.add(Style{
		Name:       Contact,
		FontFamily: cfg.Fonts.Base,
		FontSize:   cfg.Sizes.Contact,
		Color:      cfg.Colors.LightGray,
		SpaceAfter: cfg.Spacing.AfterContact,
		Alignment:  AlignCenter,
	})
	sheet.add(Style{
		Name:        SectionHeader,
		FontFamily:  cfg.Fonts.Bold,
		FontSize:    cfg.Sizes.SectionHeader,
		Color:       cfg.Colors.Primary,
		SpaceBefore: cfg.Spacing.BeforeSection,
		SpaceAfter:  cfg.Spacing.AfterSectionHeader,
		Alignment:   AlignLeft,
	})
	sheet.add(Style{
		Name:       JobTitle,
		FontFamily: cfg.Fonts.Bold,
		FontSize:   cfg.Sizes.JobTitle,
		Color:      cfg.Colors.DarkGray,
		SpaceAfter: cfg.Spacing.AfterJobTitle,
		Alignment:  AlignLeft,
	})
	sheet.add(Style{
		Name:       CompanyInfo,
		FontFamily: cfg.Fonts.Italic,
		FontSize:   cfg.Sizes.CompanyInfo,
		Color:      cfg.Colors.LightGray,
		SpaceAfter: cfg.Spacing.AfterCompanyInfo,
		Alignment:  AlignLeft,
	})
	sheet.add(Style{
		Name:       ResumeBullet,
		FontFamily: cfg.Fonts.Base,
		FontSize:   cfg.Sizes.Bullet,
		Color:      cfg.Colors.DarkGray,
		SpaceAfter: cfg.Spacing.AfterBullet,
		Leading:    cfg.Spacing.LeadingBullet,
		LeftIndent: cfg.Spacing.BulletIndent,
		Alignment:  AlignLeft,
	})
	sheet.add(Style{
		Name:       SkillCategory,
		FontFamily: cfg.Fonts.Bold,
		FontSize:   cfg.Sizes.SkillCategory,
		Color:      cfg.Colors.DarkGray,
		SpaceAfter: cfg.Spacing.AfterSkillCategory,
		Alignment:  AlignLeft,
	})
	sheet.add(Style{
		Name:       SkillList,
		FontFamily: cfg.Fonts.Base,
		FontSize:   cfg.Sizes.SkillList,
		Color:      cfg.Colors.DarkGray,
		SpaceAfter: cfg.Spacing.AfterSkillList,
		Leading:    cfg.Spacing.LeadingSkillList,
		Alignment:  AlignLeft,
	})
	sheet.add(Style{
		Name:       Summary,
		FontFamily: cfg.Fonts.Base,
		FontSize:   cfg.Sizes.Summary,
		Color:      cfg.Colors.DarkGray,
		SpaceAfter: cfg.Spacing.AfterSummary,
		Leading:    cfg.Spacing.LeadingSummary,
		Alignment:  AlignLeft,
	})

	return sheet
}

func (s *Sheet) add(style Style) {
	s.styles[style.Name] = style
	s.order = append(s.order, style.Name)
}

// Lookup returns the named style. Unknown names return an error so a
// renderer typo fails loudly instead of silently styling with zero values.
func (s *Sheet) Lookup(name string) (Style, error) {
	style, ok := s.styles[name]
	if !ok {
		return Style{}, fmt.Errorf("unknown style %q", name)
	}
	return style, nil
}

// All returns every registered style in registration order, for emitting
// the stylesheet in one pass.
func (s *Sheet) All() []Style {
	all := make([]Style, 0, len(s.order))
	for _, name := range s.order {
		all = append(all, s.styles[name])
	}
	return all
}
