// Package config provides theme configuration loading and validation for
// the CLI. Every value has a built-in default; a JSON theme file overrides
// defaults and CLI flags override the file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jdelgado/resumepdf/internal/schemas"
)

// ColorSet holds the hex colors used across the stylesheet.
type ColorSet struct {
	Primary   string `json:"primary,omitempty" validate:"omitempty,hexcolor"`   // section headers, name, divider
	Accent    string `json:"accent,omitempty" validate:"omitempty,hexcolor"`    // subtitle
	LightGray string `json:"light_gray,omitempty" validate:"omitempty,hexcolor"` // secondary text: contact, dates
	DarkGray  string `json:"dark_gray,omitempty" validate:"omitempty,hexcolor"`  // main body text
}

// FontSet names the font family variants handed to the layout engine.
type FontSet struct {
	Base   string `json:"base,omitempty"`
	Bold   string `json:"bold,omitempty"`
	Italic string `json:"italic,omitempty"`
}

// SizeSet holds per-element font sizes in points.
type SizeSet struct {
	Name          float64 `json:"name,omitempty" validate:"omitempty,gt=0"`
	Subtitle      float64 `json:"subtitle,omitempty" validate:"omitempty,gt=0"`
	Contact       float64 `json:"contact,omitempty" validate:"omitempty,gt=0"`
	SectionHeader float64 `json:"section_header,omitempty" validate:"omitempty,gt=0"`
	JobTitle      float64 `json:"job_title,omitempty" validate:"omitempty,gt=0"`
	CompanyInfo   float64 `json:"company_info,omitempty" validate:"omitempty,gt=0"`
	Bullet        float64 `json:"bullet,omitempty" validate:"omitempty,gt=0"`
	SkillCategory float64 `json:"skill_category,omitempty" validate:"omitempty,gt=0"`
	SkillList     float64 `json:"skill_list,omitempty" validate:"omitempty,gt=0"`
	Summary       float64 `json:"summary,omitempty" validate:"omitempty,gt=0"`
}

// PageSetup holds the page size name and the four margins in inches.
type PageSetup struct {
	Size         string  `json:"size,omitempty" validate:"omitempty,oneof=letter a4"`
	MarginTop    float64 `json:"margin_top,omitempty" validate:"omitempty,gte=0"`
	MarginBottom float64 `json:"margin_bottom,omitempty" validate:"omitempty,gte=0"`
	MarginLeft   float64 `json:"margin_left,omitempty" validate:"omitempty,gte=0"`
	MarginRight  float64 `json:"margin_right,omitempty" validate:"omitempty,gte=0"`
}

// SpacingSet holds spacing, leading, and indent values in points.
type SpacingSet struct {
	AfterName          float64 `json:"after_name,omitempty" validate:"omitempty,gte=0"`
	AfterSubtitle      float64 `json:"after_subtitle,omitempty" validate:"omitempty,gte=0"`
	AfterContact       float64 `json:"after_contact,omitempty" validate:"omitempty,gte=0"`
	AfterSectionHeader float64 `json:"after_section_header,omitempty" validate:"omitempty,gte=0"`
	AfterJobTitle      float64 `json:"after_job_title,omitempty" validate:"omitempty,gte=0"`
	AfterCompanyInfo   float64 `json:"after_company_info,omitempty" validate:"omitempty,gte=0"`
	AfterBullet        float64 `json:"after_bullet,omitempty" validate:"omitempty,gte=0"`
	AfterSkillCategory float64 `json:"after_skill_category,omitempty" validate:"omitempty,gte=0"`
	AfterSkillList     float64 `json:"after_skill_list,omitempty" validate:"omitempty,gte=0"`
	AfterSummary       float64 `json:"after_summary,omitempty" validate:"omitempty,gte=0"`
	BeforeSection      float64 `json:"before_section,omitempty" validate:"omitempty,gte=0"`
	LeadingBullet      float64 `json:"leading_bullet,omitempty" validate:"omitempty,gte=0"`
	LeadingSummary     float64 `json:"leading_summary,omitempty" validate:"omitempty,gte=0"`
	LeadingSkillList   float64 `json:"leading_skill_list,omitempty" validate:"omitempty,gte=0"`
	BulletIndent       float64 `json:"bullet_indent,omitempty" validate:"omitempty,gte=0"`
}

// DividerSetup holds the section divider geometry: width in inches,
// thickness in points.
type DividerSetup struct {
	Width     float64 `json:"width,omitempty" validate:"omitempty,gt=0"`
	Thickness float64 `json:"thickness,omitempty" validate:"omitempty,gt=0"`
}

// FolderSet holds the default directories searched for inputs and used for
// outputs. Empty strings disable the fallback and use the current directory.
type FolderSet struct {
	Inputs  string `json:"inputs,omitempty"`
	Outputs string `json:"outputs,omitempty"`
}

// Config is the full theme configuration. All fields are optional in the
// JSON file; missing values fall back to defaults via MergeWithDefaults.
// The two behavior flags are pointers so an explicit false in the file can
// be told apart from an absent key.
type Config struct {
	Colors  ColorSet     `json:"colors,omitempty"`
	Fonts   FontSet      `json:"fonts,omitempty"`
	Sizes   SizeSet      `json:"sizes,omitempty"`
	Page    PageSetup    `json:"page,omitempty"`
	Spacing SpacingSet   `json:"spacing,omitempty"`
	Divider DividerSetup `json:"divider,omitempty"`
	Folders FolderSet    `json:"folders,omitempty"`

	CalculateDurations   *bool `json:"calculate_durations,omitempty"`
	KeepSectionsTogether *bool `json:"keep_sections_together,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// DefaultConfig returns the built-in theme.
func DefaultConfig() Config {
	return Config{
		Colors: ColorSet{
			Primary:   "#1e40af",
			Accent:    "#1e3a8a",
			LightGray: "#6b7280",
			DarkGray:  "#1f2937",
		},
		Fonts: FontSet{
			Base:   "Helvetica",
			Bold:   "Helvetica-Bold",
			Italic: "Helvetica-Oblique",
		},
		Sizes: SizeSet{
			Name:          24,
			Subtitle:      12,
			Contact:       9,
			SectionHeader: 13,
			JobTitle:      11,
			CompanyInfo:   10,
			Bullet:        9.5,
			SkillCategory: 10,
			SkillList:     9,
			Summary:       10,
		},
		Page: PageSetup{
			Size:         "letter",
			MarginTop:    0.5,
			MarginBottom: 0.5,
			MarginLeft:   0.75,
			MarginRight:  0.75,
		},
		Spacing: SpacingSet{
			AfterName:          6,
			AfterSubtitle:      12,
			AfterContact:       20,
			AfterSectionHeader: 8,
			AfterJobTitle:      2,
			AfterCompanyInfo:   6,
			AfterBullet:        4,
			AfterSkillCategory: 2,
			AfterSkillList:     6,
			AfterSummary:       12,
			BeforeSection:      12,
			LeadingBullet:      12,
			LeadingSummary:     13,
			LeadingSkillList:   11,
			BulletIndent:       12,
		},
		Divider: DividerSetup{
			Width:     7,
			Thickness: 1,
		},
		Folders: FolderSet{
			Inputs:  "inputs",
			Outputs: "outputs",
		},
	}
}

// LoadConfig loads a theme from a JSON file, validating it against the
// embedded schema before unmarshalling. Returns an error if the file
// cannot be read, fails schema validation, or cannot be parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("theme path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}

	if err := schemas.ValidateTheme(data); err != nil {
		return nil, fmt.Errorf("theme file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks value ranges using struct tags. Required fields are not
// checked here since every field has a built-in default.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("theme config invalid: %w", err)
	}
	return nil
}

// DurationsEnabled reports the calculate_durations flag, defaulting to true.
func (c *Config) DurationsEnabled() bool {
	return c.CalculateDurations == nil || *c.CalculateDurations
}

// GroupSections reports the keep_sections_together flag, defaulting to true.
func (c *Config) GroupSections() bool {
	return c.KeepSectionsTogether == nil || *c.KeepSectionsTogether
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Zero means unset for numbers and empty means unset for strings;
// the boolean flags keep their pointer semantics and are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fillString(&result.Colors.Primary, defaults.Colors.Primary)
	fillString(&result.Colors.Accent, defaults.Colors.Accent)
	fillString(&result.Colors.LightGray, defaults.Colors.LightGray)
	fillString(&result.Colors.DarkGray, defaults.Colors.DarkGray)

	fillString(&result.Fonts.Base, defaults.Fonts.Base)
	fillString(&result.Fonts.Bold, defaults.Fonts.Bold)
	fillString(&result.Fonts.Italic, defaults.Fonts.Italic)

	fillFloat(&result.Sizes.Name, defaults.Sizes.Name)
	fillFloat(&result.Sizes.Subtitle, defaults.Sizes.Subtitle)
	fillFloat(&result.Sizes.Contact, defaults.Sizes.Contact)
	fillFloat(&result.Sizes.SectionHeader, defaults.Sizes.SectionHeader)
	fillFloat(&result.Sizes.JobTitle, defaults.Sizes.JobTitle)
	fillFloat(&result.Sizes.CompanyInfo, defaults.Sizes.CompanyInfo)
	fillFloat(&result.Sizes.Bullet, defaults.Sizes.Bullet)
	fillFloat(&result.Sizes.SkillCategory, defaults.Sizes.SkillCategory)
	fillFloat(&result.Sizes.SkillList, defaults.Sizes.SkillList)
	fillFloat(&result.Sizes.Summary, defaults.Sizes.Summary)

	fillString(&result.Page.Size, defaults.Page.Size)
	fillFloat(&result.Page.MarginTop, defaults.Page.MarginTop)
	fillFloat(&result.Page.MarginBottom, defaults.Page.MarginBottom)
	fillFloat(&result.Page.MarginLeft, defaults.Page.MarginLeft)
	fillFloat(&result.Page.MarginRight, defaults.Page.MarginRight)

	fillFloat(&result.Spacing.AfterName, defaults.Spacing.AfterName)
	fillFloat(&result.Spacing.AfterSubtitle, defaults.Spacing.AfterSubtitle)
	fillFloat(&result.Spacing.AfterContact, defaults.Spacing.AfterContact)
	fillFloat(&result.Spacing.AfterSectionHeader, defaults.Spacing.AfterSectionHeader)
	fillFloat(&result.Spacing.AfterJobTitle, defaults.Spacing.AfterJobTitle)
	fillFloat(&result.Spacing.AfterCompanyInfo, defaults.Spacing.AfterCompanyInfo)
	fillFloat(&result.Spacing.AfterBullet, defaults.Spacing.AfterBullet)
	fillFloat(&result.Spacing.AfterSkillCategory, defaults.Spacing.AfterSkillCategory)
	fillFloat(&result.Spacing.AfterSkillList, defaults.Spacing.AfterSkillList)
	fillFloat(&result.Spacing.AfterSummary, defaults.Spacing.AfterSummary)
	fillFloat(&result.Spacing.BeforeSection, defaults.Spacing.BeforeSection)
	fillFloat(&result.Spacing.LeadingBullet, defaults.Spacing.LeadingBullet)
	fillFloat(&result.Spacing.LeadingSummary, defaults.Spacing.LeadingSummary)
	fillFloat(&result.Spacing.LeadingSkillList, defaults.Spacing.LeadingSkillList)
	fillFloat(&result.Spacing.BulletIndent, defaults.Spacing.BulletIndent)

	fillFloat(&result.Divider.Width, defaults.Divider.Width)
	fillFloat(&result.Divider.Thickness, defaults.Divider.Thickness)

	fillString(&result.Folders.Inputs, defaults.Folders.Inputs)
	fillString(&result.Folders.Outputs, defaults.Folders.Outputs)

	return result
}

func fillString(value *string, def string) {
	if *value == "" {
		*value = def
	}
}

func fillFloat(value *float64, def float64) {
	if *value == 0 {
		*value = def
	}
}
