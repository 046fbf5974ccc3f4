// Package types provides type definitions for structured data used throughout the resume-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// DocumentVersion is the version stamped on every exported ResumeDocument.
const DocumentVersion = 1

// ResumeDocument is the canonical structured resume. Its JSON encoding is the
// external contract consumed by the Word/HTML renderers and by resume viewers.
type ResumeDocument struct {
	Version        int            `json:"version"`
	Title          string         `json:"title"`
	ID             string         `json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	TemplateID     TemplateID     `json:"templateId"`
	Basic          BasicInfo      `json:"basic"`
	Education      []Education    `json:"education"`
	Experience     []Experience   `json:"experience"`
	Projects       []Project      `json:"projects"`
	SkillContent   string         `json:"skillContent"`
	MenuSections   []MenuSection  `json:"menuSections"`
	GlobalSettings GlobalSettings `json:"globalSettings"`
	CustomData     map[string]any `json:"customData"`
}

// BasicInfo holds the candidate identity block.
type BasicInfo struct {
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Location     string        `json:"location"`
	FieldOrder   []BasicField  `json:"fieldOrder"`
	Icons        BasicIcons    `json:"icons"`
	PhotoConfig  PhotoConfig   `json:"photoConfig"`
	CustomFields []CustomField `json:"customFields"`
}

// BasicField describes the display order and visibility of one identity field.
type BasicField struct {
	ID      string `json:"id"`
	Key     string `json:"key"`
	Label   string `json:"label"`
	Type    string `json:"type"`
	Visible bool   `json:"visible"`
}

// BasicIcons maps contact fields to icon names.
type BasicIcons struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// PhotoConfig describes the (optional) profile photo box.
type PhotoConfig struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AspectRatio  string `json:"aspectRatio"`
	BorderRadius string `json:"borderRadius"`
	Visible      bool   `json:"visible"`
}

// CustomField is a free-form labelled identity field.
type CustomField struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Icon    string `json:"icon,omitempty"`
	Visible bool   `json:"visible"`
}

// Education is one degree entry. Description is rich text (HTML).
type Education struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Major       string `json:"major"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
	Visible     bool   `json:"visible"`
}

// Experience is one job entry. Details is rich text (HTML).
type Experience struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Date     string `json:"date"`
	Details  string `json:"details"`
	Visible  bool   `json:"visible"`
}

// Project is one project entry. Description is rich text (HTML).
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Visible     bool   `json:"visible"`
}

// MenuSectionID identifies a renderable block of the document.
type MenuSectionID string

// Menu section identifiers, in their default display order.
const (
	MenuBasic      MenuSectionID = "basic"
	MenuEducation  MenuSectionID = "education"
	MenuExperience MenuSectionID = "experience"
	MenuProjects   MenuSectionID = "projects"
	MenuSkills     MenuSectionID = "skills"
)

// MenuSection describes one section in the rendered document order.
type MenuSection struct {
	ID      MenuSectionID `json:"id"`
	Title   string        `json:"title"`
	Icon    string        `json:"icon"`
	Enabled bool          `json:"enabled"`
	Order   int           `json:"order"`
}

// DefaultMenuSections returns a fresh copy of the default section descriptors.
func DefaultMenuSections() []MenuSection {
	return []MenuSection{
		{ID: MenuBasic, Title: "基本信息", Icon: "👤", Enabled: true, Order: 0},
		{ID: MenuEducation, Title: "教育经历", Icon: "🎓", Enabled: true, Order: 1},
		{ID: MenuExperience, Title: "工作经验", Icon: "💼", Enabled: true, Order: 2},
		{ID: MenuProjects, Title: "项目经历", Icon: "🚀", Enabled: true, Order: 3},
		{ID: MenuSkills, Title: "专业技能", Icon: "⚡", Enabled: true, Order: 4},
	}
}

// GlobalSettings holds the style settings. Sizes are in CSS pixels.
type GlobalSettings struct {
	BaseFontSize     int     `json:"baseFontSize"`
	PagePadding      int     `json:"pagePadding"`
	ParagraphSpacing int     `json:"paragraphSpacing"`
	LineHeight       float64 `json:"lineHeight"`
	SectionSpacing   int     `json:"sectionSpacing"`
	HeaderSize       int     `json:"headerSize"`
	SubheaderSize    int     `json:"subheaderSize"`
	UseIconMode      bool    `json:"useIconMode"`
	ThemeColor       string  `json:"themeColor"`
	CenterSubtitle   bool    `json:"centerSubtitle"`
}

// DefaultGlobalSettings returns the style defaults before template overrides.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		BaseFontSize:     16,
		PagePadding:      32,
		ParagraphSpacing: 12,
		LineHeight:       1.3,
		SectionSpacing:   10,
		HeaderSize:       18,
		SubheaderSize:    16,
		UseIconMode:      true,
		ThemeColor:       "#000000",
		CenterSubtitle:   true,
	}
}

// SettingsOverrides carries explicit per-field style overrides.
// Nil fields keep the template default.
type SettingsOverrides struct {
	BaseFontSize     *int     `json:"baseFontSize,omitempty" toml:"base_font_size"`
	PagePadding      *int     `json:"pagePadding,omitempty" toml:"page_padding"`
	ParagraphSpacing *int     `json:"paragraphSpacing,omitempty" toml:"paragraph_spacing"`
	LineHeight       *float64 `json:"lineHeight,omitempty" toml:"line_height"`
	SectionSpacing   *int     `json:"sectionSpacing,omitempty" toml:"section_spacing"`
	HeaderSize       *int     `json:"headerSize,omitempty" toml:"header_size"`
	SubheaderSize    *int     `json:"subheaderSize,omitempty" toml:"subheader_size"`
	UseIconMode      *bool    `json:"useIconMode,omitempty" toml:"use_icon_mode"`
	ThemeColor       *string  `json:"themeColor,omitempty" toml:"theme_color"`
	CenterSubtitle   *bool    `json:"centerSubtitle,omitempty" toml:"center_subtitle"`
}

// Apply returns s with every non-nil override applied.
func (o *SettingsOverrides) Apply(s GlobalSettings) GlobalSettings {
	if o == nil {
		return s
	}
	if o.BaseFontSize != nil {
		s.BaseFontSize = *o.BaseFontSize
	}
	if o.PagePadding != nil {
		s.PagePadding = *o.PagePadding
	}
	if o.ParagraphSpacing != nil {
		s.ParagraphSpacing = *o.ParagraphSpacing
	}
	if o.LineHeight != nil {
		s.LineHeight = *o.LineHeight
	}
	if o.SectionSpacing != nil {
		s.SectionSpacing = *o.SectionSpacing
	}
	if o.HeaderSize != nil {
		s.HeaderSize = *o.HeaderSize
	}
	if o.SubheaderSize != nil {
		s.SubheaderSize = *o.SubheaderSize
	}
	if o.UseIconMode != nil {
		s.UseIconMode = *o.UseIconMode
	}
	if o.ThemeColor != nil {
		s.ThemeColor = *o.ThemeColor
	}
	if o.CenterSubtitle != nil {
		s.CenterSubtitle = *o.CenterSubtitle
	}
	return s
}
