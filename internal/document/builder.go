// Package document builds the canonical ResumeDocument incrementally.
//
// Construction and rendering are separate phases: a Builder is mutated while
// parsing, then Build returns an independent snapshot that renderers only read.
package document

import (
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-agent/internal/types"
)

// EducationEntry is the input for AddEducation. Description is markdown.
type EducationEntry struct {
	School      string
	Major       string
	Degree      string
	StartDate   string
	EndDate     string
	GPA         string
	Description string
}

// ExperienceEntry is the input for AddExperience. Details is markdown.
type ExperienceEntry struct {
	Company  string
	Position string
	Date     string
	Details  string
}

// ProjectEntry is the input for AddProject. Description is markdown.
type ProjectEntry struct {
	Name        string
	Role        string
	Date        string
	Description string
	Link        string
}

// Builder accumulates a ResumeDocument.
type Builder struct {
	doc    types.ResumeDocument
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option customises a Builder.
type Option func(*Builder)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// WithIDGenerator overrides the identifier source.
func WithIDGenerator(newID func() string) Option {
	return func(b *Builder) { b.newID = newID }
}

// New creates a builder for the given template. Unknown templates fall back
// to classic with a warning.
func New(templateID types.TemplateID, logger *slog.Logger, opts ...Option) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Builder{
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}

	id, ok := types.ParseTemplateID(string(templateID))
	if !ok {
		logger.Warn("unknown template, using default", "template", string(templateID), "default", string(id))
	}
	spec := id.Spec()

	settings := types.DefaultGlobalSettings()
	settings.ThemeColor = spec.Colors.Primary

	docID := b.newID()
	title := docID
	if len(title) > 8 {
		title = title[:8]
	}
	created := b.now()

	b.doc = types.ResumeDocument{
		Version:        types.DocumentVersion,
		Title:          "简历_" + title,
		ID:             docID,
		CreatedAt:      created,
		UpdatedAt:      created,
		TemplateID:     id,
		Basic:          basicInfo("", "", "", "", ""),
		Education:      []types.Education{},
		Experience:     []types.Experience{},
		Projects:       []types.Project{},
		MenuSections:   types.DefaultMenuSections(),
		GlobalSettings: settings,
		CustomData:     map[string]any{},
	}
	return b
}

// TemplateID returns the (possibly coerced) template of the document.
func (b *Builder) TemplateID() types.TemplateID {
	return b.doc.TemplateID
}

// SetBasicInfo replaces the identity block.
func (b *Builder) SetBasicInfo(name, title, email, phone, location string) *Builder {
	b.doc.Basic = basicInfo(name, title, email, phone, location)
	return b
}

func basicInfo(name, title, email, phone, location string) types.BasicInfo {
	return types.BasicInfo{
		Name:     name,
		Title:    title,
		Email:    email,
		Phone:    phone,
		Location: location,
		FieldOrder: []types.BasicField{
			{ID: "1", Key: "name", Label: "姓名", Type: "text", Visible: true},
			{ID: "2", Key: "title", Label: "职位", Type: "text", Visible: title != ""},
			{ID: "5", Key: "email", Label: "邮箱", Type: "text", Visible: email != ""},
			{ID: "6", Key: "phone", Label: "电话", Type: "text", Visible: phone != ""},
			{ID: "7", Key: "location", Label: "所在地", Type: "text", Visible: location != ""},
		},
		Icons: types.BasicIcons{Email: "Mail", Phone: "Phone", Location: "MapPin"},
		PhotoConfig: types.PhotoConfig{
			Width:        90,
			Height:       120,
			AspectRatio:  "1:1",
			BorderRadius: "none",
			Visible:      false,
		},
		CustomFields: []types.CustomField{},
	}
}

// AddEducation appends an education entry.
func (b *Builder) AddEducation(e EducationEntry) *Builder {
	b.doc.Education = append(b.doc.Education, types.Education{
		ID:          b.newID(),
		School:      e.School,
		Major:       e.Major,
		Degree:      e.Degree,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		GPA:         e.GPA,
		Description: MarkdownToHTML(e.Description),
		Visible:     true,
	})
	return b
}

// AddExperience appends an experience entry.
func (b *Builder) AddExperience(e ExperienceEntry) *Builder {
	b.doc.Experience = append(b.doc.Experience, types.Experience{
		ID:       b.newID(),
		Company:  e.Company,
		Position: e.Position,
		Date:     e.Date,
		Details:  MarkdownToHTML(e.Details),
		Visible:  true,
	})
	return b
}

// AddProject appends a project entry.
func (b *Builder) AddProject(p ProjectEntry) *Builder {
	b.doc.Projects = append(b.doc.Projects, types.Project{
		ID:          b.newID(),
		Name:        p.Name,
		Role:        p.Role,
		Date:        p.Date,
		Description: MarkdownToHTML(p.Description),
		Link:        p.Link,
		Visible:     true,
	})
	return b
}

// SetSkills replaces the skills block with the given markdown.
func (b *Builder) SetSkills(markdown string) *Builder {
	b.doc.SkillContent = MarkdownToHTML(markdown)
	return b
}

// SetGlobalSettings applies explicit style overrides on top of the template defaults.
func (b *Builder) SetGlobalSettings(o *types.SettingsOverrides) *Builder {
	b.doc.GlobalSettings = o.Apply(b.doc.GlobalSettings)
	return b
}

// Build stamps the update time and returns an independent snapshot.
func (b *Builder) Build() *types.ResumeDocument {
	b.doc.UpdatedAt = b.now()

	out := b.doc
	out.Basic.FieldOrder = slices.Clone(b.doc.Basic.FieldOrder)
	out.Basic.CustomFields = slices.Clone(b.doc.Basic.CustomFields)
	out.Education = slices.Clone(b.doc.Education)
	out.Experience = slices.Clone(b.doc.Experience)
	out.Projects = slices.Clone(b.doc.Projects)
	out.MenuSections = slices.Clone(b.doc.MenuSections)
	out.CustomData = maps.Clone(b.doc.CustomData)
	return &out
}
