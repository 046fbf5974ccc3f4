package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-agent/internal/types"
)

//go:embed templates/*.css templates/*.tmpl
var templateFS embed.FS

var htmlTemplate = template.Must(template.New("resume.html.tmpl").ParseFS(templateFS, "templates/resume.html.tmpl"))

// htmlMode is the structural branch of the HTML encoding.
type htmlMode string

const (
	modeFlat     htmlMode = "flat"
	modeSidebar  htmlMode = "sidebar"
	modeTimeline htmlMode = "timeline"
)

func modeFor(id types.TemplateID) htmlMode {
	switch id {
	case types.TemplateModern:
		return modeSidebar
	case types.TemplateTimeline:
		return modeTimeline
	case types.TemplateClassic, types.TemplateLeftRight:
		return modeFlat
	default:
		return modeFlat
	}
}

type htmlPage struct {
	Title      string
	TemplateID types.TemplateID
	Mode       htmlMode
	CSS        template.CSS
	Sections   []sectionView
	Sidebar    []sectionView
	Main       []sectionView
}

// RenderHTML renders doc as a self-contained HTML page for printing, with
// the base stylesheet and the template's stylesheet inlined.
func RenderHTML(doc *types.ResumeDocument, templateID types.TemplateID) ([]byte, error) {
	id, _ := types.ParseTemplateID(string(templateID))
	l := buildLayout(doc, id)

	css, err := stylesheet(id, l)
	if err != nil {
		return nil, &RenderError{Encoding: EncodingHTML, Message: "failed to load stylesheet", Cause: err}
	}

	page := htmlPage{
		Title:      pageTitle(doc),
		TemplateID: id,
		Mode:       modeFor(id),
		CSS:        template.CSS(css),
	}
	switch page.Mode {
	case modeSidebar:
		for _, s := range l.Sections {
			if s.ID == types.MenuBasic || s.ID == types.MenuSkills {
				page.Sidebar = append(page.Sidebar, s)
			} else {
				page.Main = append(page.Main, s)
			}
		}
	case modeTimeline:
		for _, s := range l.Sections {
			s.Timeline = len(s.Entries) > 0
			page.Sections = append(page.Sections, s)
		}
	case modeFlat:
		page.Sections = l.Sections
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, page); err != nil {
		return nil, templateError(EncodingHTML, "resume.html.tmpl", err)
	}
	return buf.Bytes(), nil
}

// stylesheet concatenates the theme variables, base.css and the template's
// own stylesheet.
func stylesheet(id types.TemplateID, l layout) (string, error) {
	base, err := templateFS.ReadFile("templates/base.css")
	if err != nil {
		return "", err
	}
	own, err := templateFS.ReadFile("templates/" + string(id) + ".css")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(themeVariables(l))
	b.WriteString("\n")
	b.Write(base)
	b.WriteString("\n")
	b.Write(own)
	return b.String(), nil
}

// themeVariables renders the style settings as CSS custom properties.
// Colors that are not plain hex values fall back to the template palette.
func themeVariables(l layout) string {
	s, t := l.Settings, l.Template
	primary := "#" + themeHex(s.ThemeColor)
	if !hexColor.MatchString(strings.TrimSpace(s.ThemeColor)) {
		primary = t.Colors.Primary
	}

	align := "center"
	switch t.BasicLayout {
	case types.HeaderLeft:
		align = "left"
	case types.HeaderRight:
		align = "right"
	}

	vars := []struct{ name, value string }{
		{"primary", primary},
		{"secondary", t.Colors.Secondary},
		{"background", t.Colors.Background},
		{"text", t.Colors.Text},
		{"base-font", px(s.BaseFontSize)},
		{"header-size", px(s.HeaderSize)},
		{"subheader-size", px(s.SubheaderSize)},
		{"line-height", fmt.Sprintf("%g", s.LineHeight)},
		{"page-padding", px(s.PagePadding)},
		{"paragraph-spacing", px(s.ParagraphSpacing)},
		{"section-spacing", px(s.SectionSpacing)},
		{"section-gap", px(t.Spacing.SectionGap)},
		{"item-gap", px(t.Spacing.ItemGap)},
		{"header-align", align},
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range vars {
		fmt.Fprintf(&b, "  --%s: %s;\n", v.name, v.value)
	}
	b.WriteString("}\n")
	return b.String()
}

func px(v int) string {
	return fmt.Sprintf("%dpx", v)
}

func pageTitle(doc *types.ResumeDocument) string {
	if name := strings.TrimSpace(doc.Basic.Name); name != "" {
		return name
	}
	return doc.Title
}
