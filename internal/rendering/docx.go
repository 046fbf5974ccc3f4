package rendering

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-agent/internal/types"
)

const (
	docxFont = "微软雅黑"

	// Page geometry in twentieths of a point: A4, 1.0cm top/bottom and
	// 1.27cm left/right margins.
	pageWidth    = 11906
	pageHeight   = 16838
	marginTop    = 567
	marginSide   = 720
	contentWidth = pageWidth - 2*marginSide

	grayDate = "646464"
	grayGPA  = "505050"
	grayText = "646464"
)

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

type alignment string

const (
	alignLeft   alignment = "left"
	alignCenter alignment = "center"
	alignRight  alignment = "right"
)

// para describes one paragraph. Sizes and spacing are in points.
type para struct {
	size         float64
	bold         bool
	color        string
	align        alignment
	before       float64
	after        float64
	lineSpacing  float64
	bottomBorder bool
}

// docxWriter accumulates WordprocessingML body content.
type docxWriter struct {
	settings types.GlobalSettings
	theme    string
	align    alignment
	body     strings.Builder
}

// RenderWord builds a .docx package following the document's menu order.
// Hidden entries and disabled sections are left out.
func RenderWord(doc *types.ResumeDocument, templateID types.TemplateID) ([]byte, error) {
	id, _ := types.ParseTemplateID(string(templateID))
	l := buildLayout(doc, id)

	w := &docxWriter{
		settings: l.Settings,
		theme:    themeHex(l.Settings.ThemeColor),
		align:    headerAlignment(l.Template.BasicLayout),
	}
	for _, s := range l.Sections {
		w.section(s)
	}

	data, err := w.pack()
	if err != nil {
		return nil, &RenderError{Encoding: EncodingWord, Message: "failed to write package", Cause: err}
	}
	return data, nil
}

func (w *docxWriter) px(v int) float64 {
	return PxToPt(float64(v))
}

func (w *docxWriter) section(s sectionView) {
	switch s.ID {
	case types.MenuBasic:
		w.header(*s.Header)
	case types.MenuEducation, types.MenuExperience, types.MenuProjects:
		w.sectionTitle(s.Title)
		for _, e := range s.Entries {
			w.entry(e)
		}
	case types.MenuSkills:
		w.sectionTitle(s.Title)
		for _, line := range s.Lines {
			w.listItem(line)
		}
	}
}

func (w *docxWriter) header(h headerView) {
	base := w.px(w.settings.BaseFontSize)
	if h.Name != "" {
		w.paragraph(h.Name, para{
			size:  w.px(w.settings.HeaderSize) * 1.3,
			bold:  true,
			color: w.theme,
			align: w.align,
			after: 1,
		})
	}
	if h.Title != "" {
		w.paragraph(h.Title, para{size: base, color: grayText, align: w.align, after: 2})
	}
	if len(h.Contacts) > 0 {
		w.paragraph(strings.Join(h.Contacts, headerSep), para{size: base * 0.85, align: w.align, after: 4})
	}
}

func (w *docxWriter) sectionTitle(title string) {
	w.paragraph(title, para{
		size:         w.px(w.settings.HeaderSize),
		bold:         true,
		color:        w.theme,
		before:       4,
		after:        1,
		bottomBorder: true,
	})
}

func (w *docxWriter) entry(e entryView) {
	w.itemHeader(e.Title, e.Date)
	small := w.px(w.settings.BaseFontSize) * 0.85
	if e.GPA != "" {
		w.paragraph("GPA: "+e.GPA, para{size: small, color: grayGPA})
	}
	if e.Link != "" {
		w.paragraph(e.Link, para{size: small, color: grayGPA})
	}
	for _, line := range e.Lines {
		w.listItem(line)
	}
}

// itemHeader writes a borderless two-column row when a date exists and a
// single bold line otherwise.
func (w *docxWriter) itemHeader(title, date string) {
	size := w.px(w.settings.SubheaderSize)
	if date == "" {
		w.paragraph(title, para{size: size, bold: true, before: 3})
		return
	}

	left := contentWidth * 7 / 10
	b := &w.body
	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="5000" w:type="pct"/><w:tblLayout w:type="autofit"/>`)
	b.WriteString(`<w:tblBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
		fmt.Fprintf(b, `<w:%s w:val="nil"/>`, edge)
	}
	b.WriteString(`</w:tblBorders></w:tblPr>`)
	fmt.Fprintf(b, `<w:tblGrid><w:gridCol w:w="%d"/><w:gridCol w:w="%d"/></w:tblGrid><w:tr>`, left, contentWidth-left)
	w.cell(title, para{size: size, bold: true})
	w.cell(date, para{size: size * 0.85, color: grayDate, align: alignRight})
	b.WriteString(`</w:tr></w:tbl>`)
}

func (w *docxWriter) cell(text string, p para) {
	b := &w.body
	b.WriteString(`<w:tc><w:tcPr><w:tcBorders>`)
	for _, edge := range []string{"top", "left", "bottom", "right"} {
		fmt.Fprintf(b, `<w:%s w:val="nil"/>`, edge)
	}
	b.WriteString(`</w:tcBorders></w:tcPr>`)
	w.paragraph(text, p)
	b.WriteString(`</w:tc>`)
}

func (w *docxWriter) listItem(text string) {
	w.paragraph("•  "+text, para{size: w.px(w.settings.BaseFontSize), lineSpacing: 1.0})
}

func (w *docxWriter) paragraph(text string, p para) {
	b := &w.body
	b.WriteString(`<w:p><w:pPr>`)
	if p.bottomBorder {
		fmt.Fprintf(b, `<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="%s"/></w:pBdr>`, w.theme)
	}
	fmt.Fprintf(b, `<w:spacing w:before="%d" w:after="%d"`, twips(p.before), twips(p.after))
	if p.lineSpacing > 0 {
		fmt.Fprintf(b, ` w:line="%d" w:lineRule="auto"`, int(math.Round(p.lineSpacing*240)))
	}
	b.WriteString(`/>`)
	align := p.align
	if align == "" {
		align = alignLeft
	}
	fmt.Fprintf(b, `<w:jc w:val="%s"/>`, align)
	b.WriteString(`</w:pPr><w:r><w:rPr>`)
	fmt.Fprintf(b, `<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:eastAsia="%[1]s" w:cs="%[1]s"/>`, docxFont)
	if p.bold {
		b.WriteString(`<w:b/><w:bCs/>`)
	}
	if p.color != "" {
		fmt.Fprintf(b, `<w:color w:val="%s"/>`, p.color)
	}
	fmt.Fprintf(b, `<w:sz w:val="%[1]d"/><w:szCs w:val="%[1]d"/>`, halfPoints(p.size))
	b.WriteString(`</w:rPr><w:t xml:space="preserve">`)
	_ = xml.EscapeText(b, []byte(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

// pack assembles the minimal OPC package Word needs.
func (w *docxWriter) pack() ([]byte, error) {
	parts := []struct{ name, body string }{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", w.stylesXML()},
		{"word/document.xml", w.documentXML()},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		f, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := f.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *docxWriter) documentXML() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`)
	b.WriteString(w.body.String())
	fmt.Fprintf(&b, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="0" w:footer="0" w:gutter="0"/></w:sectPr>`,
		pageWidth, pageHeight, marginTop, marginSide, marginTop, marginSide)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func (w *docxWriter) stylesXML() string {
	size := halfPoints(w.px(w.settings.BaseFontSize))
	return xml.Header + fmt.Sprintf(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
		`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:eastAsia="%[1]s" w:cs="%[1]s"/>`+
		`<w:sz w:val="%[2]d"/><w:szCs w:val="%[2]d"/></w:rPr></w:rPrDefault></w:docDefaults>`+
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`+
		`</w:styles>`, docxFont, size)
}

func twips(pt float64) int {
	return int(math.Round(pt * 20))
}

func halfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

// themeHex returns the theme color as six hex digits, black when unparseable.
func themeHex(color string) string {
	if m := hexColor.FindStringSubmatch(strings.TrimSpace(color)); m != nil {
		return strings.ToUpper(m[1])
	}
	return "000000"
}

func headerAlignment(layout types.HeaderLayout) alignment {
	switch layout {
	case types.HeaderLeft:
		return alignLeft
	case types.HeaderRight:
		return alignRight
	default:
		return alignCenter
	}
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const rootRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`</Relationships>`
