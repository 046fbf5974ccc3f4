package types

// TemplateID identifies one of the fixed visual templates.
type TemplateID string

// Supported templates.
const (
	TemplateClassic   TemplateID = "classic"
	TemplateModern    TemplateID = "modern"
	TemplateLeftRight TemplateID = "left-right"
	TemplateTimeline  TemplateID = "timeline"
)

// DefaultTemplate is used whenever a template identifier is missing or unknown.
const DefaultTemplate = TemplateClassic

// HeaderLayout is the alignment hint for the identity block.
type HeaderLayout string

// Header alignments.
const (
	HeaderCenter HeaderLayout = "center"
	HeaderLeft   HeaderLayout = "left"
	HeaderRight  HeaderLayout = "right"
)

// ColorScheme is a template palette.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Spacing holds template spacing constants in pixels.
type Spacing struct {
	SectionGap     int `json:"sectionGap"`
	ItemGap        int `json:"itemGap"`
	ContentPadding int `json:"contentPadding"`
}

// TemplateSpec is the static configuration of a template.
type TemplateSpec struct {
	ID          TemplateID   `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Colors      ColorScheme  `json:"colorScheme"`
	Spacing     Spacing      `json:"spacing"`
	BasicLayout HeaderLayout `json:"basicLayout"`
}

// AllTemplates lists the template identifiers in catalogue order.
func AllTemplates() []TemplateID {
	return []TemplateID{TemplateClassic, TemplateModern, TemplateLeftRight, TemplateTimeline}
}

// ParseTemplateID reports whether s names a supported template.
func ParseTemplateID(s string) (TemplateID, bool) {
	id := TemplateID(s)
	switch id {
	case TemplateClassic, TemplateModern, TemplateLeftRight, TemplateTimeline:
		return id, true
	default:
		return DefaultTemplate, false
	}
}

// Spec returns the static configuration for id. Unknown identifiers
// resolve to the classic template.
func (id TemplateID) Spec() TemplateSpec {
	switch id {
	case TemplateModern:
		return TemplateSpec{
			ID:          TemplateModern,
			Name:        "两栏布局",
			Description: "经典两栏，突出个人特色",
			Colors:      ColorScheme{Primary: "#000000", Secondary: "#6b7280", Background: "#ffffff", Text: "#212529"},
			Spacing:     Spacing{SectionGap: 20, ItemGap: 20, ContentPadding: 1},
			BasicLayout: HeaderCenter,
		}
	case TemplateLeftRight:
		return TemplateSpec{
			ID:          TemplateLeftRight,
			Name:        "模块标题背景色",
			Description: "模块标题背景鲜明，突出美观特色",
			Colors:      ColorScheme{Primary: "#000000", Secondary: "#9ca3af", Background: "#ffffff", Text: "#212529"},
			Spacing:     Spacing{SectionGap: 24, ItemGap: 16, ContentPadding: 32},
			BasicLayout: HeaderLeft,
		}
	case TemplateTimeline:
		return TemplateSpec{
			ID:          TemplateTimeline,
			Name:        "时间线风格",
			Description: "时间线布局，突出经历的时间顺序",
			Colors:      ColorScheme{Primary: "#18181b", Secondary: "#64748b", Background: "#ffffff", Text: "#212529"},
			Spacing:     Spacing{SectionGap: 1, ItemGap: 12, ContentPadding: 24},
			BasicLayout: HeaderRight,
		}
	default:
		return TemplateSpec{
			ID:          TemplateClassic,
			Name:        "经典模板",
			Description: "传统简约的简历布局，适合大多数求职场景",
			Colors:      ColorScheme{Primary: "#000000", Secondary: "#4b5563", Background: "#ffffff", Text: "#212529"},
			Spacing:     Spacing{SectionGap: 24, ItemGap: 16, ContentPadding: 32},
			BasicLayout: HeaderCenter,
		}
	}
}
