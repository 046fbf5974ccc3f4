package rendering

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jonathan/resume-agent/internal/document"
	"github.com/jonathan/resume-agent/internal/types"
)

// headerSep joins the parts of an item header and the contact line.
const headerSep = " | "

// entryView is one visible education/experience/project entry, flattened
// for display.
type entryView struct {
	Title string
	Date  string
	GPA   string
	Link  string
	Lines []string
}

// headerView is the identity block.
type headerView struct {
	Name     string
	Title    string
	Contacts []string
}

// sectionView is one enabled menu section with its displayable content.
type sectionView struct {
	ID      types.MenuSectionID
	Title   string
	Icon    string
	Header  *headerView
	Entries []entryView
	Lines   []string

	// Timeline wraps entries in connected timeline items (HTML only).
	Timeline bool
}

// layout is the render-ready view shared by the Word and HTML encodings.
type layout struct {
	Template types.TemplateSpec
	Settings types.GlobalSettings
	Header   headerView
	Sections []sectionView
}

// buildLayout walks the enabled menu sections in their declared order and
// collects only visible entries. Sections left with nothing to show are
// omitted.
func buildLayout(doc *types.ResumeDocument, id types.TemplateID) layout {
	header := headerView{
		Name:     strings.TrimSpace(doc.Basic.Name),
		Title:    strings.TrimSpace(doc.Basic.Title),
		Contacts: nonEmpty(doc.Basic.Email, doc.Basic.Phone, doc.Basic.Location),
	}
	l := layout{
		Template: id.Spec(),
		Settings: doc.GlobalSettings,
		Header:   header,
	}

	menu := slices.Clone(doc.MenuSections)
	if len(menu) == 0 {
		menu = types.DefaultMenuSections()
	}
	slices.SortStableFunc(menu, func(a, b types.MenuSection) int { return cmp.Compare(a.Order, b.Order) })

	for _, m := range menu {
		if !m.Enabled {
			continue
		}
		s := sectionView{ID: m.ID, Title: m.Title, Icon: m.Icon}
		switch m.ID {
		case types.MenuBasic:
			if header.Name == "" && header.Title == "" && len(header.Contacts) == 0 {
				continue
			}
			h := header
			s.Header = &h
		case types.MenuEducation:
			s.Entries = educationEntries(doc.Education)
		case types.MenuExperience:
			s.Entries = experienceEntries(doc.Experience)
		case types.MenuProjects:
			s.Entries = projectEntries(doc.Projects)
		case types.MenuSkills:
			s.Lines = document.HTMLToLines(doc.SkillContent)
		default:
			continue
		}
		if s.Header == nil && len(s.Entries) == 0 && len(s.Lines) == 0 {
			continue
		}
		l.Sections = append(l.Sections, s)
	}
	return l
}

func educationEntries(list []types.Education) []entryView {
	var out []entryView
	for _, e := range list {
		if !e.Visible {
			continue
		}
		out = append(out, entryView{
			Title: strings.Join(nonEmpty(e.School, e.Degree, e.Major), headerSep),
			Date:  dateRange(e.StartDate, e.EndDate),
			GPA:   strings.TrimSpace(e.GPA),
			Lines: document.HTMLToLines(e.Description),
		})
	}
	return out
}

func experienceEntries(list []types.Experience) []entryView {
	var out []entryView
	for _, e := range list {
		if !e.Visible {
			continue
		}
		out = append(out, entryView{
			Title: strings.Join(nonEmpty(e.Company, e.Position), headerSep),
			Date:  strings.TrimSpace(e.Date),
			Lines: document.HTMLToLines(e.Details),
		})
	}
	return out
}

func projectEntries(list []types.Project) []entryView {
	var out []entryView
	for _, p := range list {
		if !p.Visible {
			continue
		}
		out = append(out, entryView{
			Title: strings.Join(nonEmpty(p.Name, p.Role), headerSep),
			Date:  strings.TrimSpace(p.Date),
			Link:  strings.TrimSpace(p.Link),
			Lines: document.HTMLToLines(p.Description),
		})
	}
	return out
}

// dateRange formats an education period. A missing end leaves the start alone.
func dateRange(start, end string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " - " + end
	}
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
