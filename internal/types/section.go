package types

// SectionKind classifies a heading-delimited block of resume text.
type SectionKind string

// Section kinds. General is the catch-all for unrecognized headings.
const (
	SectionSummary      SectionKind = "summary"
	SectionExperience   SectionKind = "experience"
	SectionProjects     SectionKind = "projects"
	SectionEducation    SectionKind = "education"
	SectionSkills       SectionKind = "skills"
	SectionPersonalInfo SectionKind = "personal_info"
	SectionGeneral      SectionKind = "general"
)

// ResumeSection is one top-level block of a resume. Content includes the
// block's own heading line; EnhancedContent is filled by the rewriter.
type ResumeSection struct {
	Kind            SectionKind `json:"kind"`
	Heading         string      `json:"heading"`
	Content         string      `json:"content"`
	EnhancedContent string      `json:"enhanced_content,omitempty"`
}

// Text returns the enhanced content when present, otherwise the original.
func (s ResumeSection) Text() string {
	if s.EnhancedContent != "" {
		return s.EnhancedContent
	}
	return s.Content
}

// InputType describes how mature the submitted document already is.
type InputType string

// Input types.
const (
	InputRawText        InputType = "raw_text"
	InputMatureResume   InputType = "mature_resume"
	InputImmatureResume InputType = "immature_resume"
)
