package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		heading string
		want    types.SectionKind
	}{
		{"Experience", types.SectionExperience},
		{"Work Experience", types.SectionExperience},
		{"工作经历", types.SectionExperience},
		{"实习经历", types.SectionExperience},
		{"项目经历", types.SectionProjects},
		{"Projects", types.SectionProjects},
		{"教育经历", types.SectionEducation},
		{"Education", types.SectionEducation},
		{"专业技能", types.SectionSkills},
		{"Technical Skills", types.SectionSkills},
		{"Technical Expertise", types.SectionSkills},
		{"Technical Lead", types.SectionGeneral},
		{"Summary", types.SectionSummary},
		{"个人简介", types.SectionSummary},
		{"Contact", types.SectionPersonalInfo},
		{"基本信息", types.SectionPersonalInfo},
		{"Software Engineer", types.SectionGeneral},
		{"Network Engineer", types.SectionGeneral},
		{"Jane Doe", types.SectionGeneral},
		{"", types.SectionGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.heading))
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	level, text := HeadingLevel("## Experience ")
	assert.Equal(t, 2, level)
	assert.Equal(t, "Experience", text)

	level, _ = HeadingLevel("### ACME | 2020")
	assert.Equal(t, 3, level)

	level, _ = HeadingLevel("#hashtag")
	assert.Equal(t, 0, level)

	level, _ = HeadingLevel("plain")
	assert.Equal(t, 0, level)

	assert.True(t, IsTopLevel("# Jane"))
	assert.True(t, IsTopLevel("## Skills"))
	assert.False(t, IsTopLevel("### ACME"))
	assert.False(t, IsTopLevel("##"))
}

func TestSplit_NoHeadings(t *testing.T) {
	text := "just some text\nmore text"
	got := Split(text)
	require.Len(t, got, 1)
	assert.Equal(t, types.SectionGeneral, got[0].Kind)
	assert.Equal(t, text, got[0].Content)
	assert.Empty(t, got[0].Heading)
}

func TestSplit_PreambleAndSections(t *testing.T) {
	text := "intro line\n# Jane Doe\n## Experience\n### ACME | 2020\n- Did things\n## 项目经历\n- p1"
	got := Split(text)
	require.Len(t, got, 4)

	assert.Equal(t, types.SectionGeneral, got[0].Kind)
	assert.Equal(t, "intro line", got[0].Content)

	assert.Equal(t, "Jane Doe", got[1].Heading)
	assert.Equal(t, types.SectionGeneral, got[1].Kind)

	assert.Equal(t, types.SectionExperience, got[2].Kind)
	assert.Equal(t, "## Experience\n### ACME | 2020\n- Did things", got[2].Content)

	assert.Equal(t, types.SectionProjects, got[3].Kind)
}

func TestSplit_EveryLineBelongsToOneSection(t *testing.T) {
	text := "# A\nline1\n\n## Skills\n- Go\n## Education\nMIT"
	var rebuilt []string
	for _, s := range Split(text) {
		rebuilt = append(rebuilt, s.Content)
	}
	assert.Equal(t, text, strings.Join(rebuilt, "\n"))
}

func TestSplit_HeadingSequencePreserved(t *testing.T) {
	text := "# Jane Doe\n## Software Engineer\n\n\n## Experience\n### ACME\n## Skills\n- Go"
	var headings []string
	for _, s := range Split(text) {
		if s.Heading != "" {
			headings = append(headings, s.Heading)
		}
	}
	assert.Equal(t, []string{"Jane Doe", "Software Engineer", "Experience", "Skills"}, headings)
}

func TestHasBody(t *testing.T) {
	assert.False(t, HasBody(types.ResumeSection{Content: "# Jane Doe\n\n"}))
	assert.True(t, HasBody(types.ResumeSection{Content: "## Skills\n- Go"}))
	assert.True(t, HasBody(types.ResumeSection{Content: "## Experience\n### ACME"}))
}
