package document

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/types"
)

func fixedBuilder(t *testing.T, id types.TemplateID) *Builder {
	t.Helper()
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return New(id, nil,
		WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("0000000%d-aaaa-bbbb-cccc-dddddddddddd", n)
		}),
	)
}

func TestNew_Defaults(t *testing.T) {
	doc := fixedBuilder(t, types.TemplateTimeline).Build()

	assert.Equal(t, types.DocumentVersion, doc.Version)
	assert.Equal(t, types.TemplateTimeline, doc.TemplateID)
	assert.Equal(t, "简历_00000001", doc.Title)
	assert.Equal(t, "#18181b", doc.GlobalSettings.ThemeColor)
	assert.Equal(t, 16, doc.GlobalSettings.BaseFontSize)
	assert.Len(t, doc.MenuSections, 5)
	assert.NotNil(t, doc.CustomData)
	assert.Empty(t, doc.Education)
}

func TestNew_UnknownTemplateFallsBackToClassic(t *testing.T) {
	b := fixedBuilder(t, "not-a-template")
	assert.Equal(t, types.TemplateClassic, b.TemplateID())
	assert.Equal(t, "#000000", b.Build().GlobalSettings.ThemeColor)
}

func TestBuilder_Entries(t *testing.T) {
	b := fixedBuilder(t, types.TemplateClassic).
		SetBasicInfo("Jane Doe", "", "jane@example.com", "", "Berlin").
		AddEducation(EducationEntry{School: "MIT", Degree: "Bachelor", StartDate: "2014", EndDate: "2018", GPA: "3.9"}).
		AddExperience(ExperienceEntry{Company: "ACME", Position: "Engineer", Date: "2020-2022", Details: "- Shipped X\n- Led Y"}).
		AddProject(ProjectEntry{Name: "Tool", Link: "https://example.com"}).
		SetSkills("- Go\n- SQL")

	doc := b.Build()

	assert.Equal(t, "Jane Doe", doc.Basic.Name)
	assert.Equal(t, "MapPin", doc.Basic.Icons.Location)
	assert.False(t, doc.Basic.FieldOrder[1].Visible, "empty title is hidden")
	assert.True(t, doc.Basic.FieldOrder[2].Visible)

	require.Len(t, doc.Education, 1)
	require.Len(t, doc.Experience, 1)
	require.Len(t, doc.Projects, 1)
	assert.True(t, doc.Experience[0].Visible)
	assert.Equal(t, `<ul class="custom-list">`+"\n<li><p>Shipped X</p></li>\n<li><p>Led Y</p></li>\n</ul>", doc.Experience[0].Details)
	assert.Contains(t, doc.SkillContent, "<li><p>Go</p></li>")

	ids := map[string]bool{doc.ID: true}
	for _, id := range []string{doc.Education[0].ID, doc.Experience[0].ID, doc.Projects[0].ID} {
		assert.False(t, ids[id], "identifier %s reused", id)
		ids[id] = true
	}
}

func TestBuild_StampsUpdatedAtAndSnapshots(t *testing.T) {
	b := fixedBuilder(t, types.TemplateClassic)
	first := b.Build()
	assert.True(t, first.UpdatedAt.After(first.CreatedAt))

	b.AddExperience(ExperienceEntry{Company: "Later"})
	assert.Empty(t, first.Experience, "earlier snapshot must not change")

	second := b.Build()
	assert.Len(t, second.Experience, 1)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestSetGlobalSettings_Overrides(t *testing.T) {
	color := "#ff0000"
	doc := fixedBuilder(t, types.TemplateModern).
		SetGlobalSettings(&types.SettingsOverrides{ThemeColor: &color}).
		Build()
	assert.Equal(t, "#ff0000", doc.GlobalSettings.ThemeColor)
	assert.Equal(t, 18, doc.GlobalSettings.HeaderSize)
}
