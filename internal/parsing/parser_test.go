package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-agent/internal/document"
	"github.com/jonathan/resume-agent/internal/types"
)

func parse(t *testing.T, text, candidateName string) *types.ResumeDocument {
	t.Helper()
	n := 0
	ids := func() string {
		n++
		return "00000000-0000-0000-0000-00000000000" + string(rune('0'+n%10))
	}
	clock := func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	doc := ParseMarkdown(text, candidateName, types.TemplateClassic, nil, document.WithClock(clock), document.WithIDGenerator(ids))
	require.NotNil(t, doc)
	return doc
}

func TestInferFields_OrderIndependent(t *testing.T) {
	a := InferFields(types.SectionExperience, []string{"2020-2022", "Senior Engineer"})
	b := InferFields(types.SectionExperience, []string{"Senior Engineer", "2020-2022"})

	assert.Equal(t, a, b)
	assert.Equal(t, "Senior Engineer", a.Positional)
	assert.Equal(t, "2020-2022", a.Date)
}

func TestInferFields_Education(t *testing.T) {
	tokens := []string{"计算机科学", "2018.09 - 2022.06", "本科", "GPA: 3.8/4.0", "extra"}
	f := InferFields(types.SectionEducation, tokens)

	assert.Equal(t, "计算机科学", f.Positional)
	assert.Equal(t, "2018.09 - 2022.06", f.Date)
	assert.Equal(t, "本科", f.Degree)
	assert.Equal(t, "3.8/4.0", f.GPA)

	en := InferFields(types.SectionEducation, []string{"Bachelor of Science", "Computer Science", "2019", "3.9/4.0"})
	assert.Equal(t, "Bachelor of Science", en.Degree)
	assert.Equal(t, "Computer Science", en.Positional)
	assert.Equal(t, "2019", en.Date)
	assert.Equal(t, "3.9/4.0", en.GPA)
}

func TestInferFields_DegreeOnlyForEducation(t *testing.T) {
	f := InferFields(types.SectionExperience, []string{"Master Builder", "2021 - Present"})
	assert.Equal(t, "Master Builder", f.Positional)
	assert.Empty(t, f.Degree)
	assert.Equal(t, "2021 - Present", f.Date)
}

func TestInferFields_ProjectLink(t *testing.T) {
	f := InferFields(types.SectionProjects, []string{"https://github.com/x/y", "负责人", "2023"})
	assert.Equal(t, "https://github.com/x/y", f.Link)
	assert.Equal(t, "负责人", f.Positional)
	assert.Equal(t, "2023", f.Date)
}

func TestSplitDateRange(t *testing.T) {
	tests := []struct {
		token      string
		start, end string
	}{
		{"2018-2022", "2018", "2022"},
		{"2019", "2019", ""},
		{"2018.09 - 2022.06", "2018.09", "2022.06"},
		{"2020–至今", "2020", "至今"},
		{"2021 — Present", "2021", "Present"},
		{"2017/09~2021/06", "2017/09", "2021/06"},
		{"2016 to 2020", "2016", "2020"},
		{"Sep 2019", "Sep 2019", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			start, end := SplitDateRange(tt.token)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestParseMarkdown_EndToEndSample(t *testing.T) {
	text := "# Jane Doe\n\n## Software Engineer\n\n## Experience\n### ACME | 2020-2022 | Senior Engineer\n- Shipped X\n- Led Y"
	doc := parse(t, text, "候选人")

	assert.Equal(t, "Jane Doe", doc.Basic.Name)
	assert.Equal(t, "Software Engineer", doc.Basic.Title)
	require.Len(t, doc.Experience, 1)

	exp := doc.Experience[0]
	assert.Equal(t, "ACME", exp.Company)
	assert.Equal(t, "Senior Engineer", exp.Position)
	assert.Equal(t, "2020-2022", exp.Date)
	assert.Equal(t, []string{"Shipped X", "Led Y"}, document.HTMLToLines(exp.Details))
	assert.True(t, exp.Visible)
}

func TestParseMarkdown_FieldOrderIrrelevant(t *testing.T) {
	a := parse(t, "## Experience\n### ACME Corp | 2020-2022 | Senior Engineer", "")
	b := parse(t, "## Experience\n### ACME Corp | Senior Engineer | 2020-2022", "")

	require.Len(t, a.Experience, 1)
	require.Len(t, b.Experience, 1)
	for _, e := range []types.Experience{a.Experience[0], b.Experience[0]} {
		assert.Equal(t, "ACME Corp", e.Company)
		assert.Equal(t, "Senior Engineer", e.Position)
		assert.Equal(t, "2020-2022", e.Date)
	}
}

func TestParseMarkdown_CandidateNameFallback(t *testing.T) {
	doc := parse(t, "## 工作经历\n### A公司 | 2020", "张三")
	assert.Equal(t, "张三", doc.Basic.Name)
}

func TestParseMarkdown_ContactLine(t *testing.T) {
	text := "# 张三\n邮箱：zhang@example.com | 电话：138-0000-0000 | 地址：北京\n## 教育经历\n### 清华大学 | 本科 | 计算机科学 | 2018-2022\n- GPA 前 5%"
	doc := parse(t, text, "")

	assert.Equal(t, "zhang@example.com", doc.Basic.Email)
	assert.Equal(t, "138-0000-0000", doc.Basic.Phone)
	assert.Equal(t, "北京", doc.Basic.Location)

	require.Len(t, doc.Education, 1)
	edu := doc.Education[0]
	assert.Equal(t, "清华大学", edu.School)
	assert.Equal(t, "本科", edu.Degree)
	assert.Equal(t, "计算机科学", edu.Major)
	assert.Equal(t, "2018", edu.StartDate)
	assert.Equal(t, "2022", edu.EndDate)
	assert.Contains(t, edu.Description, "GPA 前 5%")
}

func TestParseMarkdown_UnlabelledContacts(t *testing.T) {
	doc := parse(t, "# Jane\n- jane@x.io | +1 415 555 0100 | San Francisco", "")
	assert.Equal(t, "jane@x.io", doc.Basic.Email)
	assert.Equal(t, "+1 415 555 0100", doc.Basic.Phone)
	assert.Equal(t, "San Francisco", doc.Basic.Location)
}

func TestParseMarkdown_PersonalInfoSection(t *testing.T) {
	doc := parse(t, "# Jane\n## 基本信息\n- 邮箱: jane@x.io\n- 手机: 13800000000\n## 专业技能\n- golang", "")
	assert.Equal(t, "jane@x.io", doc.Basic.Email)
	assert.Equal(t, "13800000000", doc.Basic.Phone)
	assert.Contains(t, doc.SkillContent, "Go")
}

func TestParseMarkdown_TwoLineEntry(t *testing.T) {
	text := "## 项目经历\n### 推荐系统\n- 负责人 | 2023 | https://example.com/rec\n- 设计召回模块\n### 搜索优化\n负责索引重建\n- 查询延迟降低 30%"
	doc := parse(t, text, "")

	require.Len(t, doc.Projects, 2)
	first := doc.Projects[0]
	assert.Equal(t, "推荐系统", first.Name)
	assert.Equal(t, "负责人", first.Role)
	assert.Equal(t, "2023", first.Date)
	assert.Equal(t, "https://example.com/rec", first.Link)
	assert.Equal(t, []string{"设计召回模块"}, document.HTMLToLines(first.Description))

	second := doc.Projects[1]
	assert.Equal(t, "搜索优化", second.Name)
	assert.Empty(t, second.Role)
	assert.Equal(t, []string{"负责索引重建", "查询延迟降低 30%"}, document.HTMLToLines(second.Description))
}

func TestParseMarkdown_BoldEntries(t *testing.T) {
	text := "## 工作经历\n**A公司 | 2019-2021 | 工程师**\n- 做了 A\n**B公司 | 高级工程师 | 2021-至今**\n- 做了 B"
	doc := parse(t, text, "")

	require.Len(t, doc.Experience, 2)
	assert.Equal(t, "A公司", doc.Experience[0].Company)
	assert.Equal(t, "工程师", doc.Experience[0].Position)
	assert.Equal(t, "B公司", doc.Experience[1].Company)
	assert.Equal(t, "高级工程师", doc.Experience[1].Position)
	assert.Equal(t, "2021-至今", doc.Experience[1].Date)
	assert.Equal(t, []string{"做了 B"}, document.HTMLToLines(doc.Experience[1].Details))
}

func TestParseMarkdown_ProjectsBeforeExperience(t *testing.T) {
	doc := parse(t, "## 项目经历\n### P | 2020\n## 实习经历\n### Q | 2021", "")
	require.Len(t, doc.Projects, 1)
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "P", doc.Projects[0].Name)
	assert.Equal(t, "Q", doc.Experience[0].Company)
}

func TestParseMarkdown_SkillsCollectEveryLine(t *testing.T) {
	doc := parse(t, "## 专业技能\n编程语言：golang、python\n- 数据库: mysql\n\n### 语言\n英语 CET-6", "")
	assert.Contains(t, doc.SkillContent, "<p>编程语言：Go、Python</p>")
	assert.Contains(t, doc.SkillContent, "<li><p>数据库: MySQL</p></li>")
	assert.Contains(t, doc.SkillContent, "<strong>语言</strong>")
	assert.Contains(t, doc.SkillContent, "英语 CET-6")
}

func TestParseMarkdown_SummaryNotEntries(t *testing.T) {
	doc := parse(t, "## 个人简介\n### 不是条目\n五年后端经验", "")
	assert.Empty(t, doc.Experience)
	assert.Empty(t, doc.Projects)
	assert.Empty(t, doc.Education)
}

func TestParseMarkdown_ProseIsNotContact(t *testing.T) {
	text := "# Jane Doe\n## Software Engineer\nExcellent communicator, formerly at Intel\njane@x.com | Phone: 123-456-7890\n## Experience\n### ACME | 2020"
	doc := parse(t, text, "")

	assert.Equal(t, "jane@x.com", doc.Basic.Email)
	assert.Equal(t, "123-456-7890", doc.Basic.Phone)
	assert.Empty(t, doc.Basic.Location)
}

func TestParseMarkdown_ContactSectionProse(t *testing.T) {
	doc := parse(t, "# Jane\n## Contact\nCell phone enthusiast, excellent writer\nLocation: Berlin", "")
	assert.Equal(t, "Berlin", doc.Basic.Location)
	assert.Empty(t, doc.Basic.Phone)
}

func TestParseMarkdown_LabelledLocationWins(t *testing.T) {
	doc := parse(t, "# Jane\njane@x.io | Remote | https://github.com/jane\nLocation: Berlin", "")
	assert.Equal(t, "jane@x.io", doc.Basic.Email)
	assert.Equal(t, "Berlin", doc.Basic.Location)
}

func TestIsContactLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"jane@x.io", true},
		{"Phone: 123", true},
		{"Tel 138 0000 0000", true},
		{"手机：13800000000", true},
		{"Excellent communicator, formerly at Intel", false},
		{"Cell phone enthusiast, excellent writer", false},
		{"Scaled capacity 10x", false},
		{"Gmail-free since 2010", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, isContactLine(tt.line))
		})
	}
}

func TestParseMarkdown_UnmarkedEntries(t *testing.T) {
	text := "## Experience\nACME | Senior Engineer | 2020-2022\n- Shipped X\nGlobex | Staff Engineer | 2022-2024\n- Led Y"
	doc := parse(t, text, "")

	require.Len(t, doc.Experience, 2)
	assert.Equal(t, "ACME", doc.Experience[0].Company)
	assert.Equal(t, "Senior Engineer", doc.Experience[0].Position)
	assert.Equal(t, []string{"Shipped X"}, document.HTMLToLines(doc.Experience[0].Details))
	assert.Equal(t, "Globex", doc.Experience[1].Company)
	assert.Equal(t, "2022-2024", doc.Experience[1].Date)
	assert.Equal(t, []string{"Led Y"}, document.HTMLToLines(doc.Experience[1].Details))
}

func TestParseMarkdown_BoldNameEntries(t *testing.T) {
	text := "## Experience\n**ACME** | Senior Engineer | 2020-2022\n- Shipped X\n**Globex** | Staff Engineer | 2022-2024\n- Led Y"
	doc := parse(t, text, "")

	require.Len(t, doc.Experience, 2)
	assert.Equal(t, "ACME", doc.Experience[0].Company)
	assert.Equal(t, "2020-2022", doc.Experience[0].Date)
	assert.Equal(t, "Globex", doc.Experience[1].Company)
	assert.Equal(t, "Staff Engineer", doc.Experience[1].Position)
}

func TestParseMarkdown_TechnicalLeadTitle(t *testing.T) {
	doc := parse(t, "# Jane\n## Technical Lead\n## Skills\n- golang", "")
	assert.Equal(t, "Technical Lead", doc.Basic.Title)
	assert.Contains(t, doc.SkillContent, "Go")
}
