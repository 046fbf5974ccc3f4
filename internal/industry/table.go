// Package industry holds the per-industry persona table and the LLM-backed
// detection of a document's industry, job function and seniority.
package industry

import (
	"slices"

	"github.com/jonathan/resume-agent/internal/types"
)

// Example is one worked before/after rewrite.
type Example struct {
	Before string
	After  string
}

// Profile is the derived personalization for one industry.
type Profile struct {
	Persona  string
	Metrics  []string
	Verbs    []string
	Examples []Example
}

// Table maps every industry key to its profile. It is built once and never
// mutated; Lookup hands out copies.
type Table struct {
	profiles map[types.Industry]Profile
}

// Lookup returns the profile for ind. Unknown industries resolve to general.
func (t *Table) Lookup(ind types.Industry) Profile {
	p, ok := t.profiles[ind]
	if !ok {
		p = t.profiles[types.IndustryGeneral]
	}
	return Profile{
		Persona:  p.Persona,
		Metrics:  slices.Clone(p.Metrics),
		Verbs:    slices.Clone(p.Verbs),
		Examples: slices.Clone(p.Examples),
	}
}

// Has reports whether ind is a key of the table.
func (t *Table) Has(ind types.Industry) bool {
	_, ok := t.profiles[ind]
	return ok
}

// Industries returns the table keys in canonical order.
func (t *Table) Industries() []types.Industry {
	var out []types.Industry
	for _, ind := range types.AllIndustries() {
		if t.Has(ind) {
			out = append(out, ind)
		}
	}
	return out
}

// DefaultTable builds the built-in table covering every types.Industry.
func DefaultTable() *Table {
	return &Table{profiles: map[types.Industry]Profile{
		types.IndustryTechnology: {
			Persona: "你是一位在顶级互联网公司工作十年的技术招聘负责人，熟悉后端、前端、数据与基础设施岗位的用人标准。",
			Metrics: []string{"QPS/并发量", "响应延迟", "系统可用性", "成本节省", "用户规模", "上线周期"},
			Verbs:   []string{"主导", "设计", "重构", "优化", "落地", "搭建"},
			Examples: []Example{
				{Before: "负责公司后台系统开发", After: "主导订单后台微服务重构，接口 P99 延迟从 800ms 降至 120ms，支撑日均 500 万订单"},
				{Before: "做了一些性能优化", After: "优化 MySQL 慢查询与缓存策略，数据库 CPU 占用下降 40%"},
			},
		},
		types.IndustryFinance: {
			Persona: "你是一位投行与资管领域的资深招聘总监，重视风险意识、合规与可量化的业绩贡献。",
			Metrics: []string{"管理资产规模", "收益率", "风险敞口", "交易量", "成本节约", "审计问题数"},
			Verbs:   []string{"分析", "评估", "建模", "执行", "管控", "优化"},
			Examples: []Example{
				{Before: "参与投资项目分析", After: "独立完成 3 个 Pre-IPO 项目的财务建模与估值，协助完成 2 亿元投资决策"},
			},
		},
		types.IndustryHealthcare: {
			Persona: "你是一位医疗健康行业的人力资源专家，关注临床质量、患者安全和合规。",
			Metrics: []string{"患者数量", "治愈率/满意度", "不良事件率", "床位周转", "合规通过率"},
			Verbs:   []string{"诊治", "协调", "改进", "管理", "培训", "监测"},
			Examples: []Example{
				{Before: "负责病房护理工作", After: "负责 40 床位病区护理管理，推行交接班标准化，护理差错率下降 30%"},
			},
		},
		types.IndustryEducation: {
			Persona: "你是一位教育行业的资深校长兼招聘顾问，重视教学成果、课程建设和学生发展。",
			Metrics: []string{"学生人数", "升学率/通过率", "课程满意度", "课程数量", "获奖数量"},
			Verbs:   []string{"设计", "讲授", "辅导", "开发", "组织", "评估"},
			Examples: []Example{
				{Before: "教高中数学", After: "讲授高二数学 3 个班共 150 名学生，所带班级高考平均分提升 12 分"},
			},
		},
		types.IndustryManufacturing: {
			Persona: "你是一位制造业工厂总经理，熟悉精益生产、质量体系与供应链管理。",
			Metrics: []string{"良品率", "产能/OEE", "单位成本", "交付准时率", "库存周转"},
			Verbs:   []string{"改善", "导入", "管控", "优化", "推动", "降低"},
			Examples: []Example{
				{Before: "负责产线改进", After: "导入精益生产与 SMED 快速换模，产线 OEE 由 65% 提升至 82%"},
			},
		},
		types.IndustryConsulting: {
			Persona: "你是一位顶级战略咨询公司的合伙人，重视结构化思维、客户影响力和商业成果。",
			Metrics: []string{"项目金额", "客户收益", "成本节约", "交付项目数", "客户满意度"},
			Verbs:   []string{"诊断", "制定", "推动", "访谈", "提炼", "交付"},
			Examples: []Example{
				{Before: "参与客户咨询项目", After: "主导零售客户供应链诊断，提出 12 项改进举措，预计年节约成本 3000 万元"},
			},
		},
		types.IndustryMarketing: {
			Persona: "你是一位消费品牌的市场总监，关注品牌影响力、增长数据和投放回报。",
			Metrics: []string{"曝光量", "转化率", "ROI", "粉丝增长", "GMV", "获客成本"},
			Verbs:   []string{"策划", "执行", "增长", "运营", "打造", "提升"},
			Examples: []Example{
				{Before: "负责公众号运营", After: "运营品牌公众号，半年粉丝从 2 万增长至 15 万，单篇最高阅读 10 万+"},
			},
		},
		types.IndustryRetail: {
			Persona: "你是一位连锁零售企业的区域运营总监，重视门店业绩、客户体验和团队管理。",
			Metrics: []string{"销售额", "同店增长", "客单价", "库存周转", "会员数量"},
			Verbs:   []string{"管理", "提升", "拓展", "培训", "优化", "达成"},
			Examples: []Example{
				{Before: "管理门店", After: "管理 15 人门店团队，年销售额 1200 万元，同比增长 25%"},
			},
		},
		types.IndustryLegal: {
			Persona: "你是一位律所高级合伙人，重视专业领域深度、案件成果和风险控制。",
			Metrics: []string{"案件数量", "胜诉率", "标的金额", "合同审阅量", "合规项目数"},
			Verbs:   []string{"代理", "起草", "审查", "谈判", "论证", "合规"},
			Examples: []Example{
				{Before: "处理合同纠纷", After: "代理 20 余起商事合同纠纷，涉案标的累计 1.5 亿元，胜诉及调解率 85%"},
			},
		},
		types.IndustryGovernment: {
			Persona: "你是一位公共部门的人事主管，重视政策执行、服务成效和廉洁合规。",
			Metrics: []string{"服务人数", "办结率", "预算规模", "政策覆盖面", "满意度"},
			Verbs:   []string{"统筹", "落实", "推进", "协调", "起草", "监督"},
			Examples: []Example{
				{Before: "负责窗口服务", After: "统筹政务服务窗口改革，平均办理时长由 3 天缩短至 1 天，群众满意度 98%"},
			},
		},
		types.IndustryGeneral: {
			Persona: "你是一位资深 HR 和职业规划顾问，擅长把普通的经历描述改写为专业、量化、有说服力的简历内容。",
			Metrics: []string{"效率提升", "成本节约", "收入增长", "项目规模", "团队规模"},
			Verbs:   []string{"负责", "主导", "推动", "完成", "优化", "协调"},
			Examples: []Example{
				{Before: "负责日常工作", After: "主导部门流程优化，处理效率提升 30%，年节约人力成本 20 万元"},
			},
		},
	}}
}
