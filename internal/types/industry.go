package types

// Industry is one of the fixed industry keys of the persona table.
type Industry string

// Supported industries. Anything else is coerced to IndustryGeneral.
const (
	IndustryTechnology    Industry = "technology"
	IndustryFinance       Industry = "finance"
	IndustryHealthcare    Industry = "healthcare"
	IndustryEducation     Industry = "education"
	IndustryManufacturing Industry = "manufacturing"
	IndustryConsulting    Industry = "consulting"
	IndustryMarketing     Industry = "marketing"
	IndustryRetail        Industry = "retail"
	IndustryLegal         Industry = "legal"
	IndustryGovernment    Industry = "government"
	IndustryGeneral       Industry = "general"
)

// AllIndustries lists every industry key.
func AllIndustries() []Industry {
	return []Industry{
		IndustryTechnology, IndustryFinance, IndustryHealthcare, IndustryEducation,
		IndustryManufacturing, IndustryConsulting, IndustryMarketing, IndustryRetail,
		IndustryLegal, IndustryGovernment, IndustryGeneral,
	}
}

// Seniority is the detected career band.
type Seniority string

// Seniority bands.
const (
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityExecutive Seniority = "executive"
)

// Valid reports whether s is a known seniority band.
func (s Seniority) Valid() bool {
	switch s {
	case SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityExecutive:
		return true
	}
	return false
}

// IndustryContext is the detected classification of a document.
// Persona, metrics and verbs are looked up from the industry table, never stored here.
type IndustryContext struct {
	Industry    Industry  `json:"industry"`
	JobFunction string    `json:"jobFunction"`
	Seniority   Seniority `json:"seniority"`
}

// DefaultIndustryContext is used whenever detection is unavailable or fails.
func DefaultIndustryContext() IndustryContext {
	return IndustryContext{
		Industry:    IndustryGeneral,
		JobFunction: "engineering",
		Seniority:   SeniorityMid,
	}
}
