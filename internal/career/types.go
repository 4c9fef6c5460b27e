package career

// SalaryRange is a role's compensation band.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Avg      int    `json:"avg"`
	Currency string `json:"currency"`
}

// ExperienceBand is the experience requirement for a role.
type ExperienceBand string

const (
	ExperienceEntry  ExperienceBand = "entry"
	ExperienceMid    ExperienceBand = "mid"
	ExperienceSenior ExperienceBand = "senior"
)

// RoleProfile is one career in the catalogue. Static reference data,
// read-only at scoring time.
type RoleProfile struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Salary SalaryRange `json:"salary"`

	// Demand is a 0-100 market demand score; Growth is the annualized
	// growth rate in percent. Both are static catalogue facts.
	Demand int     `json:"demand"`
	Growth float64 `json:"growth"`

	TechnicalSkills    []string `json:"technicalSkills"`
	InterpersonalSkill []string `json:"interpersonalSkills"`
	Tooling            []string `json:"tooling"`

	Experience ExperienceBand `json:"experience"`
	Education  []string       `json:"education"`
	Employers  []string       `json:"employers"`
	Industries []string       `json:"industries"`
	Remote     bool           `json:"remote"`

	// Criteria maps trait-question IDs to the rating this role expects,
	// on the same scale as submitted ratings. A role's criteria cover
	// only a subset of the trait space; absent traits contribute nothing
	// and are never penalized.
	Criteria map[string]int `json:"criteria"`
}

// Match is a RoleProfile enriched with a score and explanation. Produced
// fresh on every scoring call, never persisted.
type Match struct {
	RoleProfile

	// MatchScore is the normalized match percentage, clamped to [0,100].
	MatchScore int `json:"matchScore"`

	// MatchReasons names up to MaxReasons well-matched traits.
	MatchReasons []string `json:"matchReasons"`

	// LearningPath is the suggested 4-step route into the role.
	LearningPath []string `json:"learningPath"`

	// MarketInsights is a fixed set of 3 sentences built from the role's
	// static growth, salary, and the demand tier label.
	MarketInsights []string `json:"marketInsights"`
}
