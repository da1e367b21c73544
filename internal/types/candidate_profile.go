package types

// CandidateProfile represents structured facts known about a candidate.
type CandidateProfile struct {
	Name               string       `json:"name" validate:"required,min=1"`
	YearsExperience    float64      `json:"years_experience" validate:"gte=0"`
	CurrentTitle       string       `json:"current_title,omitempty"`
	Skills             []string     `json:"skills,omitempty"`
	Certifications     []string     `json:"certifications,omitempty"`
	Education          []string     `json:"education,omitempty"`
	RolesHistory       []string     `json:"roles_history,omitempty"`
	Locations          *Location    `json:"locations,omitempty"`
	SalaryExpectation  *SalaryRange `json:"salary_expectation,omitempty"`
	IndustryExperience []string     `json:"industry_experience,omitempty"`
}
