package types

// CompanyProfile represents structured facts about the hiring company,
// including an optional pre-computed culture-fit signal from the
// company-research collaborator.
type CompanyProfile struct {
	Company          string       `json:"name" validate:"required,min=1"`
	Industry         string       `json:"industry,omitempty"`
	Locations        []string     `json:"locations,omitempty"`
	CultureValues    []string     `json:"culture_values,omitempty"`
	TechStack        []string     `json:"tech_stack,omitempty"`
	SalaryBenchmarks *SalaryRange `json:"salary_benchmarks,omitempty"`
	CultureFit       *CultureFit  `json:"culture_fit,omitempty"`
}

// CultureFit is the authoritative culture signal when present. Its score is
// the only external input passed through verbatim as a subscore.
type CultureFit struct {
	Score int      `json:"score" validate:"gte=0,lte=100"`
	Notes []string `json:"notes,omitempty"`
}
