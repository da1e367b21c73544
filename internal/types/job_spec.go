// Package types provides type definitions for structured data used throughout the match-evaluator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobSpec represents structured requirements for an open role, as produced
// by the role-requirements builder.
type JobSpec struct {
	RoleTitle              string         `json:"role_title" validate:"required,min=1"`
	Seniority              string         `json:"seniority,omitempty"`
	EmploymentType         string         `json:"employment_type,omitempty"`
	SalaryRange            *SalaryRange   `json:"salary_range,omitempty"`
	Location               *Location      `json:"location,omitempty"`
	TechStack              []string       `json:"tech_stack,omitempty"`
	MustHaveHardSkills     []string       `json:"must_have_hard_skills,omitempty"`
	NiceToHaveHardSkills   []string       `json:"nice_to_have_hard_skills,omitempty"`
	SoftSkills             []string       `json:"soft_skills,omitempty"`
	Industry               string         `json:"industry,omitempty"`
	DomainKnowledge        []string       `json:"domain_knowledge,omitempty"`
	CultureRequirements    []string       `json:"culture_requirements,omitempty"`
	Responsibilities       []string       `json:"responsibilities,omitempty"`
	EducationRequirements  []string       `json:"education_requirements,omitempty"`
	ExperienceRequirements *ExperienceReq `json:"experience_requirements,omitempty"`
	Keywords               []string       `json:"keywords,omitempty"`
	Benefits               []string       `json:"benefits,omitempty"`
	ScreeningQuestions     []string       `json:"screening_questions,omitempty"`
	ExtractedEvidence      []Evidence     `json:"extracted_evidence,omitempty"`
}

// ExperienceReq represents years-of-experience requirements for a role.
type ExperienceReq struct {
	YearsMin  *float64 `json:"years_min,omitempty" validate:"omitempty,gte=0"`
	YearsPref *float64 `json:"years_pref,omitempty" validate:"omitempty,gte=0"`
}

// Location represents a work-location constraint or preference.
type Location struct {
	Type   string   `json:"type,omitempty" validate:"omitempty,oneof=onsite hybrid remote"`
	Cities []string `json:"cities,omitempty"`
}

// SalaryRange represents a salary band in a given currency and period.
type SalaryRange struct {
	Currency string   `json:"currency,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Period   string   `json:"period,omitempty" validate:"omitempty,oneof=year month"`
}

// Bounded reports whether the range has both endpoints in the right order.
// Ranges with either endpoint absent are considered bounded; the scorers
// record missing data for them instead.
func (s *SalaryRange) Bounded() bool {
	if s == nil || s.Min == nil || s.Max == nil {
		return true
	}
	return *s.Min <= *s.Max
}
