package types

// MatchRequest is the single request object the engine is invoked with.
// Company data may arrive either as company_profile or as company_details,
// a list of candidate company profiles.
type MatchRequest struct {
	JobSpec          JobSpec          `json:"job_spec"`
	CandidateProfile CandidateProfile `json:"candidate_profile"`
	CompanyProfile   *CompanyProfile  `json:"company_profile,omitempty"`
	CompanyDetails   []CompanyProfile `json:"company_details,omitempty"`
}

// Company resolves the effective company profile for scoring.
// company_profile wins over company_details when both are present; only the
// first company_details element is ever used. Returns nil when no company
// data was supplied.
func (r *MatchRequest) Company() *CompanyProfile {
	if r.CompanyProfile != nil {
		return r.CompanyProfile
	}
	if len(r.CompanyDetails) > 0 {
		return &r.CompanyDetails[0]
	}
	return nil
}
