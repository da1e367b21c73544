package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRequest = `{
	"job_spec": {
		"role_title": "Senior Python Engineer",
		"seniority": "senior",
		"tech_stack": ["python", "postgres"],
		"must_have_hard_skills": ["python"],
		"experience_requirements": {"years_min": 5},
		"location": {"type": "hybrid", "cities": ["London"]},
		"salary_range": {"currency": "GBP", "min": 80000, "max": 120000, "period": "year"}
	},
	"candidate_profile": {
		"name": "Alex Smith",
		"years_experience": 7,
		"skills": ["python", "postgres"]
	},
	"company_profile": {
		"name": "TechCorp",
		"culture_fit": {"score": 85, "notes": ["Strong cultural alignment"]}
	}
}`

func TestValidateMatchRequest_Valid(t *testing.T) {
	err := ValidateMatchRequest([]byte(validRequest))

	assert.NoError(t, err)
}

func TestValidateMatchRequest_MissingRoleTitle(t *testing.T) {
	doc := `{
		"job_spec": {"seniority": "senior"},
		"candidate_profile": {"name": "Alex Smith"}
	}`

	err := ValidateMatchRequest([]byte(doc))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "role_title")
}

func TestValidateMatchRequest_MissingCandidateProfile(t *testing.T) {
	doc := `{"job_spec": {"role_title": "Engineer"}}`

	err := ValidateMatchRequest([]byte(doc))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "candidate_profile")
}

func TestValidateMatchRequest_CultureFitScoreOutOfRange(t *testing.T) {
	doc := `{
		"job_spec": {"role_title": "Engineer"},
		"candidate_profile": {"name": "Alex Smith"},
		"company_profile": {"name": "TechCorp", "culture_fit": {"score": 150}}
	}`

	err := ValidateMatchRequest([]byte(doc))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "score")
}

func TestValidateMatchRequest_WrongType(t *testing.T) {
	doc := `{
		"job_spec": {"role_title": "Engineer", "tech_stack": "python"},
		"candidate_profile": {"name": "Alex Smith"}
	}`

	err := ValidateMatchRequest([]byte(doc))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "tech_stack")
}

func TestValidateMatchRequest_BadLocationType(t *testing.T) {
	doc := `{
		"job_spec": {"role_title": "Engineer", "location": {"type": "moon-base"}},
		"candidate_profile": {"name": "Alex Smith"}
	}`

	err := ValidateMatchRequest([]byte(doc))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateMatchRequest_InvalidJSON(t *testing.T) {
	err := ValidateMatchRequest([]byte(`{"job_spec": `))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "(root)", ve.Errors[0].Field)
}

func TestValidateMatchRequest_CompanyDetailsList(t *testing.T) {
	doc := `{
		"job_spec": {"role_title": "Engineer"},
		"candidate_profile": {"name": "Alex Smith"},
		"company_details": [{"name": "TechCorp"}, {"name": "OtherCorp"}]
	}`

	err := ValidateMatchRequest([]byte(doc))

	assert.NoError(t, err)
}
