package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-evaluator/internal/types"
)

func TestCulture_ExplicitSignal(t *testing.T) {
	company := &types.CompanyProfile{
		Company:    "TechCorp",
		CultureFit: &types.CultureFit{Score: 85, Notes: []string{"Strong cultural alignment"}},
	}

	res, explicit := Culture(company)

	assert.True(t, explicit)
	assert.Equal(t, 85, res.Score)
	assert.Contains(t, res.Reasons, "culture fit assessed: 85/100")
	require.Len(t, res.Evidence, 1)
	assert.Equal(t, "company", res.Evidence[0].Source)
	assert.Equal(t, "Culture fit score: 85", res.Evidence[0].Quote)
	assert.Empty(t, res.Missing)
}

func TestCulture_FallbackWithValues(t *testing.T) {
	company := &types.CompanyProfile{
		Company:       "TechCorp",
		CultureValues: []string{"ownership", "innovation", "candour", "pace"},
	}

	res, explicit := Culture(company)

	assert.False(t, explicit)
	assert.Equal(t, 60, res.Score)
	require.Len(t, res.Evidence, 1)
	assert.Equal(t, "Values: ownership, innovation, candour", res.Evidence[0].Quote)
	assert.Contains(t, res.Reasons, "culture estimated from company values")
	assert.Empty(t, res.Missing)
}

func TestCulture_FallbackWithoutCompany(t *testing.T) {
	res, explicit := Culture(nil)

	assert.False(t, explicit)
	assert.Equal(t, 60, res.Score)
	assert.Equal(t, []string{"company_profile.culture_fit"}, res.Missing)
	assert.Contains(t, res.Reasons, "limited culture data available")
	assert.Empty(t, res.Evidence)
}

func TestCulture_FallbackCompanyWithoutSignalOrValues(t *testing.T) {
	res, explicit := Culture(&types.CompanyProfile{Company: "TechCorp"})

	assert.False(t, explicit)
	assert.Equal(t, 60, res.Score)
	assert.Equal(t, []string{"company_profile.culture_fit"}, res.Missing)
}

func TestCulture_ExplicitZeroScorePassesThrough(t *testing.T) {
	company := &types.CompanyProfile{
		Company:    "TechCorp",
		CultureFit: &types.CultureFit{Score: 0},
	}

	res, explicit := Culture(company)

	assert.True(t, explicit)
	assert.Equal(t, 0, res.Score)
}
