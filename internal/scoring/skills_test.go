package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/match-evaluator/internal/types"
)

func TestSkills_FullCoverage(t *testing.T) {
	job := &types.JobSpec{
		TechStack:            []string{"python", "postgres", "docker"},
		MustHaveHardSkills:   []string{"python", "postgres"},
		NiceToHaveHardSkills: []string{"docker", "kubernetes"},
	}
	candidate := &types.CandidateProfile{
		Skills: []string{"python", "postgres", "docker", "kubernetes", "react"},
	}

	res := Skills(job, candidate)

	assert.Equal(t, 100, res.Score)
	require.Len(t, res.Evidence, 1)
	assert.Equal(t, "candidate", res.Evidence[0].Source)
	assert.Equal(t, "Skills: postgres, python", res.Evidence[0].Quote)
	assert.Equal(t, "skills", res.Evidence[0].Field)
	assert.Contains(t, res.Reasons, "matches 2/2 must-have skills")
}

func TestSkills_NoCoverage(t *testing.T) {
	job := &types.JobSpec{
		MustHaveHardSkills: []string{"machine-learning", "tensorflow", "pytorch"},
	}
	candidate := &types.CandidateProfile{Skills: []string{"javascript", "react"}}

	res := Skills(job, candidate)

	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.Evidence)
	assert.Contains(t, res.Reasons, "missing 3 must-have skills: machine-learning, pytorch, tensorflow")
}

func TestSkills_PartialCoverage(t *testing.T) {
	job := &types.JobSpec{
		TechStack:            []string{"python", "postgres", "kubernetes"},
		MustHaveHardSkills:   []string{"python", "postgres"},
		NiceToHaveHardSkills: []string{"kubernetes", "docker"},
	}
	candidate := &types.CandidateProfile{Skills: []string{"python", "postgres", "java"}}

	res := Skills(job, candidate)

	// must 2/2 -> 70, nice 0/2 -> 0, tech 2/3 -> 10
	assert.Equal(t, 80, res.Score)
	assert.Contains(t, res.Reasons, "matches 2/2 must-have skills")
}

func TestSkills_SynonymsMatch(t *testing.T) {
	job := &types.JobSpec{MustHaveHardSkills: []string{"PostgreSQL", "JavaScript"}}
	candidate := &types.CandidateProfile{Skills: []string{"postgres", "JS"}}

	res := Skills(job, candidate)

	assert.Equal(t, 70, res.Score)
	assert.Contains(t, res.Reasons, "matches 2/2 must-have skills")
}

func TestSkills_EmptyJobLists(t *testing.T) {
	res := Skills(&types.JobSpec{}, &types.CandidateProfile{Skills: []string{"python"}})

	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.Reasons)
	assert.Empty(t, res.Evidence)
}

func TestSkills_MixedMatchAndMissReasons(t *testing.T) {
	job := &types.JobSpec{MustHaveHardSkills: []string{"python", "rust"}}
	candidate := &types.CandidateProfile{Skills: []string{"python"}}

	res := Skills(job, candidate)

	// must 1/2 -> 35
	assert.Equal(t, 35, res.Score)
	require.Len(t, res.Reasons, 2)
	assert.Equal(t, "matches 1/2 must-have skills", res.Reasons[0])
	assert.Equal(t, "missing 1 must-have skills: rust", res.Reasons[1])
}
