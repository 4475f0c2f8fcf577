package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/skill-verifier/internal/catalog"
	"github.com/fadilmartias/skill-verifier/internal/skill"
)

func TestBuildShortlistWeightsAndFilter(t *testing.T) {
	skillScores := map[string]int{"react": 100, "sql": 50}
	claimed := []string{"React", "SQL"}

	shortlist := BuildShortlist(skillScores, claimed, catalog.Templates())

	// DataSphere: sql claimed (weight 30 of 100) -> coverage 30, test 15
	// PixelForge: react claimed (weight 30 of 100) -> coverage 30, test 30
	// CodeOrbit: sql claimed (weight 15 of 100) -> coverage 15, test 7.5 -> 8
	require.Len(t, shortlist, 3)
	assert.Equal(t, "pixel-forge", shortlist[0].CompanyID)
	assert.Equal(t, 30, shortlist[0].FitScore)
	assert.Equal(t, "data-sphere", shortlist[1].CompanyID)
	assert.Equal(t, 15, shortlist[1].TestScore)
	assert.Equal(t, "code-orbit", shortlist[2].CompanyID)
	assert.Equal(t, 8, shortlist[2].TestScore)

	for _, fit := range shortlist {
		assert.Equal(t, fit.TestScore, fit.FitScore, "fitScore is an alias of testScore")
		assert.Positive(t, fit.ClaimCoverage)
	}
	for i := 1; i < len(shortlist); i++ {
		assert.GreaterOrEqual(t, shortlist[i-1].FitScore, shortlist[i].FitScore)
	}
}

func TestBuildShortlistDropsUnclaimedCompanies(t *testing.T) {
	shortlist := BuildShortlist(map[string]int{"react": 100}, []string{"React"}, catalog.Templates())
	require.Len(t, shortlist, 1)
	assert.Equal(t, "pixel-forge", shortlist[0].CompanyID)
}

func TestBuildShortlistEmptyClaims(t *testing.T) {
	shortlist := BuildShortlist(map[string]int{"react": 100}, nil, catalog.Templates())
	assert.Empty(t, shortlist)
}

func TestBuildShortlistTiesKeepCatalogOrder(t *testing.T) {
	// every company fully claimed and fully scored: all fit scores are 100,
	// so the stable sort keeps catalog order
	var claimed []string
	skillScores := map[string]int{}
	for _, company := range catalog.Templates() {
		for _, req := range company.RequiredSkills {
			claimed = append(claimed, req.Skill)
		}
	}
	for _, c := range claimed {
		skillScores[skill.Normalize(c)] = 100
	}

	shortlist := BuildShortlist(skillScores, claimed, catalog.Templates())
	require.Len(t, shortlist, 3)
	assert.Equal(t, "code-orbit", shortlist[0].CompanyID)
	assert.Equal(t, "pixel-forge", shortlist[1].CompanyID)
	assert.Equal(t, "data-sphere", shortlist[2].CompanyID)
	for _, fit := range shortlist {
		assert.Equal(t, 100, fit.FitScore)
		assert.Equal(t, 100, fit.ClaimCoverage)
	}
}

func TestBuildShortlistZeroWeightCompanyIsDropped(t *testing.T) {
	// all-zero weights leave claim coverage at 0 even though a requirement
	// matched, so the company is filtered (and the weight guard avoids a
	// division by zero on the way there)
	companies := []catalog.CompanyTemplate{{
		CompanyID:   "zero-weight",
		CompanyName: "ZeroWeight",
		Role:        "Backend Developer",
		RequiredSkills: []catalog.RequiredSkill{
			{Skill: "Go", Weight: 0},
		},
	}}

	shortlist := BuildShortlist(map[string]int{"go": 100}, []string{"Go"}, companies)
	assert.Empty(t, shortlist)
}
