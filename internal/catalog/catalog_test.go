package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesHaveRequiredSkills(t *testing.T) {
	all := Templates()
	require.NotEmpty(t, all)
	seen := map[string]bool{}
	for _, company := range all {
		assert.False(t, seen[company.CompanyID], "duplicate id %s", company.CompanyID)
		seen[company.CompanyID] = true
		assert.NotEmpty(t, company.RequiredSkills, "%s has no required skills", company.CompanyID)
		for _, req := range company.RequiredSkills {
			assert.Positive(t, req.Weight)
		}
	}
}

func TestResolve(t *testing.T) {
	all := Templates()

	assert.Equal(t, all, Resolve(nil))
	assert.Equal(t, all, Resolve([]string{"", "  "}))
	assert.Equal(t, all, Resolve([]string{"no-such-company"}))

	matched := Resolve([]string{" Pixel-Forge "})
	require.Len(t, matched, 1)
	assert.Equal(t, "pixel-forge", matched[0].CompanyID)

	two := Resolve([]string{"data-sphere", "code-orbit"})
	require.Len(t, two, 2)
	// catalog order, not request order
	assert.Equal(t, "code-orbit", two[0].CompanyID)
	assert.Equal(t, "data-sphere", two[1].CompanyID)
}

func TestSummariesOmitWeights(t *testing.T) {
	summaries := Summaries()
	require.Len(t, summaries, len(Templates()))
	assert.Equal(t, "CodeOrbit", summaries[0].CompanyName)
	assert.Equal(t, "Frontend Developer", summaries[1].Role)
}
