package assessment

import (
	"math"
	"sort"

	"github.com/fadilmartias/skill-verifier/internal/catalog"
	"github.com/fadilmartias/skill-verifier/internal/skill"
)

// CompanyFit is one entry of the ranked shortlist. FitScore is a rounded
// alias of the weighted test score; it does not blend claim coverage.
type CompanyFit struct {
	CompanyID     string `json:"companyId"`
	CompanyName   string `json:"companyName"`
	Role          string `json:"role"`
	FitScore      int    `json:"fitScore"`
	TestScore     int    `json:"testScore"`
	ClaimCoverage int    `json:"claimCoverage"`
}

// BuildShortlist scores every company against the per-skill test results
// and the claimed-skill set, drops companies with no claimed requirement,
// and sorts descending by fit score. Ties keep catalog-relative order.
func BuildShortlist(skillScores map[string]int, claimedSkills []string, companies []catalog.CompanyTemplate) []CompanyFit {
	claimedSet := make(map[string]struct{}, len(claimedSkills))
	for _, claimed := range claimedSkills {
		claimedSet[skill.Normalize(claimed)] = struct{}{}
	}

	shortlist := make([]CompanyFit, 0, len(companies))
	for _, company := range companies {
		totalWeight := 0
		for _, req := range company.RequiredSkills {
			totalWeight += req.Weight
		}
		if totalWeight == 0 {
			totalWeight = 1
		}

		weightedTestScore := 0
		weightedClaimCoverage := 0
		matchedRequirements := 0
		for _, req := range company.RequiredSkills {
			token := skill.Normalize(req.Skill)
			weightedTestScore += skillScores[token] * req.Weight
			if _, claimed := claimedSet[token]; claimed {
				matchedRequirements++
				weightedClaimCoverage += 100 * req.Weight
			}
		}

		testScore := int(math.Round(float64(weightedTestScore) / float64(totalWeight)))
		claimCoverage := int(math.Round(float64(weightedClaimCoverage) / float64(totalWeight)))
		if matchedRequirements == 0 || claimCoverage == 0 {
			continue
		}

		shortlist = append(shortlist, CompanyFit{
			CompanyID:     company.CompanyID,
			CompanyName:   company.CompanyName,
			Role:          company.Role,
			FitScore:      testScore,
			TestScore:     testScore,
			ClaimCoverage: claimCoverage,
		})
	}

	sort.SliceStable(shortlist, func(i, j int) bool {
		return shortlist[i].FitScore > shortlist[j].FitScore
	})
	return shortlist
}
