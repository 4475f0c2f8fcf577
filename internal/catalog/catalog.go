// Package catalog holds the static company templates that claim tests and
// interview simulations are scored against. The catalog is defined at
// startup and read-only afterwards.
package catalog

import "strings"

type RequiredSkill struct {
	Skill  string `json:"skill"`
	Weight int    `json:"weight"`
}

type CompanyTemplate struct {
	CompanyID      string          `json:"companyId"`
	CompanyName    string          `json:"companyName"`
	Role           string          `json:"role"`
	RequiredSkills []RequiredSkill `json:"requiredSkills"`
}

// CompanySummary is the public view of a template, without skill weights.
type CompanySummary struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
}

var templates = []CompanyTemplate{
	{
		CompanyID:   "code-orbit",
		CompanyName: "CodeOrbit",
		Role:        "Backend Developer",
		RequiredSkills: []RequiredSkill{
			{Skill: "Node", Weight: 25},
			{Skill: "Express", Weight: 20},
			{Skill: "MongoDB", Weight: 20},
			{Skill: "SQL", Weight: 15},
			{Skill: "System Design", Weight: 20},
		},
	},
	{
		CompanyID:   "pixel-forge",
		CompanyName: "PixelForge",
		Role:        "Frontend Developer",
		RequiredSkills: []RequiredSkill{
			{Skill: "React", Weight: 30},
			{Skill: "JavaScript", Weight: 20},
			{Skill: "TypeScript", Weight: 20},
			{Skill: "CSS", Weight: 15},
			{Skill: "REST API", Weight: 15},
		},
	},
	{
		CompanyID:   "data-sphere",
		CompanyName: "DataSphere",
		Role:        "Data Analyst",
		RequiredSkills: []RequiredSkill{
			{Skill: "Python", Weight: 30},
			{Skill: "SQL", Weight: 30},
			{Skill: "Statistics", Weight: 20},
			{Skill: "Excel", Weight: 20},
		},
	},
}

// Templates returns the full catalog in definition order. Callers must not
// mutate the returned slice.
func Templates() []CompanyTemplate {
	return templates
}

// Resolve matches company ids (case-insensitive, trimmed) against the
// catalog. An empty id list, or one that matches nothing, resolves to the
// whole catalog.
func Resolve(companyIDs []string) []CompanyTemplate {
	idSet := make(map[string]struct{}, len(companyIDs))
	for _, id := range companyIDs {
		trimmed := strings.ToLower(strings.TrimSpace(id))
		if trimmed != "" {
			idSet[trimmed] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return templates
	}

	var matched []CompanyTemplate
	for _, company := range templates {
		if _, ok := idSet[company.CompanyID]; ok {
			matched = append(matched, company)
		}
	}
	if len(matched) == 0 {
		return templates
	}
	return matched
}

// Summaries lists the catalog without skill weights, for API responses.
func Summaries() []CompanySummary {
	summaries := make([]CompanySummary, 0, len(templates))
	for _, company := range templates {
		summaries = append(summaries, CompanySummary{
			CompanyID:   company.CompanyID,
			CompanyName: company.CompanyName,
			Role:        company.Role,
		})
	}
	return summaries
}
