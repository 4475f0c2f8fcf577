package service

import (
	"strings"

	"github.com/tidwall/gjson"
)

// stripCodeFence unwraps model output that arrives inside a markdown code
// block.
func stripCodeFence(output string) string {
	trimmed := strings.TrimSpace(output)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func parseExtraction(output, resumeText string) ExtractionResult {
	parsed := gjson.Parse(stripCodeFence(output))

	extracted := parsed.Get("extractedSkills")
	if !extracted.IsArray() {
		return fallbackExtraction(resumeText,
			"Improve role-specific keywords and include missing technical skills from job requirements.")
	}

	var skills []string
	for _, item := range extracted.Array() {
		if value := strings.TrimSpace(item.String()); value != "" {
			skills = append(skills, value)
		}
	}
	if len(skills) == 0 {
		skills = scanFallbackSkills(resumeText)
	}

	suggestion := strings.TrimSpace(parsed.Get("improvementSuggestions").String())
	if suggestion == "" {
		suggestion = "Improve resume clarity and add missing job-relevant skills."
	}

	return ExtractionResult{ExtractedSkills: skills, ImprovementSuggestions: suggestion}
}

func parseBlueprint(output, role string, missingSkills, extractedSkills []string) Blueprint {
	fallback := fallbackBlueprint(role, missingSkills, extractedSkills)

	parsed := gjson.Parse(stripCodeFence(output))
	if !parsed.IsObject() {
		return fallback
	}

	blueprint := Blueprint{
		Title:         strings.TrimSpace(parsed.Get("title").String()),
		Summary:       strings.TrimSpace(parsed.Get("summary").String()),
		Deliverables:  []string{},
		ResumeBullets: []string{},
	}
	if blueprint.Title == "" {
		blueprint.Title = fallback.Title
	}
	if blueprint.Summary == "" {
		blueprint.Summary = "Build a practical project to close top role gaps."
	}

	milestones := parsed.Get("milestones")
	if milestones.IsArray() {
		for _, item := range milestones.Array() {
			if len(blueprint.Milestones) == 6 {
				break
			}
			blueprint.Milestones = append(blueprint.Milestones, Milestone{
				Week:  int(item.Get("week").Int()),
				Title: item.Get("title").String(),
				Goal:  item.Get("goal").String(),
			})
		}
	} else {
		blueprint.Milestones = fallback.Milestones
	}

	if deliverables := parsed.Get("deliverables"); deliverables.IsArray() {
		for _, item := range deliverables.Array() {
			if len(blueprint.Deliverables) == 8 {
				break
			}
			blueprint.Deliverables = append(blueprint.Deliverables, item.String())
		}
	}
	if bullets := parsed.Get("resumeBullets"); bullets.IsArray() {
		for _, item := range bullets.Array() {
			if len(blueprint.ResumeBullets) == 6 {
				break
			}
			blueprint.ResumeBullets = append(blueprint.ResumeBullets, item.String())
		}
	}

	return blueprint
}
