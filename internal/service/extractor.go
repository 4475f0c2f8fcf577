// Package service holds the AI-provider collaborators: skill extraction
// from resume text and project-blueprint generation. Every provider
// degrades to a deterministic fallback, so callers always get a usable
// shape as long as the resume text is non-empty.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

type ExtractionResult struct {
	ExtractedSkills        []string `json:"extractedSkills"`
	ImprovementSuggestions string   `json:"improvementSuggestions"`
}

type Milestone struct {
	Week  int    `json:"week"`
	Title string `json:"title"`
	Goal  string `json:"goal"`
}

type Blueprint struct {
	Title         string      `json:"title"`
	Summary       string      `json:"summary"`
	Milestones    []Milestone `json:"milestones"`
	Deliverables  []string    `json:"deliverables"`
	ResumeBullets []string    `json:"resumeBullets"`
}

// AIProvider is the full collaborator surface. GeminiService,
// OpenRouterService, and FallbackProvider all implement it.
type AIProvider interface {
	ExtractSkills(ctx context.Context, resumeText string, requiredSkills []string) (ExtractionResult, error)
	GenerateProjectBlueprint(ctx context.Context, role string, missingSkills, extractedSkills []string) (Blueprint, error)
}

var errEmptyResumeText = errors.New("resume text is required for skill extraction")

// fallbackVocabulary is scanned by substring when no provider is available
// or a provider's output cannot be used.
var fallbackVocabulary = []string{
	"JavaScript",
	"TypeScript",
	"React",
	"Node",
	"Express",
	"MongoDB",
	"SQL",
	"Python",
	"Java",
	"C++",
	"AWS",
	"Docker",
	"Kubernetes",
	"System Design",
	"DSA",
	"REST API",
	"Git",
}

func scanFallbackSkills(resumeText string) []string {
	lower := strings.ToLower(resumeText)
	var found []string
	for _, candidate := range fallbackVocabulary {
		if strings.Contains(lower, strings.ToLower(candidate)) {
			found = append(found, candidate)
		}
	}
	return found
}

func fallbackExtraction(resumeText, suggestion string) ExtractionResult {
	return ExtractionResult{
		ExtractedSkills:        scanFallbackSkills(resumeText),
		ImprovementSuggestions: suggestion,
	}
}

func fallbackBlueprint(role string, missingSkills, extractedSkills []string) Blueprint {
	focus := missingSkills
	if len(focus) == 0 {
		focus = extractedSkills
	}
	if len(focus) > 3 {
		focus = focus[:3]
	}
	skillLabel := strings.Join(focus, ", ")
	if skillLabel == "" {
		skillLabel = "core role skills"
	}

	return Blueprint{
		Title:   role + " Gap-Closing Project",
		Summary: "Build one production-style project focused on " + skillLabel + " with measurable outcomes.",
		Milestones: []Milestone{
			{Week: 1, Title: "Scope and Architecture", Goal: "Define features, architecture, and acceptance criteria."},
			{Week: 2, Title: "Core Implementation", Goal: "Implement core modules and validate with tests."},
			{Week: 3, Title: "Polish and Deploy", Goal: "Deploy, add metrics, and complete documentation."},
		},
		Deliverables: []string{
			"Public Git repository with README",
			"Demo link or deployed environment",
			"Test report and architecture notes",
		},
		ResumeBullets: []string{
			"Built and deployed a project aligned to target role requirements.",
			"Implemented measurable improvements with tests and documentation.",
		},
	}
}

// FallbackProvider is the no-API-key mode: vocabulary scan and the fixed
// three-week blueprint.
type FallbackProvider struct {
	log *zap.Logger
}

func NewFallbackProvider(log *zap.Logger) *FallbackProvider {
	return &FallbackProvider{log: log}
}

func (p *FallbackProvider) ExtractSkills(_ context.Context, resumeText string, _ []string) (ExtractionResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return ExtractionResult{}, errEmptyResumeText
	}
	return fallbackExtraction(resumeText,
		"Add measurable project impact, highlight missing core backend/database skills, and tailor summary to the target role."), nil
}

func (p *FallbackProvider) GenerateProjectBlueprint(_ context.Context, role string, missingSkills, extractedSkills []string) (Blueprint, error) {
	return fallbackBlueprint(role, missingSkills, extractedSkills), nil
}
