package question

import (
	"strings"

	"github.com/fadilmartias/skill-verifier/internal/skill"
)

// roleCategory selects which hand-authored scenario/debug variant a company
// role receives.
type roleCategory int

const (
	categoryGeneric roleCategory = iota
	categoryFrontend
	categoryData
)

func categorizeRole(role string) roleCategory {
	lower := strings.ToLower(role)
	switch {
	case strings.Contains(lower, "frontend"):
		return categoryFrontend
	case strings.Contains(lower, "data"):
		return categoryData
	default:
		return categoryGeneric
	}
}

// factualQuestions replace the first generic question for skills where we
// have an authored technical check. Keyed by normalized skill token.
var factualQuestions = map[string]Question{
	"sql": {
		Type:   TypeMCQ,
		Prompt: "Which SQL query returns employees with salary > 50000 sorted descending?",
		Options: []string{
			"SELECT * FROM employees WHERE salary > 50000 ORDER BY salary DESC;",
			"SELECT employees salary > 50000 SORT DESC;",
			"FETCH employees BY salary DESC IF salary > 50000;",
			"ORDER employees DESC WHERE salary > 50000;",
		},
		CorrectAnswer: 0,
		Weight:        50,
	},
	"react": {
		Type:          TypeMCQ,
		Prompt:        "In React, which hook is typically used for local component state?",
		Options:       []string{"useState", "useContextProvider", "setInterval", "useRoute"},
		CorrectAnswer: 0,
		Weight:        50,
	},
	"node": {
		Type:   TypeMCQ,
		Prompt: "What is Node.js primarily used for?",
		Options: []string{
			"Running JavaScript on the server/runtime environment",
			"Styling HTML pages",
			"Designing logos",
			"Creating spreadsheet formulas",
		},
		CorrectAnswer: 0,
		Weight:        50,
	},
}

type authoredContent struct {
	prompt  string
	options []string
}

var scenarioContent = map[roleCategory]authoredContent{
	categoryFrontend: {
		prompt: "Your page has become slow after shipping a new component tree. What should you do first?",
		options: []string{
			"Profile render paths, identify expensive updates, and optimize re-render behavior",
			"Increase font size to improve perceived speed",
			"Remove error boundaries from the app",
			"Disable caching for all static assets",
		},
	},
	categoryData: {
		prompt: "A dashboard metric dropped 20% overnight. What is the best first response?",
		options: []string{
			"Validate data pipeline freshness, compare source integrity, and segment the drop by cohort",
			"Immediately change the chart type",
			"Delete yesterday's records and rerun manually",
			"Assume seasonality without checking",
		},
	},
	categoryGeneric: {
		prompt: "API latency doubled after a release. What should be your first step?",
		options: []string{
			"Check release diff, inspect traces, and isolate the slow path before rollback/patch",
			"Add more random retries without investigation",
			"Ignore unless errors increase",
			"Disable all monitoring alerts",
		},
	},
}

var debugContent = map[roleCategory]authoredContent{
	categoryFrontend: {
		prompt: "A React form loses input state when switching tabs. Most likely cause?",
		options: []string{
			"Component remounting due to unstable keys or route-level unmounting",
			"Using semantic HTML labels",
			"Using CSS modules",
			"Running Prettier on save",
		},
	},
	categoryData: {
		prompt: "SQL totals are inflated after a JOIN. Most common root cause?",
		options: []string{
			"One-to-many join duplication without proper grouping/deduplication",
			"Using uppercase SQL keywords",
			"Adding ORDER BY",
			"Using aliases in SELECT",
		},
	},
	categoryGeneric: {
		prompt: "User data endpoint returns stale values after update. Most likely issue?",
		options: []string{
			"Cache invalidation/TTL path is missing after write",
			"TLS certificate was renewed",
			"Console logs are disabled",
			"Response JSON is pretty-printed",
		},
	},
}

func scenarioQuestion(category roleCategory, rawSkill string) Question {
	content := scenarioContent[category]
	return Question{
		ID:            NewID("q"),
		Skill:         skill.DisplayName(rawSkill),
		Type:          TypeScenario,
		Prompt:        content.prompt,
		Options:       content.options,
		CorrectAnswer: 0,
		Weight:        100,
	}
}

func debugQuestion(category roleCategory, rawSkill string) Question {
	content := debugContent[category]
	return Question{
		ID:            NewID("q"),
		Skill:         skill.DisplayName(rawSkill),
		Type:          TypeDebug,
		Prompt:        content.prompt,
		Options:       content.options,
		CorrectAnswer: 0,
		Weight:        100,
	}
}
