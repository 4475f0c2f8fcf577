// Package question generates the quiz content used by claim tests and
// interview simulations: two verification questions per claimed skill, and
// three role-flavored interview rounds per company.
package question

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fadilmartias/skill-verifier/internal/catalog"
	"github.com/fadilmartias/skill-verifier/internal/skill"
)

type Type string

const (
	TypeMCQ      Type = "mcq"
	TypeScenario Type = "scenario"
	TypeDebug    Type = "debug"
)

type Question struct {
	ID            string   `json:"id"`
	Skill         string   `json:"skill"`
	Type          Type     `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Weight        int      `json:"weight"`
}

// Public is a question with the answer key removed. Only this view may
// cross the API boundary before grading.
type Public struct {
	ID      string   `json:"id"`
	Skill   string   `json:"skill"`
	Type    Type     `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Weight  int      `json:"weight"`
}

type Round struct {
	RoundID   string     `json:"roundId"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

type PublicRound struct {
	RoundID   string   `json:"roundId"`
	Title     string   `json:"title"`
	Questions []Public `json:"questions"`
}

// NewID returns a prefixed identifier unique within the process lifetime.
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}

// Strip removes the answer key from a question.
func Strip(q Question) Public {
	return Public{
		ID:      q.ID,
		Skill:   q.Skill,
		Type:    q.Type,
		Prompt:  q.Prompt,
		Options: q.Options,
		Weight:  q.Weight,
	}
}

func StripAll(questions []Question) []Public {
	stripped := make([]Public, 0, len(questions))
	for _, q := range questions {
		stripped = append(stripped, Strip(q))
	}
	return stripped
}

func StripRounds(rounds []Round) []PublicRound {
	stripped := make([]PublicRound, 0, len(rounds))
	for _, round := range rounds {
		stripped = append(stripped, PublicRound{
			RoundID:   round.RoundID,
			Title:     round.Title,
			Questions: StripAll(round.Questions),
		})
	}
	return stripped
}

// ForSkill builds the two verification questions for one claimed skill.
// Both are generic MCQ templates parameterized by the display name; for a
// few well-known skills the first one is replaced by a factual question.
func ForSkill(rawSkill string) []Question {
	key := skill.Normalize(rawSkill)
	pretty := skill.DisplayName(rawSkill)

	questions := []Question{
		{
			Type:   TypeMCQ,
			Prompt: fmt.Sprintf("Which statement best explains a real-world use of %s?", pretty),
			Options: []string{
				fmt.Sprintf("Applying %s to solve production-level problems with measurable outcomes", pretty),
				fmt.Sprintf("%s is only for writing comments and documentation", pretty),
				fmt.Sprintf("%s cannot be used in team projects", pretty),
				fmt.Sprintf("%s is unrelated to software/product delivery", pretty),
			},
			CorrectAnswer: 0,
			Weight:        50,
		},
		{
			Type:   TypeMCQ,
			Prompt: fmt.Sprintf("You claimed %s in your resume. Which behavior shows practical proficiency?", pretty),
			Options: []string{
				"Can explain tradeoffs, debug issues, and deliver small features independently",
				"Has heard the name but never used it",
				"Only copied examples without understanding",
				fmt.Sprintf("Avoids tasks involving %s", pretty),
			},
			CorrectAnswer: 0,
			Weight:        50,
		},
	}

	if factual, ok := factualQuestions[key]; ok {
		questions[0] = factual
	}

	for i := range questions {
		questions[i].ID = NewID("q")
		questions[i].Skill = pretty
	}
	return questions
}

// InterviewRounds builds the three interview rounds for a company, using up
// to five of its required skills in role order.
func InterviewRounds(company catalog.CompanyTemplate) []Round {
	skills := make([]string, 0, 5)
	for _, req := range company.RequiredSkills {
		if len(skills) == 5 {
			break
		}
		skills = append(skills, req.Skill)
	}

	category := categorizeRole(company.Role)
	scenarioSkill := "System Design"
	if len(skills) > 0 {
		scenarioSkill = skills[0]
	}
	debugSkill := "APIs"
	if len(skills) > 1 {
		debugSkill = skills[1]
	}

	basics := make([]Question, 0, 3)
	for i, s := range skills {
		if i == 3 {
			break
		}
		basics = append(basics, ForSkill(s)[0])
	}

	applied := []Question{scenarioQuestion(category, scenarioSkill)}
	if len(skills) > 1 {
		applied = append(applied, ownershipQuestion(skills[1]))
	}

	return []Round{
		{RoundID: NewID("round"), Title: "Technical Basics", Questions: basics},
		{RoundID: NewID("round"), Title: "Applied Scenarios", Questions: applied},
		{RoundID: NewID("round"), Title: "Debug & Decision", Questions: []Question{debugQuestion(category, debugSkill)}},
	}
}

func ownershipQuestion(rawSkill string) Question {
	pretty := skill.DisplayName(rawSkill)
	return Question{
		ID:     NewID("q"),
		Skill:  pretty,
		Type:   TypeScenario,
		Prompt: fmt.Sprintf("In production, what best demonstrates strong %s ownership?", pretty),
		Options: []string{
			"Can explain tradeoffs, deliver measurable outcomes, and handle failures",
			"Only discusses theory and avoids implementation",
			"Copies snippets without context",
			"Avoids code reviews and incident follow-up",
		},
		CorrectAnswer: 0,
		Weight:        100,
	}
}
