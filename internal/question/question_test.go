package question

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/skill-verifier/internal/catalog"
)

func TestForSkillGeneric(t *testing.T) {
	questions := ForSkill("System Design")
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Equal(t, "System Design", q.Skill)
		assert.Equal(t, TypeMCQ, q.Type)
		assert.Equal(t, 0, q.CorrectAnswer)
		assert.Equal(t, 50, q.Weight)
		assert.Len(t, q.Options, 4)
		assert.NotEmpty(t, q.ID)
	}
	assert.Contains(t, questions[0].Prompt, "real-world use of System Design")
	assert.Contains(t, questions[1].Prompt, "claimed System Design in your resume")
}

func TestForSkillFactualOverrides(t *testing.T) {
	// the normalized token "sql" hits the factual override, but the display
	// name keeps the raw punctuation and so misses the casing table
	sql := ForSkill("SQL!")
	assert.Contains(t, sql[0].Prompt, "salary > 50000")
	assert.Equal(t, "Sql!", sql[0].Skill)

	react := ForSkill("react")
	assert.Equal(t, "useState", react[0].Options[0])

	node := ForSkill("  NODE ")
	assert.Contains(t, node[0].Prompt, "Node.js")

	// second question stays generic even for overridden skills
	assert.Contains(t, sql[1].Prompt, "claimed Sql! in your resume")
}

func TestForSkillGeneratesFreshIDs(t *testing.T) {
	a := ForSkill("Go")
	b := ForSkill("Go")
	assert.NotEqual(t, a[0].ID, b[0].ID)
	assert.NotEqual(t, a[0].ID, a[1].ID)
}

func TestStripRemovesAnswerKey(t *testing.T) {
	q := ForSkill("Python")[0]
	public := Strip(q)
	assert.Equal(t, q.ID, public.ID)
	assert.Equal(t, q.Options, public.Options)
	assert.Equal(t, q.Weight, public.Weight)
}

func TestInterviewRoundsShape(t *testing.T) {
	company := catalog.Resolve([]string{"code-orbit"})[0]
	rounds := InterviewRounds(company)
	require.Len(t, rounds, 3)

	assert.Equal(t, "Technical Basics", rounds[0].Title)
	assert.Equal(t, "Applied Scenarios", rounds[1].Title)
	assert.Equal(t, "Debug & Decision", rounds[2].Title)

	assert.Len(t, rounds[0].Questions, 3)
	assert.Len(t, rounds[1].Questions, 2)
	assert.Len(t, rounds[2].Questions, 1)

	for _, round := range rounds[1:] {
		for _, q := range round.Questions {
			assert.Equal(t, 100, q.Weight)
			assert.Equal(t, 0, q.CorrectAnswer)
		}
	}

	ids := map[string]bool{}
	for _, round := range rounds {
		assert.False(t, ids[round.RoundID])
		ids[round.RoundID] = true
		for _, q := range round.Questions {
			assert.False(t, ids[q.ID], "duplicate question id %s", q.ID)
			ids[q.ID] = true
		}
	}
}

func TestInterviewRoundsRoleBranches(t *testing.T) {
	frontend := catalog.Resolve([]string{"pixel-forge"})[0]
	rounds := InterviewRounds(frontend)
	assert.Contains(t, rounds[1].Questions[0].Prompt, "component tree")
	assert.Equal(t, TypeScenario, rounds[1].Questions[0].Type)
	assert.Contains(t, rounds[2].Questions[0].Prompt, "loses input state")
	assert.Equal(t, TypeDebug, rounds[2].Questions[0].Type)

	data := catalog.Resolve([]string{"data-sphere"})[0]
	rounds = InterviewRounds(data)
	assert.Contains(t, rounds[1].Questions[0].Prompt, "dashboard metric")
	assert.Contains(t, rounds[2].Questions[0].Prompt, "inflated after a JOIN")

	backend := catalog.Resolve([]string{"code-orbit"})[0]
	rounds = InterviewRounds(backend)
	assert.Contains(t, rounds[1].Questions[0].Prompt, "API latency doubled")
	assert.Contains(t, rounds[2].Questions[0].Prompt, "stale values after update")
}

func TestInterviewRoundsUsePrimarySkillQuestions(t *testing.T) {
	backend := catalog.Resolve([]string{"code-orbit"})[0]
	rounds := InterviewRounds(backend)
	// round 1 uses the primary (possibly factual) question of the first 3 skills
	assert.Equal(t, "Node", rounds[0].Questions[0].Skill)
	assert.Contains(t, rounds[0].Questions[0].Prompt, "Node.js")
	assert.Equal(t, "Express", rounds[0].Questions[1].Skill)
	assert.Equal(t, "MongoDB", rounds[0].Questions[2].Skill)
	// round 2 second question is the ownership check on the second skill
	assert.Contains(t, rounds[1].Questions[1].Prompt, "strong Express ownership")
}

func TestNewIDFormat(t *testing.T) {
	id := NewID("test")
	assert.True(t, strings.HasPrefix(id, "test_"))
	assert.NotEqual(t, id, NewID("test"))
}
