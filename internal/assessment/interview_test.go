package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fadilmartias/skill-verifier/internal/store"
)

func newInterviewService() *InterviewService {
	return NewInterviewService(store.NewMemory[InterviewSession](), zap.NewNop())
}

func TestStartInterviewForCompany(t *testing.T) {
	svc := newInterviewService()

	started := svc.Start("pixel-forge", []string{"React", "react", "CSS"})

	assert.Equal(t, "PixelForge", started.Company.CompanyName)
	require.Len(t, started.Rounds, 3)
	assert.Equal(t, "Applied Scenarios", started.Rounds[1].Title)
	assert.Equal(t, 6, started.TotalQuestions)
	assert.Equal(t, 12, started.EstimatedMinutes)
	assert.NotEmpty(t, started.SessionID)
}

func TestStartInterviewDefaultsToFirstCompany(t *testing.T) {
	svc := newInterviewService()

	assert.Equal(t, "code-orbit", svc.Start("", nil).Company.CompanyID)
	assert.Equal(t, "code-orbit", svc.Start("no-such-company", nil).Company.CompanyID)
}

func TestStartInterviewEstimateFloor(t *testing.T) {
	svc := newInterviewService()
	started := svc.Start("data-sphere", nil)
	// 6 questions -> 12 minutes; the 10-minute floor only matters below 5
	assert.GreaterOrEqual(t, started.EstimatedMinutes, 10)
}

func TestEvaluateInterviewUnknownSession(t *testing.T) {
	svc := newInterviewService()
	_, err := svc.Evaluate("interview_missing", nil)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Message, "start a new simulation")
}

func TestEvaluateInterviewRoundScores(t *testing.T) {
	svc := newInterviewService()
	started := svc.Start("code-orbit", nil)
	require.Len(t, started.Rounds, 3)
	require.Len(t, started.Rounds[0].Questions, 3)
	require.Len(t, started.Rounds[1].Questions, 2)
	require.Len(t, started.Rounds[2].Questions, 1)

	// round 1: 2/3 correct, round 2: 1/1 (second unanswered), round 3: 0/1
	answers := []SubmittedAnswer{
		{QuestionID: started.Rounds[0].Questions[0].ID, SelectedOption: opt(0)},
		{QuestionID: started.Rounds[0].Questions[1].ID, SelectedOption: opt(0)},
		{QuestionID: started.Rounds[0].Questions[2].ID, SelectedOption: opt(3)},
		{QuestionID: started.Rounds[1].Questions[0].ID, SelectedOption: opt(0)},
		{QuestionID: started.Rounds[2].Questions[0].ID, SelectedOption: opt(1)},
	}

	result, err := svc.Evaluate(started.SessionID, answers)
	require.NoError(t, err)

	require.Len(t, result.RoundBreakdown, 3)
	assert.Equal(t, 67, result.RoundBreakdown[0].Score)
	assert.Equal(t, 100, result.RoundBreakdown[1].Score)
	assert.Equal(t, 0, result.RoundBreakdown[2].Score)
	assert.Equal(t, 3, result.RoundBreakdown[0].Answered)
	assert.Equal(t, 1, result.RoundBreakdown[1].Answered)

	// unweighted mean across rounds: round((67+100+0)/3) = 56
	assert.Equal(t, 56, result.OverallScore)
	assert.Equal(t, 5, result.AnsweredCount)
	assert.Equal(t, 6, result.TotalQuestions)
	assert.Contains(t, result.Recommendation, "Partially ready")
}

func TestEvaluateInterviewAllCorrect(t *testing.T) {
	svc := newInterviewService()
	started := svc.Start("data-sphere", nil)

	var answers []SubmittedAnswer
	for _, round := range started.Rounds {
		for _, q := range round.Questions {
			answers = append(answers, SubmittedAnswer{QuestionID: q.ID, SelectedOption: opt(0)})
		}
	}

	result, err := svc.Evaluate(started.SessionID, answers)
	require.NoError(t, err)
	assert.Equal(t, 100, result.OverallScore)
	assert.Contains(t, result.Recommendation, "Strongly interview-ready")
}

func TestEvaluateInterviewNoAnswers(t *testing.T) {
	svc := newInterviewService()
	started := svc.Start("", nil)

	result, err := svc.Evaluate(started.SessionID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.OverallScore)
	assert.Equal(t, 0, result.AnsweredCount)
	for _, round := range result.RoundBreakdown {
		assert.Equal(t, 0, round.Score)
		assert.Equal(t, 0, round.Answered)
	}
	assert.Contains(t, result.Recommendation, "Needs focused preparation")
}
