package assessment

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/fadilmartias/skill-verifier/internal/catalog"
	"github.com/fadilmartias/skill-verifier/internal/question"
	"github.com/fadilmartias/skill-verifier/internal/skill"
	"github.com/fadilmartias/skill-verifier/internal/store"
)

// InterviewSession is the stored, un-stripped simulation. Immutable after
// creation.
type InterviewSession struct {
	SessionID    string
	Company      catalog.CompanyTemplate
	ResumeSkills []string
	Rounds       []question.Round
	CreatedAt    time.Time
}

type StartedInterview struct {
	SessionID        string                 `json:"sessionId"`
	Company          catalog.CompanySummary `json:"company"`
	Rounds           []question.PublicRound `json:"rounds"`
	TotalQuestions   int                    `json:"totalQuestions"`
	EstimatedMinutes int                    `json:"estimatedMinutes"`
}

type RoundScore struct {
	RoundID  string `json:"roundId"`
	Title    string `json:"title"`
	Answered int    `json:"answered"`
	Score    int    `json:"score"`
}

type InterviewResult struct {
	SessionID      string                 `json:"sessionId"`
	Company        catalog.CompanySummary `json:"company"`
	OverallScore   int                    `json:"overallScore"`
	AnsweredCount  int                    `json:"answeredCount"`
	TotalQuestions int                    `json:"totalQuestions"`
	RoundBreakdown []RoundScore           `json:"roundBreakdown"`
	Recommendation string                 `json:"recommendation"`
}

// InterviewService owns the interview-session store.
type InterviewService struct {
	sessions store.Store[InterviewSession]
	log      *zap.Logger
}

func NewInterviewService(sessions store.Store[InterviewSession], log *zap.Logger) *InterviewService {
	return &InterviewService{sessions: sessions, log: log}
}

// Start resolves the company (first catalog entry when the id is empty or
// unknown), generates its three interview rounds, and stores the session.
func (s *InterviewService) Start(companyID string, resumeSkills []string) StartedInterview {
	var requested []string
	if companyID != "" {
		requested = []string{companyID}
	}
	company := catalog.Resolve(requested)[0]

	rounds := question.InterviewRounds(company)
	totalQuestions := 0
	for _, round := range rounds {
		totalQuestions += len(round.Questions)
	}

	sessionID := question.NewID("interview")
	s.sessions.Put(sessionID, InterviewSession{
		SessionID:    sessionID,
		Company:      company,
		ResumeSkills: skill.Dedupe(resumeSkills),
		Rounds:       rounds,
		CreatedAt:    time.Now().UTC(),
	})
	s.log.Info("interview simulation started",
		zap.String("sessionId", sessionID),
		zap.String("companyId", company.CompanyID))

	estimated := totalQuestions * 2
	if estimated < 10 {
		estimated = 10
	}

	return StartedInterview{
		SessionID:        sessionID,
		Company:          summaryOf(company),
		Rounds:           question.StripRounds(rounds),
		TotalQuestions:   totalQuestions,
		EstimatedMinutes: estimated,
	}
}

// Evaluate scores each round over its answered questions only, then takes
// the unweighted mean across rounds: a one-question round counts as much
// as a five-question round.
func (s *InterviewService) Evaluate(sessionID string, answers []SubmittedAnswer) (InterviewResult, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return InterviewResult{}, &NotFoundError{Message: "Invalid interview session. Please start a new simulation."}
	}

	submitted := answerMap(answers)

	roundBreakdown := make([]RoundScore, 0, len(session.Rounds))
	answeredCount := 0
	totalQuestions := 0
	scoreSum := 0

	for _, round := range session.Rounds {
		totalQuestions += len(round.Questions)
		answered := 0
		correct := 0
		for _, q := range round.Questions {
			answer, submittedFor := submitted[q.ID]
			if !submittedFor {
				continue
			}
			option, valid := answer.selection()
			if !valid {
				continue
			}
			answered++
			if option == q.CorrectAnswer {
				correct++
			}
		}

		score := 0
		if answered > 0 {
			score = roundPct(correct, answered)
		}
		answeredCount += answered
		scoreSum += score
		roundBreakdown = append(roundBreakdown, RoundScore{
			RoundID:  round.RoundID,
			Title:    round.Title,
			Answered: answered,
			Score:    score,
		})
	}

	overallScore := 0
	if len(roundBreakdown) > 0 {
		overallScore = int(math.Round(float64(scoreSum) / float64(len(roundBreakdown))))
	}

	recommendation := "Needs focused preparation before shortlist-level interviews."
	switch {
	case overallScore >= 75:
		recommendation = "Strongly interview-ready for this company baseline."
	case overallScore >= 50:
		recommendation = "Partially ready. Improve weak round areas before applying."
	}

	return InterviewResult{
		SessionID:      sessionID,
		Company:        summaryOf(session.Company),
		OverallScore:   overallScore,
		AnsweredCount:  answeredCount,
		TotalQuestions: totalQuestions,
		RoundBreakdown: roundBreakdown,
		Recommendation: recommendation,
	}, nil
}

func summaryOf(company catalog.CompanyTemplate) catalog.CompanySummary {
	return catalog.CompanySummary{
		CompanyID:   company.CompanyID,
		CompanyName: company.CompanyName,
		Role:        company.Role,
	}
}
