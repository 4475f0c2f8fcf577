// Package assessment implements the claim-verification and
// interview-simulation engine: test synthesis, weighted grading, and
// company shortlist ranking. Everything here is synchronous and pure over
// the stored, immutable test data.
package assessment

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/fadilmartias/skill-verifier/internal/catalog"
	"github.com/fadilmartias/skill-verifier/internal/question"
	"github.com/fadilmartias/skill-verifier/internal/service"
	"github.com/fadilmartias/skill-verifier/internal/skill"
	"github.com/fadilmartias/skill-verifier/internal/store"
)

const maxClaimedSkills = 8

// defaultTestSkills is the last-resort claimed-skill list when neither
// extraction nor the company catalog yields anything.
var defaultTestSkills = []string{"JavaScript", "Node", "React", "SQL", "Git"}

const (
	StatusNotAttempted      = "not_attempted"
	StatusWeaklyVerified    = "weakly_verified"
	StatusPartiallyVerified = "partially_verified"
	StatusStronglyVerified  = "strongly_verified"
)

// SkillExtractor is the external collaborator that turns resume text into
// claimed skills. Implementations live in internal/service.
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, resumeText string, requiredSkills []string) (service.ExtractionResult, error)
}

// ClaimTest is the stored, un-stripped test. Immutable after creation.
type ClaimTest struct {
	TestID             string
	CreatedAt          time.Time
	ClaimedSkills      []string
	Questions          []question.Question
	RequestedCompanies []string
}

// CreatedClaimTest is the answer-stripped creation result.
type CreatedClaimTest struct {
	TestID        string            `json:"testId"`
	ClaimedSkills []string          `json:"claimedSkills"`
	QuestionCount int               `json:"questionCount"`
	Questions     []question.Public `json:"questions"`
}

type SkillScore struct {
	Skill string `json:"skill"`
	Score int    `json:"score"`
}

type ClaimResult struct {
	TestID            string       `json:"testId"`
	ClaimStatus       string       `json:"claimStatus"`
	AuthenticityScore int          `json:"authenticityScore"`
	SkillBreakdown    []SkillScore `json:"skillBreakdown"`
	Shortlist         []CompanyFit `json:"shortlist"`
}

// ClaimTestService owns the claim-test store. Tests never expire; see the
// store package note on eviction.
type ClaimTestService struct {
	extractor SkillExtractor
	tests     store.Store[ClaimTest]
	log       *zap.Logger
}

func NewClaimTestService(extractor SkillExtractor, tests store.Store[ClaimTest], log *zap.Logger) *ClaimTestService {
	return &ClaimTestService{extractor: extractor, tests: tests, log: log}
}

// Create extracts claimed skills from the resume, falls back to the
// requested companies' required skills and then to the default list, caps
// the claim list at eight entries, and stores a two-questions-per-skill
// test keyed by a fresh test id.
func (s *ClaimTestService) Create(ctx context.Context, resumeText string, requestedCompanies []string) (CreatedClaimTest, error) {
	extraction, err := s.extractor.ExtractSkills(ctx, resumeText, nil)
	if err != nil {
		return CreatedClaimTest{}, &ExtractionError{Message: "skill extraction failed", Err: err}
	}

	claimedSkills := skill.Dedupe(extraction.ExtractedSkills)
	if len(claimedSkills) == 0 {
		var fromCompanies []string
		for _, company := range catalog.Resolve(requestedCompanies) {
			for _, req := range company.RequiredSkills {
				fromCompanies = append(fromCompanies, req.Skill)
			}
		}
		claimedSkills = skill.Dedupe(fromCompanies)
	}
	if len(claimedSkills) == 0 {
		claimedSkills = append([]string(nil), defaultTestSkills...)
	}
	if len(claimedSkills) > maxClaimedSkills {
		claimedSkills = claimedSkills[:maxClaimedSkills]
	}

	questions := make([]question.Question, 0, 2*len(claimedSkills))
	for _, claimed := range claimedSkills {
		questions = append(questions, question.ForSkill(claimed)...)
	}

	testID := question.NewID("test")
	s.tests.Put(testID, ClaimTest{
		TestID:             testID,
		CreatedAt:          time.Now().UTC(),
		ClaimedSkills:      claimedSkills,
		Questions:          questions,
		RequestedCompanies: requestedCompanies,
	})
	s.log.Info("claim test created",
		zap.String("testId", testID),
		zap.Int("claimedSkills", len(claimedSkills)),
		zap.Int("questions", len(questions)))

	return CreatedClaimTest{
		TestID:        testID,
		ClaimedSkills: claimedSkills,
		QuestionCount: len(questions),
		Questions:     question.StripAll(questions),
	}, nil
}

// Evaluate grades a submission against the stored test. Unanswered
// questions are excluded from both the numerator and the denominator of a
// skill's score; the authenticity score averages over all claimed skills,
// so a claimed skill without answered questions counts as zero there.
// Grading is a pure computation, so resubmissions are safe.
func (s *ClaimTestService) Evaluate(testID string, answers []SubmittedAnswer, requestedCompanies []string) (ClaimResult, error) {
	test, ok := s.tests.Get(testID)
	if !ok {
		return ClaimResult{}, &NotFoundError{Message: "Invalid testId or test expired. Please generate a new test."}
	}

	submitted := answerMap(answers)

	type bucket struct {
		skill       string
		score       int
		totalWeight int
	}
	buckets := make(map[string]*bucket)
	var order []string
	answeredCount := 0

	for _, q := range test.Questions {
		token := skill.Normalize(q.Skill)
		b, seen := buckets[token]
		if !seen {
			b = &bucket{skill: q.Skill}
			buckets[token] = b
			order = append(order, token)
		}

		answer, submittedFor := submitted[q.ID]
		if !submittedFor {
			continue
		}
		option, valid := answer.selection()
		if !valid {
			continue
		}

		answeredCount++
		b.totalWeight += q.Weight
		if option == q.CorrectAnswer {
			b.score += q.Weight
		}
	}

	if answeredCount == 0 {
		return ClaimResult{
			TestID:            testID,
			ClaimStatus:       StatusNotAttempted,
			AuthenticityScore: 0,
			SkillBreakdown:    []SkillScore{},
			Shortlist:         []CompanyFit{},
		}, nil
	}

	skillScores := make(map[string]int, len(buckets))
	for token, b := range buckets {
		if b.totalWeight > 0 {
			skillScores[token] = roundPct(b.score, b.totalWeight)
		}
	}

	authenticityScore := 0
	if len(test.ClaimedSkills) > 0 {
		sum := 0
		for _, claimed := range test.ClaimedSkills {
			sum += skillScores[skill.Normalize(claimed)]
		}
		authenticityScore = int(math.Round(float64(sum) / float64(len(test.ClaimedSkills))))
	}

	breakdown := make([]SkillScore, 0, len(order))
	for _, token := range order {
		if b := buckets[token]; b.totalWeight > 0 {
			breakdown = append(breakdown, SkillScore{Skill: b.skill, Score: roundPct(b.score, b.totalWeight)})
		}
	}

	claimStatus := StatusWeaklyVerified
	switch {
	case authenticityScore >= 75:
		claimStatus = StatusStronglyVerified
	case authenticityScore >= 50:
		claimStatus = StatusPartiallyVerified
	}

	resolved := requestedCompanies
	if len(resolved) == 0 {
		resolved = test.RequestedCompanies
	}
	shortlist := BuildShortlist(skillScores, test.ClaimedSkills, catalog.Resolve(resolved))

	return ClaimResult{
		TestID:            testID,
		ClaimStatus:       claimStatus,
		AuthenticityScore: authenticityScore,
		SkillBreakdown:    breakdown,
		Shortlist:         shortlist,
	}, nil
}
