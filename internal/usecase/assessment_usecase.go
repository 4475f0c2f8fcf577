package usecase

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/fadilmartias/skill-verifier/internal/assessment"
	"github.com/fadilmartias/skill-verifier/internal/model"
	"github.com/fadilmartias/skill-verifier/internal/repository"
	"github.com/fadilmartias/skill-verifier/internal/service"
	"github.com/fadilmartias/skill-verifier/internal/skill"
)

const defaultPlanRole = "Backend Developer"

// AssessmentUsecase wires the assessment services together with the AI
// provider and the optional persistence mirror.
type AssessmentUsecase struct {
	claims     *assessment.ClaimTestService
	interviews *assessment.InterviewService
	ai         service.AIProvider
	repo       *repository.AssessmentRepository // nil when no database is configured
	log        *zap.Logger
}

func NewAssessmentUsecase(
	claims *assessment.ClaimTestService,
	interviews *assessment.InterviewService,
	ai service.AIProvider,
	repo *repository.AssessmentRepository,
	log *zap.Logger,
) *AssessmentUsecase {
	return &AssessmentUsecase{claims: claims, interviews: interviews, ai: ai, repo: repo, log: log}
}

type ResumeAnalysis struct {
	Score           int      `json:"score"`
	ExtractedSkills []string `json:"extractedSkills"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Suggestions     string   `json:"suggestions"`
}

// AnalyzeResume extracts skills from resume text and, when required skills
// were supplied, scores the overlap.
func (uc *AssessmentUsecase) AnalyzeResume(ctx context.Context, resumeText string, requiredSkills []string) (ResumeAnalysis, error) {
	extraction, err := uc.ai.ExtractSkills(ctx, resumeText, requiredSkills)
	if err != nil {
		return ResumeAnalysis{}, &assessment.ExtractionError{Message: "resume analysis failed", Err: err}
	}

	have := make(map[string]struct{}, len(extraction.ExtractedSkills))
	for _, extracted := range extraction.ExtractedSkills {
		have[skill.Normalize(extracted)] = struct{}{}
	}

	matched := []string{}
	missing := []string{}
	required := skill.Dedupe(requiredSkills)
	for _, req := range required {
		if _, ok := have[skill.Normalize(req)]; ok {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	score := 0
	if len(required) > 0 {
		score = int(math.Round(float64(len(matched)) / float64(len(required)) * 100))
	}

	return ResumeAnalysis{
		Score:           score,
		ExtractedSkills: extraction.ExtractedSkills,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Suggestions:     extraction.ImprovementSuggestions,
	}, nil
}

func (uc *AssessmentUsecase) GenerateClaimTest(ctx context.Context, resumeText string, companyIDs []string) (assessment.CreatedClaimTest, error) {
	created, err := uc.claims.Create(ctx, resumeText, companyIDs)
	if err != nil {
		return assessment.CreatedClaimTest{}, err
	}

	uc.mirror("claim test", func() error {
		return uc.repo.SaveClaimTest(&model.CandidateAssessment{
			TestID:        created.TestID,
			ClaimedSkills: mustJSON(created.ClaimedSkills),
			ClaimStatus:   "pending",
		})
	})
	return created, nil
}

func (uc *AssessmentUsecase) SubmitClaimTest(testID string, answers []assessment.SubmittedAnswer, companyIDs []string) (assessment.ClaimResult, error) {
	if strings.TrimSpace(testID) == "" {
		return assessment.ClaimResult{}, &assessment.ValidationError{Message: "testId is required"}
	}

	result, err := uc.claims.Evaluate(testID, answers, companyIDs)
	if err != nil {
		return assessment.ClaimResult{}, err
	}

	uc.mirror("claim result", func() error {
		return uc.repo.SaveClaimResult(&model.CandidateAssessment{
			TestID:            result.TestID,
			ClaimStatus:       result.ClaimStatus,
			AuthenticityScore: result.AuthenticityScore,
			Shortlist:         mustJSON(result.Shortlist),
		})
	})
	return result, nil
}

func (uc *AssessmentUsecase) StartInterview(companyID string, resumeSkills []string) (assessment.StartedInterview, error) {
	started := uc.interviews.Start(companyID, resumeSkills)

	uc.mirror("interview start", func() error {
		return uc.repo.SaveInterview(&model.InterviewRecord{
			SessionID: started.SessionID,
			CompanyID: started.Company.CompanyID,
		})
	})
	return started, nil
}

func (uc *AssessmentUsecase) SubmitInterview(sessionID string, answers []assessment.SubmittedAnswer) (assessment.InterviewResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return assessment.InterviewResult{}, &assessment.ValidationError{Message: "sessionId is required"}
	}

	result, err := uc.interviews.Evaluate(sessionID, answers)
	if err != nil {
		return assessment.InterviewResult{}, err
	}

	uc.mirror("interview result", func() error {
		return uc.repo.SaveInterview(&model.InterviewRecord{
			SessionID:      result.SessionID,
			CompanyID:      result.Company.CompanyID,
			OverallScore:   result.OverallScore,
			Recommendation: result.Recommendation,
			RoundBreakdown: mustJSON(result.RoundBreakdown),
		})
	})
	return result, nil
}

func (uc *AssessmentUsecase) GenerateProjectPlan(ctx context.Context, role string, missingSkills, extractedSkills []string) (service.Blueprint, error) {
	trimmedRole := strings.TrimSpace(role)
	if trimmedRole == "" {
		trimmedRole = defaultPlanRole
	}
	return uc.ai.GenerateProjectBlueprint(ctx, trimmedRole, missingSkills, extractedSkills)
}

// mirror runs a persistence write when a repository is configured. Mirror
// failures are logged and never fail the request; the in-memory store is
// the source of truth.
func (uc *AssessmentUsecase) mirror(what string, write func() error) {
	if uc.repo == nil {
		return
	}
	if err := write(); err != nil {
		uc.log.Warn("failed to mirror "+what, zap.Error(err))
	}
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}
