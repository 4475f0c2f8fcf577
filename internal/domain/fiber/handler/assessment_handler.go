package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fadilmartias/skill-verifier/internal/assessment"
	"github.com/fadilmartias/skill-verifier/internal/catalog"
	"github.com/fadilmartias/skill-verifier/internal/dto"
	"github.com/fadilmartias/skill-verifier/internal/middleware"
	"github.com/fadilmartias/skill-verifier/internal/usecase"
	"github.com/fadilmartias/skill-verifier/internal/util"
)

type AssessmentHandler struct {
	uc       *usecase.AssessmentUsecase
	validate *validator.Validate
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc, validate: validator.New()}
}

func (h *AssessmentHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/analyze-resume", middleware.RateLimiter(5, time.Minute), h.AnalyzeResume)
	app.Post("/generate-claim-test", middleware.RateLimiter(5, time.Minute), h.GenerateClaimTest)
	app.Post("/submit-claim-test", h.SubmitClaimTest)
	app.Post("/start-interview-sim", h.StartInterview)
	app.Post("/submit-interview-sim", h.SubmitInterview)
	app.Post("/generate-project-plan", middleware.RateLimiter(5, time.Minute), h.GenerateProjectPlan)
	app.Get("/companies", h.Companies)
}

func (h *AssessmentHandler) AnalyzeResume(c *fiber.Ctx) error {
	resumeText, err := h.processFile(c, "resume", "./uploads/resume/")
	if err != nil {
		return err
	}
	requiredSkills := dto.ParseList(c.FormValue("requiredSkills"))

	analysis, err := h.uc.AnalyzeResume(c.Context(), resumeText, requiredSkills)
	if err != nil {
		return h.domainError(c, "failed to analyze resume", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Resume analyzed",
		Data:    analysis,
	})
}

func (h *AssessmentHandler) GenerateClaimTest(c *fiber.Ctx) error {
	resumeText, err := h.processFile(c, "resume", "./uploads/resume/")
	if err != nil {
		return err
	}
	companyIDs := dto.ParseList(c.FormValue("companyIds"))

	created, err := h.uc.GenerateClaimTest(c.Context(), resumeText, companyIDs)
	if err != nil {
		return h.domainError(c, "failed to generate claim test", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Claim verification test generated",
		Data:    created,
		Meta:    fiber.Map{"availableCompanies": catalog.Summaries()},
	})
}

func (h *AssessmentHandler) SubmitClaimTest(c *fiber.Ctx) error {
	var req dto.SubmitClaimTestRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.uc.SubmitClaimTest(req.TestID, toAnswers(req.Answers), req.CompanyIDs)
	if err != nil {
		return h.domainError(c, "failed to grade claim test", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Claim test graded",
		Data:    result,
	})
}

func (h *AssessmentHandler) StartInterview(c *fiber.Ctx) error {
	var req dto.StartInterviewRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	started, err := h.uc.StartInterview(req.CompanyID, req.ResumeSkills)
	if err != nil {
		return h.domainError(c, "failed to start interview simulation", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview simulation started",
		Data:    started,
		Meta:    fiber.Map{"availableCompanies": catalog.Summaries()},
	})
}

func (h *AssessmentHandler) SubmitInterview(c *fiber.Ctx) error {
	var req dto.SubmitInterviewRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.uc.SubmitInterview(req.SessionID, toAnswers(req.Answers))
	if err != nil {
		return h.domainError(c, "failed to grade interview simulation", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Interview simulation graded",
		Data:    result,
	})
}

func (h *AssessmentHandler) GenerateProjectPlan(c *fiber.Ctx) error {
	var req dto.ProjectPlanRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	blueprint, err := h.uc.GenerateProjectPlan(c.Context(), req.Role, req.MissingSkills, req.ExtractedSkills)
	if err != nil {
		return h.domainError(c, "failed to generate project plan", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Project plan generated",
		Data:    blueprint,
	})
}

func (h *AssessmentHandler) Companies(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get companies",
		Data:    catalog.Summaries(),
	})
}

func (h *AssessmentHandler) parseBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "request validation failed",
		}, err)
	}
	return nil
}

// domainError maps the assessment error taxonomy onto HTTP statuses.
func (h *AssessmentHandler) domainError(c *fiber.Ctx, message string, err error) error {
	var notFound *assessment.NotFoundError
	if errors.As(err, &notFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: notFound.Message,
		})
	}

	var validation *assessment.ValidationError
	if errors.As(err, &validation) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: validation.Message,
		})
	}

	var extraction *assessment.ExtractionError
	if errors.As(err, &extraction) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: extraction.Message,
		}, err)
	}

	return util.ErrorResponse(c, util.ErrorResponseFormat{Message: message}, err)
}

func (h *AssessmentHandler) processFile(c *fiber.Ctx, fieldName, uploadDir string) (string, error) {
	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file is required", fieldName),
		}, err)
	}

	if file.Size > 5*1024*1024 {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("%s file size is too large (max 5MB)", fieldName),
		})
	}

	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("unsupported %s file type", fieldName),
		})
	}

	savePath := filepath.Join(uploadDir, file.Filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: fmt.Sprintf("cannot save %s file", fieldName),
		}, err)
	}

	content, err := util.ExtractPDFText(savePath)
	if err != nil {
		return "", util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("failed to extract %s text", fieldName),
		}, err)
	}
	return content, nil
}

func toAnswers(answers []dto.AnswerRequest) []assessment.SubmittedAnswer {
	converted := make([]assessment.SubmittedAnswer, 0, len(answers))
	for _, answer := range answers {
		converted = append(converted, assessment.SubmittedAnswer{
			QuestionID:     answer.QuestionID,
			SelectedOption: answer.SelectedOption,
		})
	}
	return converted
}
