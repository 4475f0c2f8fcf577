package dto

import (
	"encoding/json"
	"strings"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Clients send company ids and skill lists both
// ways; the coercion stays here so the core only ever sees []string.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*s = asList
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*s = ParseList(asString)
	return nil
}

// ParseList splits a comma-separated value, trimming each entry and
// dropping empties. Used for form fields on the upload routes too.
func ParseList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

type AnswerRequest struct {
	QuestionID string `json:"questionId"`
	// pointer + float so that an omitted or fractional selection reads as
	// unanswered instead of option 0
	SelectedOption *float64 `json:"selectedOption"`
}

type SubmitClaimTestRequest struct {
	TestID     string          `json:"testId" validate:"required"`
	Answers    []AnswerRequest `json:"answers"`
	CompanyIDs StringList      `json:"companyIds"`
}

type StartInterviewRequest struct {
	CompanyID    string     `json:"companyId"`
	ResumeSkills StringList `json:"resumeSkills"`
}

type SubmitInterviewRequest struct {
	SessionID string          `json:"sessionId" validate:"required"`
	Answers   []AnswerRequest `json:"answers"`
}

type ProjectPlanRequest struct {
	Role            string     `json:"role"`
	MissingSkills   StringList `json:"missingSkills"`
	ExtractedSkills StringList `json:"extractedSkills"`
}
