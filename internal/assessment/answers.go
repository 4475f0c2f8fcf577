package assessment

import "math"

// SubmittedAnswer is one answer in a grading request. SelectedOption is a
// pointer because an omitted selection must read as unanswered, not as
// option 0; fractional or negative values count as unanswered too.
type SubmittedAnswer struct {
	QuestionID     string
	SelectedOption *float64
}

func (a SubmittedAnswer) selection() (int, bool) {
	if a.SelectedOption == nil {
		return 0, false
	}
	v := *a.SelectedOption
	if v < 0 || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// answerMap indexes submissions by question id. Later duplicates win,
// matching the submission-as-map semantics of the API; validity of the
// selection is checked per question at grading time.
func answerMap(answers []SubmittedAnswer) map[string]SubmittedAnswer {
	submitted := make(map[string]SubmittedAnswer, len(answers))
	for _, answer := range answers {
		if answer.QuestionID == "" {
			continue
		}
		submitted[answer.QuestionID] = answer
	}
	return submitted
}

func roundPct(score, total int) int {
	return int(math.Round(float64(score) / float64(total) * 100))
}
