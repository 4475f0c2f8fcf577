package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListFromArray(t *testing.T) {
	var req SubmitClaimTestRequest
	require.NoError(t, json.Unmarshal([]byte(`{"testId":"t1","companyIds":["a","b"]}`), &req))
	assert.Equal(t, StringList{"a", "b"}, req.CompanyIDs)
}

func TestStringListFromCommaString(t *testing.T) {
	var req SubmitClaimTestRequest
	require.NoError(t, json.Unmarshal([]byte(`{"testId":"t1","companyIds":" a , ,b,"}`), &req))
	assert.Equal(t, StringList{"a", "b"}, req.CompanyIDs)
}

func TestAnswerSelectedOptionOmitted(t *testing.T) {
	var req SubmitClaimTestRequest
	require.NoError(t, json.Unmarshal([]byte(`{"testId":"t1","answers":[{"questionId":"q1"}]}`), &req))
	require.Len(t, req.Answers, 1)
	assert.Nil(t, req.Answers[0].SelectedOption)
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, ParseList("x, y"))
	assert.Nil(t, ParseList(""))
	assert.Nil(t, ParseList(" , ,"))
}
