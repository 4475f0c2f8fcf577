package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFallbackProviderExtractSkills(t *testing.T) {
	provider := NewFallbackProvider(zap.NewNop())

	result, err := provider.ExtractSkills(context.Background(),
		"Worked with React, Node and SQL on AWS. Strong git discipline.", nil)
	require.NoError(t, err)
	assert.Contains(t, result.ExtractedSkills, "React")
	assert.Contains(t, result.ExtractedSkills, "Node")
	assert.Contains(t, result.ExtractedSkills, "SQL")
	assert.Contains(t, result.ExtractedSkills, "AWS")
	assert.Contains(t, result.ExtractedSkills, "Git")
	assert.NotContains(t, result.ExtractedSkills, "Kubernetes")
	assert.NotEmpty(t, result.ImprovementSuggestions)
}

func TestFallbackProviderRejectsEmptyText(t *testing.T) {
	provider := NewFallbackProvider(zap.NewNop())
	_, err := provider.ExtractSkills(context.Background(), "   ", nil)
	assert.Error(t, err)
}

func TestFallbackBlueprintShape(t *testing.T) {
	provider := NewFallbackProvider(zap.NewNop())
	blueprint, err := provider.GenerateProjectBlueprint(context.Background(),
		"Backend Developer", []string{"Docker", "Kubernetes", "AWS", "Terraform"}, []string{"Go"})
	require.NoError(t, err)

	assert.Equal(t, "Backend Developer Gap-Closing Project", blueprint.Title)
	assert.Contains(t, blueprint.Summary, "Docker, Kubernetes, AWS")
	assert.NotContains(t, blueprint.Summary, "Terraform")
	require.Len(t, blueprint.Milestones, 3)
	assert.Equal(t, 1, blueprint.Milestones[0].Week)
	assert.NotEmpty(t, blueprint.Deliverables)
	assert.NotEmpty(t, blueprint.ResumeBullets)
}

func TestFallbackBlueprintUsesExtractedWhenNothingMissing(t *testing.T) {
	blueprint := fallbackBlueprint("Data Analyst", nil, []string{"Python", "SQL"})
	assert.Contains(t, blueprint.Summary, "Python, SQL")
}

func TestParseExtraction(t *testing.T) {
	result := parseExtraction(`{"extractedSkills":["Go"," React ",""],"improvementSuggestions":"Add impact."}`, "whatever")
	assert.Equal(t, []string{"Go", "React"}, result.ExtractedSkills)
	assert.Equal(t, "Add impact.", result.ImprovementSuggestions)
}

func TestParseExtractionFencedOutput(t *testing.T) {
	fenced := "```json\n{\"extractedSkills\":[\"SQL\"],\"improvementSuggestions\":\"x\"}\n```"
	result := parseExtraction(fenced, "whatever")
	assert.Equal(t, []string{"SQL"}, result.ExtractedSkills)
}

func TestParseExtractionUnparseableFallsBack(t *testing.T) {
	result := parseExtraction("sorry, I cannot help with that", "I know Python and SQL")
	assert.Contains(t, result.ExtractedSkills, "Python")
	assert.Contains(t, result.ExtractedSkills, "SQL")
	assert.NotEmpty(t, result.ImprovementSuggestions)
}

func TestParseBlueprintCapsLists(t *testing.T) {
	payload := `{"title":"T","summary":"S","milestones":[
		{"week":1,"title":"a","goal":"g"},{"week":2},{"week":3},{"week":4},{"week":5},{"week":6},{"week":7}],
		"deliverables":["1","2","3","4","5","6","7","8","9"],
		"resumeBullets":["1","2","3","4","5","6","7"]}`
	blueprint := parseBlueprint(payload, "Backend Developer", nil, nil)
	assert.Equal(t, "T", blueprint.Title)
	assert.Len(t, blueprint.Milestones, 6)
	assert.Len(t, blueprint.Deliverables, 8)
	assert.Len(t, blueprint.ResumeBullets, 6)
}

func TestParseBlueprintInvalidFallsBack(t *testing.T) {
	blueprint := parseBlueprint("not json", "Data Analyst", []string{"Statistics"}, nil)
	assert.Equal(t, "Data Analyst Gap-Closing Project", blueprint.Title)
	require.Len(t, blueprint.Milestones, 3)
}
