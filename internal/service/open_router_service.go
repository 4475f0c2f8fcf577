package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/fadilmartias/skill-verifier/internal/config"
)

const (
	openRouterURL   = "https://openrouter.ai/api/v1/chat/completions"
	openRouterModel = "openai/gpt-4o-mini"
)

type OpenRouterService struct {
	apiKey string
	client *resty.Client
	log    *zap.Logger
}

func NewOpenRouterService(log *zap.Logger) *OpenRouterService {
	return &OpenRouterService{
		apiKey: config.LoadOpenRouterConfig().APIKey,
		client: resty.New(),
		log:    log,
	}
}

func (s *OpenRouterService) ExtractSkills(ctx context.Context, resumeText string, requiredSkills []string) (ExtractionResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return ExtractionResult{}, errEmptyResumeText
	}

	required, _ := json.Marshal(requiredSkills)
	prompt := fmt.Sprintf(`Return strict JSON with keys: extractedSkills (string[]), improvementSuggestions (string).

Required skills (if provided): %s

Resume text:
%s`, string(required), resumeText)

	output, err := s.complete(ctx, "You are a resume analyzer.", prompt)
	if err != nil {
		s.log.Warn("openrouter extraction failed, using keyword fallback", zap.Error(err))
		return fallbackExtraction(resumeText,
			"Auto-fallback mode: improve missing required skills and add quantified project outcomes."), nil
	}
	return parseExtraction(output, resumeText), nil
}

func (s *OpenRouterService) GenerateProjectBlueprint(ctx context.Context, role string, missingSkills, extractedSkills []string) (Blueprint, error) {
	missing, _ := json.Marshal(missingSkills)
	extracted, _ := json.Marshal(extractedSkills)
	prompt := fmt.Sprintf(`Return strict JSON only with keys:
title (string),
summary (string),
milestones (array of {week:number,title:string,goal:string}),
deliverables (string[]),
resumeBullets (string[]).

Target role: %s
Missing skills: %s
Existing strengths: %s

Make the plan practical, measurable, and portfolio-friendly.`, role, string(missing), string(extracted))

	output, err := s.complete(ctx, "You are a career coach and engineering mentor.", prompt)
	if err != nil {
		s.log.Warn("openrouter blueprint generation failed, using fallback", zap.Error(err))
		return fallbackBlueprint(role, missingSkills, extractedSkills), nil
	}
	return parseBlueprint(output, role, missingSkills, extractedSkills), nil
}

func (s *OpenRouterService) complete(ctx context.Context, system, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OPENROUTER_API_KEY not set")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": openRouterModel,
			"messages": []map[string]string{
				{"role": "system", "content": system},
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned %s", resp.Status())
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content").String()
	if content == "" {
		return "", fmt.Errorf("empty completion in openrouter response")
	}
	return content, nil
}
