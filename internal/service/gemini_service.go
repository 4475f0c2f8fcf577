package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/fadilmartias/skill-verifier/internal/config"
)

const geminiModel = "gemini-2.5-flash"

type GeminiService struct {
	client         *genai.Client
	log            *zap.Logger
	maxRetries     int
	baseDelay      time.Duration
	maxDelay       time.Duration
	requestTimeout time.Duration

	mu                sync.Mutex
	consecutiveErrors int
	circuitBreakerMax int
}

func NewGeminiService(ctx context.Context, log *zap.Logger) (*GeminiService, error) {
	apiKey := config.LoadGeminiConfig().APIKey
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiService{
		client:            client,
		log:               log,
		maxRetries:        3,
		baseDelay:         time.Second,
		maxDelay:          90 * time.Second,
		requestTimeout:    90 * time.Second,
		circuitBreakerMax: 5,
	}, nil
}

func (s *GeminiService) ExtractSkills(ctx context.Context, resumeText string, requiredSkills []string) (ExtractionResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return ExtractionResult{}, errEmptyResumeText
	}

	required, _ := json.Marshal(requiredSkills)
	prompt := fmt.Sprintf(`You are a resume analyzer. Return strict JSON with keys: extractedSkills (string[]), improvementSuggestions (string).

Required skills (if provided): %s

Resume text:
%s`, string(required), resumeText)

	output, err := s.generateText(ctx, prompt)
	if err != nil {
		s.log.Warn("gemini extraction failed, using keyword fallback", zap.Error(err))
		return fallbackExtraction(resumeText,
			"Auto-fallback mode: improve missing required skills and add quantified project outcomes."), nil
	}
	return parseExtraction(output, resumeText), nil
}

func (s *GeminiService) GenerateProjectBlueprint(ctx context.Context, role string, missingSkills, extractedSkills []string) (Blueprint, error) {
	missing, _ := json.Marshal(missingSkills)
	extracted, _ := json.Marshal(extractedSkills)
	prompt := fmt.Sprintf(`You are a career coach and engineering mentor.
Return strict JSON only with keys:
title (string),
summary (string),
milestones (array of {week:number,title:string,goal:string}),
deliverables (string[]),
resumeBullets (string[]).

Target role: %s
Missing skills: %s
Existing strengths: %s

Make the plan practical, measurable, and portfolio-friendly.`, role, string(missing), string(extracted))

	output, err := s.generateText(ctx, prompt)
	if err != nil {
		s.log.Warn("gemini blueprint generation failed, using fallback", zap.Error(err))
		return fallbackBlueprint(role, missingSkills, extractedSkills), nil
	}
	return parseBlueprint(output, role, missingSkills, extractedSkills), nil
}

func (s *GeminiService) generateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if open, count := s.breakerOpen(); open {
		return "", fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", count)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.log.Info("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Int("maxRetries", s.maxRetries),
				zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return "", fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := s.client.Models.GenerateContent(
			timeoutCtx,
			geminiModel,
			genai.Text(prompt),
			&genai.GenerateContentConfig{
				Temperature: genai.Ptr(float32(0.1)),
			},
		)
		if err == nil {
			s.recordSuccess()
			if err := validateGenerateResponse(result); err != nil {
				return "", fmt.Errorf("invalid response: %w", err)
			}
			return result.Text(), nil
		}

		lastErr = err
		if !isRetryableError(err) {
			s.recordFailure()
			return "", fmt.Errorf("generate content failed: %w", err)
		}
		s.log.Warn("retryable gemini error", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.recordFailure()
	return "", fmt.Errorf("max retries (%d) exceeded: %w", s.maxRetries, lastErr)
}

func (s *GeminiService) breakerOpen() (bool, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consecutiveErrors >= s.circuitBreakerMax, s.consecutiveErrors
}

func (s *GeminiService) recordSuccess() {
	s.mu.Lock()
	s.consecutiveErrors = 0
	s.mu.Unlock()
}

func (s *GeminiService) recordFailure() {
	s.mu.Lock()
	s.consecutiveErrors++
	s.mu.Unlock()
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.baseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > s.maxDelay {
		delay = s.maxDelay
	}
	// random jitter so concurrent retries do not align
	return delay - delay/8 + time.Duration(rand.Int64N(int64(delay/4)))
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	if strings.Contains(msg, "context canceled") ||
		strings.Contains(msg, "context deadline exceeded") {
		return false
	}
	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		case 400, 401, 403, 404:
			return false
		}
	}
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "temporary failure") ||
		strings.Contains(msg, "EOF")
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
