package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hakwonlab/acadpanel/logger"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	aiMaxRequestsPerMinute = 10
	aiCacheDuration        = 5 * time.Minute
	aiRequestTimeout       = 15 * time.Second
	aiMaxTokens            = 512
	aiTemperature          = 0.4

	aiSystemPrompt = `You are an assistant for an academy management panel used by Korean
private academies (hakwon). Teachers paste rough consultation notes about a
student; you produce a short, professional summary a parent-facing record
can keep. Reply in the same language as the notes. Output plain text only,
at most three sentences, no markdown.`
)

type aiRateState struct {
	requests  int
	resetTime time.Time
}

type aiCacheEntry struct {
	response  string
	timestamp time.Time
}

// AIService wraps the Gemini API for consultation summary suggestions.
type AIService struct {
	settingService SettingService

	client *genai.Client
	model  *genai.GenerativeModel
	mu     sync.Mutex

	cache       sync.Map
	rateLimiter map[int]*aiRateState
	rateMu      sync.Mutex
}

func NewAIService() *AIService {
	return &AIService{
		rateLimiter: make(map[int]*aiRateState),
	}
}

// ensureClient lazily builds the Gemini client from current settings. The
// key can be changed at runtime from the settings page, so a nil client is
// retried on every call rather than only at startup.
func (s *AIService) ensureClient(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return nil
	}

	apiKey, err := s.settingService.GetAiApiKey()
	if err != nil {
		return err
	}
	if apiKey == "" {
		return ErrFeatureDisabled
	}
	modelName, err := s.settingService.GetAiModel()
	if err != nil {
		return err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(aiMaxTokens)
	model.SetTemperature(aiTemperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(aiSystemPrompt)},
	}

	s.client = client
	s.model = model
	logger.Info("AI service: Gemini client initialized")
	return nil
}

// SuggestSummary produces a summary suggestion for consultation notes.
// Disabled feature and per-user rate limits surface as sentinel errors the
// controller maps to localized toasts.
func (s *AIService) SuggestSummary(ctx context.Context, userId int, notes string) (string, error) {
	enabled, err := s.settingService.GetAiEnable()
	if err != nil {
		return "", err
	}
	if !enabled {
		return "", ErrFeatureDisabled
	}

	notes = strings.TrimSpace(notes)
	if notes == "" {
		return "", newFieldError("notes", "failed on 'required' rule")
	}

	if !s.checkRateLimit(userId) {
		return "", ErrConflict
	}

	cacheKey := fmt.Sprintf("%d:%s", userId, notes)
	if cached, ok := s.cache.Load(cacheKey); ok {
		entry := cached.(aiCacheEntry)
		if time.Since(entry.timestamp) < aiCacheDuration {
			return entry.response, nil
		}
	}

	if err := s.ensureClient(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, aiRequestTimeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text("Consultation notes:\n"+notes))
	if err != nil {
		logger.Warning("AI service: generation failed:", err)
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}
	summary := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))

	s.cache.Store(cacheKey, aiCacheEntry{response: summary, timestamp: time.Now()})
	return summary, nil
}

func (s *AIService) checkRateLimit(userId int) bool {
	now := time.Now()

	s.rateMu.Lock()
	defer s.rateMu.Unlock()

	state, exists := s.rateLimiter[userId]
	if !exists || now.After(state.resetTime) {
		s.rateLimiter[userId] = &aiRateState{
			requests:  1,
			resetTime: now.Add(time.Minute),
		}
		return true
	}
	if state.requests >= aiMaxRequestsPerMinute {
		return false
	}
	state.requests++
	return true
}

// Reset drops the cached client so the next call picks up new credentials.
func (s *AIService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		s.client.Close()
		s.client = nil
		s.model = nil
	}
}
