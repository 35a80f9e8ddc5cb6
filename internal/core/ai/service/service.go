package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"nutriplan-api/internal/core/ai/cache"
	"nutriplan-api/internal/core/ai/openrouter"
	"nutriplan-api/internal/infrastructure/config"
	"nutriplan-api/internal/pkg/common"
)

// Response wraps a model completion.
type Response struct {
	Content string
}

// Service coordinates the OpenRouter client, the response cache, and the
// per-process request spacing.
type Service struct {
	config       *config.Config
	openRouter   *openrouter.Client
	cacheManager *cache.CacheManager
	mu           sync.Mutex
	lastRequest  time.Time
}

// NewService creates the AI service.
func NewService(cfg *config.Config, cacheManager *cache.CacheManager) (*Service, error) {
	return &Service{
		config:       cfg,
		openRouter:   openrouter.NewClient(cfg),
		cacheManager: cacheManager,
	}, nil
}

// ProcessRequest serves a prompt from cache when possible, otherwise calls the
// model and caches the result.
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (*Response, error) {
	if !s.config.OpenRouter.Enabled {
		return nil, common.ErrAIServiceError
	}
	if err := s.checkRequestRate(); err != nil {
		return nil, err
	}

	// Cache keys are derived from the prompt, so normalize whitespace first.
	cacheKey := strings.Join(strings.Fields(prompt), " ")

	if s.config.Cache.Enabled && s.cacheManager != nil {
		if val, err := s.cacheManager.Get(ctx, cacheKey); err == nil && val != "" {
			return &Response{Content: val}, nil
		}
	}

	start := time.Now()
	content, err := s.openRouter.Generate(ctx, prompt)
	common.LogAICall(prompt, time.Since(start), err, requestIDFrom(ctx))
	if err != nil {
		return nil, err
	}

	if s.config.Cache.Enabled && s.cacheManager != nil {
		_ = s.cacheManager.Set(ctx, cacheKey, content)
	}

	return &Response{Content: content}, nil
}

// requestIDFrom pulls the request id that the API layer stashes in the
// context, when present.
func requestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(common.RequestIDKey).(string); ok {
		return v
	}
	return ""
}

// checkRequestRate enforces a minimum spacing between model calls.
func (s *Service) checkRequestRate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if s.config.RateLimit.Enabled && now.Sub(s.lastRequest) < s.config.RateLimit.Window/time.Duration(max(s.config.RateLimit.Requests, 1)) {
		return common.ErrTooManyRequests
	}

	s.lastRequest = now
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
