package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/profile"
)

// DefaultTimeout bounds a single generator call.
const DefaultTimeout = 30 * time.Second

// ActivityRepository logs recommendation outcomes.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}

// Service handles recommendation requests.
type Service struct {
	generator  Generator
	activities ActivityRepository
	timeout    time.Duration
	logger     *slog.Logger
}

// NewService creates a recommendation service. A nil generator makes every
// request unavailable; a non-positive timeout uses DefaultTimeout.
func NewService(generator Generator, activities ActivityRepository, timeout time.Duration, logger *slog.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		generator:  generator,
		activities: activities,
		timeout:    timeout,
		logger:     logger,
	}
}

// Recommend asks the generator for recommendations for p. Only an invalid
// profile is returned as an error; generator failures yield an unavailable
// result.
func (s *Service) Recommend(ctx context.Context, p profile.Profile) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	result := Result{RequestID: uuid.NewString()}
	text, err := s.generate(ctx, p.Prompt())
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("recommendation unavailable", "request_id", result.RequestID, "error", err)
		}
		result.Message = UnavailableMessage
		s.logActivity(ctx, result, activity.TypeRecommendationUnavailable, err.Error())
		return result, nil
	}

	result.Available = true
	result.Text = text
	result.Message = "Recommendations:"
	s.logActivity(ctx, result, activity.TypeRecommendationServed, fmt.Sprintf("%d characters", len(text)))
	return result, nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	if s.generator == nil {
		return "", errNoGenerator
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)
	go func() {
		text, err := s.generator.Generate(ctx, prompt)
		done <- reply{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("generating recommendation: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("generating recommendation: %w", r.err)
		}
		text := strings.TrimSpace(r.text)
		if text == "" {
			return "", errEmptyResponse
		}
		return text, nil
	}
}

func (s *Service) logActivity(ctx context.Context, result Result, typ activity.ActivityType, summary string) {
	if s.activities == nil {
		return
	}
	requestID := result.RequestID
	err := s.activities.Log(ctx, &activity.ActivityEntry{
		RequestID:    &requestID,
		ActivityType: typ,
		Summary:      summary,
		CreatedAt:    time.Now(),
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("failed to log recommendation activity", "request_id", requestID, "error", err)
	}
}

var (
	errNoGenerator   = errors.New("no text generator configured")
	errEmptyResponse = errors.New("generator returned no text")
)
