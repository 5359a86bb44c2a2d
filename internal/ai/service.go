package ai

import (
	"context"
	"time"

	enhdomain "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/enhancements/domain"
	enhrepo "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/enhancements/repository"
)

// EnhanceResult is the payload returned after generating and storing an
// enhancement suggestion.
type EnhanceResult struct {
	EnhancementID string `json:"enhancement_id"`
	AISuggestion  string `json:"ai_suggestion"`
	Feature       string `json:"feature"`
	Type          string `json:"type"`
}

// Recommendations is the payload for mood/genre music recommendations.
type Recommendations struct {
	Recommendations string    `json:"recommendations"`
	Mood            string    `json:"mood"`
	Genre           string    `json:"genre"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// Service handles the generative AI endpoints. A nil Generator means the
// integration is not configured.
type Service struct {
	gen          Generator
	enhancements *enhrepo.EnhancementRepository
}

// NewService creates the AI service.
func NewService(gen Generator, enhancements *enhrepo.EnhancementRepository) *Service {
	return &Service{
		gen:          gen,
		enhancements: enhancements,
	}
}

// Configured reports whether a generator is available.
func (s *Service) Configured() bool {
	return s.gen != nil
}

// EnhanceMusicJam asks the model for feature improvement suggestions and
// stores the result as an enhancement record.
func (s *Service) EnhanceMusicJam(ctx context.Context, feature, enhancementType string, preferences map[string]any) (*EnhanceResult, error) {
	if s.gen == nil {
		return nil, ErrNotConfigured
	}

	suggestion, err := s.gen.Generate(ctx, EnhancementPrompt(feature, enhancementType, preferences))
	if err != nil {
		return nil, err
	}

	record := &enhdomain.Enhancement{
		FeatureName:     feature,
		EnhancementType: enhancementType,
		AISuggestion:    suggestion,
	}
	if err := s.enhancements.Create(ctx, record); err != nil {
		return nil, err
	}

	return &EnhanceResult{
		EnhancementID: record.ID,
		AISuggestion:  suggestion,
		Feature:       feature,
		Type:          enhancementType,
	}, nil
}

// RecommendMusic asks the model for song recommendations for a mood and
// genre preference. Nothing is persisted.
func (s *Service) RecommendMusic(ctx context.Context, mood, genre string) (*Recommendations, error) {
	if s.gen == nil {
		return nil, ErrNotConfigured
	}

	text, err := s.gen.Generate(ctx, RecommendationPrompt(mood, genre))
	if err != nil {
		return nil, err
	}

	return &Recommendations{
		Recommendations: text,
		Mood:            mood,
		Genre:           genre,
		GeneratedAt:     time.Now(),
	}, nil
}
