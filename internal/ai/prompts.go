package ai

import (
	"encoding/json"
	"fmt"
)

const enhancementPromptTemplate = `Suggest improvements for the MusicJam music application feature: %s
Enhancement type: %s
User preferences: %s

Provide specific, actionable suggestions for implementation including:
1. Technical approach
2. User experience improvements
3. Integration possibilities
4. Code snippets if applicable

Focus on creating engaging music discovery and social features.`

const recommendationPromptTemplate = `Generate music recommendations for:
Mood: %s
Genre preference: %s

Provide 5 song recommendations with:
1. Song title and artist
2. Why it fits the mood/genre
3. Spotify search query format

Format as JSON array.`

// EnhancementPrompt builds the prompt for a MusicJam feature enhancement.
func EnhancementPrompt(feature, enhancementType string, preferences map[string]any) string {
	prefs := "None specified"
	if len(preferences) > 0 {
		if data, err := json.Marshal(preferences); err == nil {
			prefs = string(data)
		}
	}
	return fmt.Sprintf(enhancementPromptTemplate, feature, enhancementType, prefs)
}

// RecommendationPrompt builds the prompt for mood/genre music recommendations.
func RecommendationPrompt(mood, genre string) string {
	return fmt.Sprintf(recommendationPromptTemplate, mood, genre)
}
