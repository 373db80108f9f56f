package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRecommendationPromptDefaults(t *testing.T) {
	prompt := BuildRecommendationPrompt(Preferences{})

	assert.Contains(t, prompt, "- Interests: general tourism")
	assert.Contains(t, prompt, "- Budget: medium")
	assert.Contains(t, prompt, "- Season: summer")
	assert.Contains(t, prompt, "- Trip Duration: 7 days")
	assert.Contains(t, prompt, "UNIQUE ID")
}

func TestBuildRecommendationPromptWithPreferences(t *testing.T) {
	prompt := BuildRecommendationPrompt(Preferences{
		Interests:    []string{"food", "hiking"},
		Budget:       "low",
		Season:       "winter",
		TripDuration: "10 days",
	})

	assert.Contains(t, prompt, "- Interests: food, hiking")
	assert.Contains(t, prompt, "- Budget: low")
	assert.Contains(t, prompt, "- Season: winter")
	assert.Contains(t, prompt, "- Trip Duration: 10 days")
}

func TestBuildAttractionsPrompt(t *testing.T) {
	prompt := BuildAttractionsPrompt("Rome")

	assert.Contains(t, prompt, "attractions near Rome")
	assert.Contains(t, prompt, `"location": "Rome"`)
}
