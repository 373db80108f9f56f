package recommend

import (
	"fmt"
	"time"

	"wanderwise/internal/models"
)

// FallbackTrips is the fixed batch returned whenever generation fails. The
// ids are minted per call so they never collide with saved-trip ids.
func FallbackTrips() []models.TripRecord {
	now := time.Now().UnixMilli()
	return []models.TripRecord{
		{
			ID:          fmt.Sprintf("paris_france_%d_1", now),
			Destination: "Paris",
			Country:     "France",
			Description: "The City of Light offers iconic landmarks, world-class cuisine, and romantic ambiance. Perfect for art lovers and history enthusiasts.",
			ImageURL:    "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?q=80&w=2073&auto=format&fit=crop",
			Budget: models.TripBudget{
				Currency:            "USD",
				AverageDailyExpense: "$150-$250",
				TotalEstimate:       "$1,050-$1,750 for 7 days",
			},
			BestTimeToVisit:     "April to June or September to October",
			RecommendedDuration: "5-7 days",
			TripPlan: []models.TripPlanDay{
				{Day: 1, Activities: []string{"Eiffel Tower", "Seine River Cruise", "Dinner in Montmartre"}},
				{Day: 2, Activities: []string{"Louvre Museum", "Tuileries Garden", "Champs-Élysées shopping"}},
			},
			MustSeeAttractions: []string{"Eiffel Tower", "Louvre Museum", "Notre-Dame Cathedral"},
			LocalTips:          []string{"Buy a Paris Museum Pass for better value", "Use the Metro for transportation"},
		},
		{
			ID:          fmt.Sprintf("tokyo_japan_%d_2", now),
			Destination: "Tokyo",
			Country:     "Japan",
			Description: "A vibrant metropolis blending ultramodern and traditional, from neon-lit skyscrapers to historic temples. Experience unique culture, technology, and cuisine.",
			ImageURL:    "https://images.unsplash.com/photo-1503899036084-c55cdd92da26?q=80&w=1974&auto=format&fit=crop",
			Budget: models.TripBudget{
				Currency:            "USD",
				AverageDailyExpense: "$100-$200",
				TotalEstimate:       "$700-$1,400 for 7 days",
			},
			BestTimeToVisit:     "March to May or September to November",
			RecommendedDuration: "7-10 days",
			TripPlan: []models.TripPlanDay{
				{Day: 1, Activities: []string{"Senso-ji Temple", "Tokyo Skytree", "Akihabara district"}},
				{Day: 2, Activities: []string{"Meiji Shrine", "Harajuku", "Shibuya Crossing"}},
			},
			MustSeeAttractions: []string{"Tokyo Tower", "Imperial Palace", "Shinjuku Gyoen National Garden"},
			LocalTips:          []string{"Get a Suica or Pasmo card for public transport", "Try conveyor belt sushi restaurants for affordable meals"},
		},
	}
}

// FallbackAttractions is the fixed answer for a failed attraction search.
func FallbackAttractions(location string) []models.Attraction {
	return []models.Attraction{
		{
			ID:          "1",
			Name:        "Popular Attraction",
			Location:    location,
			Description: "A popular attraction in this area.",
			ImageURL:    "https://images.unsplash.com/photo-1558383817-c254bdbb8d95?q=80&w=1974&auto=format&fit=crop",
			Category:    "Tourist Spot",
			Rating:      "4.5",
			Tips:        "Visit early in the morning to avoid crowds.",
		},
	}
}
