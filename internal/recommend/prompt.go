package recommend

import "fmt"

// BuildRecommendationPrompt renders the generation request for a batch of
// five destination recommendations matching the user's preferences.
func BuildRecommendationPrompt(prefs Preferences) string {
	prefs = prefs.withDefaults()
	return fmt.Sprintf(`Act as an AI travel assistant. Recommend 5 travel destinations based on the following preferences:
- Interests: %s
- Budget: %s
- Season: %s
- Trip Duration: %s

Provide a structured response in JSON format with an array of 5 destinations:
[
  {
    "id": "unique_id_1",
    "destination": "Name of the destination",
    "country": "Country name",
    "description": "A brief 2-3 sentence description of the destination",
    "imageUrl": "A URL to a high-quality image of the destination",
    "budget": {
      "currency": "USD",
      "averageDailyExpense": "Amount per day",
      "totalEstimate": "Total estimated cost"
    },
    "bestTimeToVisit": "Best months or season to visit",
    "recommendedDuration": "Recommended number of days",
    "tripPlan": [
      {"day": 1, "activities": ["Morning activity", "Afternoon activity", "Evening activity"]},
      {"day": 2, "activities": ["Morning activity", "Afternoon activity", "Evening activity"]}
    ],
    "mustSeeAttractions": ["Attraction 1", "Attraction 2", "Attraction 3"],
    "localTips": ["Tip 1", "Tip 2"]
  }
]

IMPORTANT: Make sure each destination has a UNIQUE ID (like unique_id_1, unique_id_2, etc). Do not use simple numbers like 1, 2, 3 as IDs. Make sure the response is valid JSON and includes realistic information for all 5 destinations.`,
		prefs.interestsLabel(), prefs.Budget, prefs.Season, prefs.TripDuration)
}

// BuildAttractionsPrompt renders the generation request for attractions near
// a location.
func BuildAttractionsPrompt(location string) string {
	return fmt.Sprintf(`Act as a travel guide. I'm looking for attractions near %s.
Provide a structured response in JSON format with an array of 5 attractions:
[
  {
    "id": "1",
    "name": "Attraction name",
    "location": "%s",
    "description": "A brief description of the attraction",
    "imageUrl": "A URL to a high-quality image of the attraction (use unsplash.com)",
    "category": "Type of attraction (e.g., Historical, Natural, Cultural)",
    "rating": "Rating out of 5",
    "tips": "A useful tip for visitors"
  }
]

Make sure the response is valid JSON and includes realistic information for all 5 attractions.`,
		location, location)
}
