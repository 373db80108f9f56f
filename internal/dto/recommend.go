package dto

import "wanderwise/internal/models"

// RecommendationsRequest carries the user's trip preferences. All fields are
// optional; the client fills documented defaults for anything missing.
type RecommendationsRequest struct {
	Interests    []string `json:"interests"`
	Budget       string   `json:"budget"`        // low | medium | high, default medium
	Season       string   `json:"season"`        // default summer
	TripDuration string   `json:"trip_duration"` // default "7 days"
}

// RecommendationsResponse envelope
type RecommendationsResponse struct {
	Recommendations []models.TripRecord `json:"recommendations"`
}

// AttractionsResponse envelope for nearby attraction search
type AttractionsResponse struct {
	Location    string              `json:"location"`
	Attractions []models.Attraction `json:"attractions"`
}
