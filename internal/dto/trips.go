package dto

import "wanderwise/internal/models"

// SaveTripRequest represents the payload to promote a candidate trip into the
// user's saved trips. The candidate is usually one of the recommendations the
// session already holds, but any well-formed record is accepted.
type SaveTripRequest struct {
	Trip models.TripRecord `json:"trip"`
}

// SaveTripResponse envelope
type SaveTripResponse struct {
	Trip models.TripRecord `json:"trip"`
}

// TripListResponse envelope for the user's saved trips
type TripListResponse struct {
	Trips []models.TripRecord `json:"trips"`
	Total int                 `json:"total"`
}

// TripDetailResponse envelope. Source reports where the record was resolved
// from: "saved", "recommendation" or "fallback".
type TripDetailResponse struct {
	Trip   models.TripRecord `json:"trip"`
	Source string            `json:"source"`
}
