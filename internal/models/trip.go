package models

import "time"

// TripRecord is the canonical trip entity. A record starts life as either an
// AI recommendation or a fallback template and becomes a saved trip once it
// is promoted through the reconciliation engine, which mints its final ID,
// stamps AddedAt and fills StorageRef after the write succeeds.
type TripRecord struct {
	ID                  string        `json:"id"`
	Destination         string        `json:"destination"`
	Country             string        `json:"country"`
	Description         string        `json:"description"`
	ImageURL            string        `json:"imageUrl"`
	BestTimeToVisit     string        `json:"bestTimeToVisit"`
	RecommendedDuration string        `json:"recommendedDuration"`
	Budget              TripBudget    `json:"budget"`
	TripPlan            []TripPlanDay `json:"tripPlan"`
	MustSeeAttractions  []string      `json:"mustSeeAttractions"`
	LocalTips           []string      `json:"localTips"`
	AddedAt             *time.Time    `json:"addedAt,omitempty"`
	// StorageRef is assigned by the document store on a successful write.
	// A record carries a StorageRef if and only if it is durably persisted.
	StorageRef string `json:"storageRef,omitempty"`
}

// TripBudget holds the cost estimate attached to a trip.
type TripBudget struct {
	Currency            string `json:"currency"`
	AverageDailyExpense string `json:"averageDailyExpense"`
	TotalEstimate       string `json:"totalEstimate"`
}

// TripPlanDay is one day of an itinerary.
type TripPlanDay struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

// SameDestination reports whether two records describe the same logical trip.
// De-duplication runs on the (destination, country) natural key, never on ID,
// because the same destination carries different IDs across its
// recommendation and saved forms.
func (t TripRecord) SameDestination(other TripRecord) bool {
	return t.Destination == other.Destination && t.Country == other.Country
}

// Attraction is a point of interest near a searched location.
type Attraction struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Rating      string `json:"rating"`
	Tips        string `json:"tips"`
}
