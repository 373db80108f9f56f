package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"wanderwise/internal/dto"
	"wanderwise/internal/recommend"
	"wanderwise/internal/session"
	"wanderwise/internal/utils"
)

// RecommendationsHandler serves AI-generated travel suggestions
type RecommendationsHandler struct {
	client   *recommend.Client
	sessions *session.Manager
	logger   *zap.Logger
}

// NewRecommendationsHandler creates a new RecommendationsHandler
func NewRecommendationsHandler(client *recommend.Client, sessions *session.Manager, logger *zap.Logger) *RecommendationsHandler {
	return &RecommendationsHandler{client: client, sessions: sessions, logger: logger}
}

// Recommendations handles POST /api/recommendations
// @Summary Generate trip recommendations
// @Description Generate destination recommendations for the given preferences
// @Description and store them in the session for later lookup. Generation
// @Description failures degrade to a fixed fallback batch, never an error.
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.RecommendationsRequest true "Trip preferences"
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/recommendations [post]
func (h *RecommendationsHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	sess, err := h.sessions.Session(userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Session expired, sign in again")
		return
	}

	var req dto.RecommendationsRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	batch := h.client.RequestRecommendations(r.Context(), recommend.Preferences{
		Interests:    req.Interests,
		Budget:       req.Budget,
		Season:       req.Season,
		TripDuration: req.TripDuration,
	})

	sess.StoreRecommendations(batch)
	utils.WriteJSONResponse(w, http.StatusOK, dto.RecommendationsResponse{Recommendations: batch})
}

// Attractions handles GET /api/attractions
// @Summary Search nearby attractions
// @Description Return points of interest near the given location.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param location query string true "Location to search around"
// @Success 200 {object} dto.AttractionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/attractions [get]
func (h *RecommendationsHandler) Attractions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	location := r.URL.Query().Get("location")
	if location == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "location is required")
		return
	}

	attractions := h.client.SearchNearbyAttractions(r.Context(), location)
	utils.WriteJSONResponse(w, http.StatusOK, dto.AttractionsResponse{
		Location:    location,
		Attractions: attractions,
	})
}
