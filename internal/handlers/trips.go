package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"wanderwise/internal/dto"
	"wanderwise/internal/session"
	"wanderwise/internal/trips"
	"wanderwise/internal/utils"
)

// TripsHandler manages saved-trip endpoints
type TripsHandler struct {
	sessions *session.Manager
	logger   *zap.Logger
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(sessions *session.Manager, logger *zap.Logger) *TripsHandler {
	return &TripsHandler{sessions: sessions, logger: logger}
}

// Trips dispatches by HTTP method for /api/trips
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.SaveTrip(w, r)
	case http.MethodGet:
		// If path has an ID suffix, treat as detail
		if strings.HasPrefix(r.URL.Path, "/api/trips/") && len(r.URL.Path) > len("/api/trips/") {
			h.TripDetail(w, r)
			return
		}
		h.ListTrips(w, r)
	case http.MethodDelete:
		h.DeleteTrip(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ListTrips handles GET /api/trips
// @Summary List saved trips
// @Description Return the authenticated user's saved trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.TripListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	saved := sess.SavedTrips()
	utils.WriteJSONResponse(w, http.StatusOK, dto.TripListResponse{
		Trips: saved,
		Total: len(saved),
	})
}

// SaveTrip handles POST /api/trips
// @Summary Save a trip
// @Description Promote a candidate trip into the user's saved trips. Saving
// @Description the same (destination, country) twice returns the first record
// @Description unchanged.
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SaveTripRequest true "Candidate trip"
// @Success 201 {object} dto.SaveTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [post]
func (h *TripsHandler) SaveTrip(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req dto.SaveTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	if req.Trip.Destination == "" || req.Trip.Country == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "destination and country are required")
		return
	}

	stored, err := sess.AddTrip(r.Context(), req.Trip)
	if err != nil {
		h.writeTripError(w, "save trip", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.SaveTripResponse{Trip: stored})
}

// DeleteTrip handles DELETE /api/trips/{id}
// @Summary Remove a saved trip
// @Description Remove a trip by id. A recommendation-era id is resolved to
// @Description the saved trip with the same destination and country; an id
// @Description matching nothing is a no-op.
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip id"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{id} [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/trips/")
	if id == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "trip id is required")
		return
	}

	if err := sess.RemoveTrip(r.Context(), id); err != nil {
		h.writeTripError(w, "remove trip", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Trip removed"})
}

// TripDetail handles GET /api/trips/{id}
// @Summary Trip detail
// @Description Resolve a trip id against saved trips, then the current
// @Description recommendations, then the fallback catalog.
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip id"
// @Success 200 {object} dto.TripDetailResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/trips/")
	rec, source := sess.FindTripWithFallback(id)
	if source == "" {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripDetailResponse{Trip: rec, Source: source})
}

func (h *TripsHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return nil, false
	}

	sess, err := h.sessions.Session(userID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Session expired, sign in again")
		return nil, false
	}
	return sess, true
}

func (h *TripsHandler) writeTripError(w http.ResponseWriter, op string, err error) {
	var perr *trips.PersistenceError
	switch {
	case errors.Is(err, trips.ErrNotAuthenticated):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Sign in to manage trips")
	case errors.Is(err, trips.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
	case errors.As(err, &perr):
		h.logger.Error(op+" failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
