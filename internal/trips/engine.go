package trips

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"wanderwise/internal/identity"
	"wanderwise/internal/models"
)

// Engine reconciles the three trip sources a session sees: savedTrips
// (authoritative, backed by the repository), recommendations (ephemeral,
// replaced wholesale on each fetch) and a constant fallback catalog.
//
// The engine does no locking of its own. Reads may run concurrently, but
// callers must serialize AddTrip/RemoveTrip/Load/Clear; the session manager
// holds a per-session mutex for exactly that.
type Engine struct {
	repo     Repository
	identity *identity.Store
	logger   *zap.Logger

	saved           []models.TripRecord
	recommendations []models.TripRecord
	fallback        []models.TripRecord
}

// NewEngine creates a reconciliation engine for one session
func NewEngine(repo Repository, ids *identity.Store, fallback []models.TripRecord, logger *zap.Logger) *Engine {
	return &Engine{
		repo:            repo,
		identity:        ids,
		logger:          logger,
		saved:           []models.TripRecord{},
		recommendations: []models.TripRecord{},
		fallback:        fallback,
	}
}

// Load fetches the identity's saved trips from the repository. Saved trips
// are loaded once per sign-in and held for the session.
func (e *Engine) Load(ctx context.Context) error {
	saved, err := e.repo.ListTrips(ctx, e.identity.Current())
	if err != nil {
		return err
	}
	e.saved = saved
	return nil
}

// Clear drops all mutable in-memory state. Called on sign-out.
func (e *Engine) Clear() {
	e.saved = []models.TripRecord{}
	e.recommendations = []models.TripRecord{}
}

// StoreRecommendations replaces the recommendation set wholesale. No
// de-duplication against saved trips happens here; duplicates are resolved
// at add-time.
func (e *Engine) StoreRecommendations(list []models.TripRecord) {
	if list == nil {
		list = []models.TripRecord{}
	}
	e.recommendations = list
}

// SavedTrips returns the session's saved trips
func (e *Engine) SavedTrips() []models.TripRecord {
	return e.saved
}

// Recommendations returns the current recommendation set
func (e *Engine) Recommendations() []models.TripRecord {
	return e.recommendations
}

// FindTripByID looks an id up in saved trips first, then recommendations.
// The fallback catalog is never consulted here; see FindTripWithFallback.
func (e *Engine) FindTripByID(id string) (models.TripRecord, bool) {
	if rec, ok := lo.Find(e.saved, func(t models.TripRecord) bool { return t.ID == id }); ok {
		return rec, true
	}
	return lo.Find(e.recommendations, func(t models.TripRecord) bool { return t.ID == id })
}

// FindTripWithFallback is the presentation-layer lookup: saved trips, then
// recommendations, then the fallback catalog (matching id or, failing that,
// its first entry). The source tells the caller which table answered.
func (e *Engine) FindTripWithFallback(id string) (models.TripRecord, string) {
	if rec, ok := e.FindTripByID(id); ok {
		if rec.StorageRef != "" {
			return rec, "saved"
		}
		return rec, "recommendation"
	}
	if rec, ok := lo.Find(e.fallback, func(t models.TripRecord) bool { return t.ID == id }); ok {
		return rec, "fallback"
	}
	if len(e.fallback) == 0 {
		return models.TripRecord{}, ""
	}
	return e.fallback[0], "fallback"
}

// AddTrip promotes a candidate into the saved set. Add is idempotent by the
// (destination, country) natural key, not by id: re-adding a destination
// returns the already-saved record unchanged with no repository write.
func (e *Engine) AddTrip(ctx context.Context, candidate models.TripRecord) (models.TripRecord, error) {
	if existing, ok := lo.Find(e.saved, candidate.SameDestination); ok {
		return existing, nil
	}

	now := time.Now()
	minted := NormalizeRecord(candidate)
	minted.ID = e.uniqueTripID(candidate.Destination, now)
	minted.AddedAt = &now
	minted.StorageRef = ""

	stored, err := e.repo.InsertTrip(ctx, e.identity.Current(), minted)
	if err != nil {
		// No optimistic insert: saved stays untouched on failure.
		return models.TripRecord{}, err
	}

	e.saved = append(e.saved, stored)
	e.logger.Info("trip saved",
		zap.String("id", stored.ID),
		zap.String("destination", stored.Destination),
		zap.String("country", stored.Country))
	return stored, nil
}

// RemoveTrip deletes a saved trip. The id may be a recommendation-era id for
// a destination already saved under a different id, so an unmatched id is
// resolved through the natural key before giving up. An id that matches
// nothing is a no-op.
func (e *Engine) RemoveTrip(ctx context.Context, id string) error {
	target, ok := lo.Find(e.saved, func(t models.TripRecord) bool { return t.ID == id })
	if !ok {
		target, ok = e.resolveByNaturalKey(id)
	}
	if !ok {
		return nil
	}

	if err := e.repo.DeleteTrip(ctx, e.identity.Current(), target.StorageRef); err != nil {
		return err
	}

	e.saved = lo.Reject(e.saved, func(t models.TripRecord, _ int) bool {
		return t.StorageRef == target.StorageRef
	})
	e.logger.Info("trip removed",
		zap.String("id", target.ID),
		zap.String("destination", target.Destination))
	return nil
}

// resolveByNaturalKey maps a recommendation or fallback id to the saved trip
// covering the same (destination, country).
func (e *Engine) resolveByNaturalKey(id string) (models.TripRecord, bool) {
	source, ok := lo.Find(e.recommendations, func(t models.TripRecord) bool { return t.ID == id })
	if !ok {
		source, ok = lo.Find(e.fallback, func(t models.TripRecord) bool { return t.ID == id })
	}
	if !ok {
		return models.TripRecord{}, false
	}
	return lo.Find(e.saved, source.SameDestination)
}

// uniqueTripID mints a saved-trip id and disambiguates millisecond
// collisions with an ordinal suffix. Two cities sharing a slug (Rome, Italy
// and Rome, USA) added within the same millisecond must not share an id.
func (e *Engine) uniqueTripID(destination string, now time.Time) string {
	base := MintTripID(destination, now)
	id := base
	for n := 2; e.savedIDExists(id); n++ {
		id = base + "_" + strconv.Itoa(n)
	}
	return id
}

func (e *Engine) savedIDExists(id string) bool {
	return lo.ContainsBy(e.saved, func(t models.TripRecord) bool { return t.ID == id })
}

// MintTripID derives a saved-trip id from the destination and a timestamp,
// e.g. "new-york_1712345678901". The millisecond suffix keeps repeated
// destinations added in sequence unique.
func MintTripID(destination string, now time.Time) string {
	slug := strings.ToLower(strings.TrimSpace(destination))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug + "_" + strconv.FormatInt(now.UnixMilli(), 10)
}

// NormalizeRecord defaults the optional sequence fields to empty slices so
// no consumer ever sees a nil plan or tip list. Performed once here at the
// reconciliation boundary, never deferred to presentation code.
func NormalizeRecord(rec models.TripRecord) models.TripRecord {
	if rec.TripPlan == nil {
		rec.TripPlan = []models.TripPlanDay{}
	}
	if rec.MustSeeAttractions == nil {
		rec.MustSeeAttractions = []string{}
	}
	if rec.LocalTips == nil {
		rec.LocalTips = []string{}
	}
	return rec
}
