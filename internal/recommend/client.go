package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"wanderwise/internal/config"
	"wanderwise/internal/models"
	"wanderwise/internal/trips"
)

// Client is the recommendation front door. Generation is expensive and
// flaky, so responses are cached for a short TTL and every failure path
// degrades to the fallback catalog instead of surfacing an error.
type Client struct {
	gen     Generator
	cache   *gocache.Cache
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a recommendation client over the given generator
func NewClient(gen Generator, cfg *config.RecommenderConfig, logger *zap.Logger) *Client {
	return &Client{
		gen:     gen,
		cache:   gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// RequestRecommendations returns a batch of candidate trips for the given
// preferences. It never fails: recommendation unavailability must not block
// the user, so generator and parse errors all yield the fallback batch.
func (c *Client) RequestRecommendations(ctx context.Context, prefs Preferences) []models.TripRecord {
	prefs = prefs.withDefaults()

	if cached, found := c.cache.Get(prefs.cacheKey()); found {
		return cached.([]models.TripRecord)
	}

	text, err := c.generate(ctx, BuildRecommendationPrompt(prefs))
	if err != nil {
		c.logger.Warn("recommendation generation failed, using fallback", zap.Error(err))
		return FallbackTrips()
	}

	var batch []models.TripRecord
	if err := ExtractJSONPayload(text, &batch); err != nil {
		c.logger.Warn("recommendation response unparseable, using fallback", zap.Error(err))
		return FallbackTrips()
	}

	batch = normalizeBatch(batch)
	c.cache.Set(prefs.cacheKey(), batch, gocache.DefaultExpiration)
	return batch
}

// SearchNearbyAttractions returns points of interest near a location through
// the same generate-extract pipeline, with its own fallback.
func (c *Client) SearchNearbyAttractions(ctx context.Context, location string) []models.Attraction {
	key := "attractions|" + strings.ToLower(location)
	if cached, found := c.cache.Get(key); found {
		return cached.([]models.Attraction)
	}

	text, err := c.generate(ctx, BuildAttractionsPrompt(location))
	if err != nil {
		c.logger.Warn("attraction search failed, using fallback",
			zap.String("location", location), zap.Error(err))
		return FallbackAttractions(location)
	}

	var attractions []models.Attraction
	if err := ExtractJSONPayload(text, &attractions); err != nil {
		c.logger.Warn("attraction response unparseable, using fallback",
			zap.String("location", location), zap.Error(err))
		return FallbackAttractions(location)
	}

	c.cache.Set(key, attractions, gocache.DefaultExpiration)
	return attractions
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.gen == nil {
		return "", fmt.Errorf("no generation backend configured")
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.gen.Generate(ctx, prompt)
}

// normalizeBatch defaults the sequence fields and repairs ids the generation
// service got wrong. Ids must be unique within the batch, and the contract
// asks the service to avoid small-integer ids; either violation gets the
// record a freshly minted id in the saved-trip namespace format.
func normalizeBatch(batch []models.TripRecord) []models.TripRecord {
	seen := map[string]bool{}
	now := time.Now()
	for i, rec := range batch {
		rec = trips.NormalizeRecord(rec)
		if rec.ID == "" || seen[rec.ID] || isSmallInteger(rec.ID) {
			rec.ID = fmt.Sprintf("%s_%d", trips.MintTripID(rec.Destination, now), i)
		}
		seen[rec.ID] = true
		batch[i] = rec
	}
	return batch
}

func isSmallInteger(id string) bool {
	if len(id) == 0 || len(id) > 3 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
