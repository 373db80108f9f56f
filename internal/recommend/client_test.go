package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wanderwise/internal/config"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func newTestClient(gen Generator) *Client {
	cfg := &config.RecommenderConfig{
		CacheTTL: time.Minute,
		Timeout:  5 * time.Second,
	}
	return NewClient(gen, cfg, zap.NewNop())
}

func TestRequestRecommendationsParsesGeneratedBatch(t *testing.T) {
	gen := &stubGenerator{response: "Here you go!\n```json\n" +
		`[{"id":"rome_1712000000000","destination":"Rome","country":"Italy"},` +
		`{"id":"kyoto_1712000000001","destination":"Kyoto","country":"Japan"}]` +
		"\n```"}
	c := newTestClient(gen)

	batch := c.RequestRecommendations(context.Background(), Preferences{Interests: []string{"food"}})

	require.Len(t, batch, 2)
	assert.Equal(t, "Rome", batch[0].Destination)
	assert.Equal(t, "Kyoto", batch[1].Destination)
	assert.NotNil(t, batch[0].TripPlan, "sequence fields are defaulted")
}

func TestRequestRecommendationsRepairsBadIDs(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" +
		`[{"id":"1","destination":"Rome","country":"Italy"},` +
		`{"id":"dup","destination":"Kyoto","country":"Japan"},` +
		`{"id":"dup","destination":"Lisbon","country":"Portugal"},` +
		`{"destination":"Oslo","country":"Norway"}]` +
		"\n```"}
	c := newTestClient(gen)

	batch := c.RequestRecommendations(context.Background(), Preferences{})
	require.Len(t, batch, 4)

	seen := map[string]bool{}
	for _, rec := range batch {
		assert.NotEmpty(t, rec.ID)
		assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true
	}
	assert.True(t, strings.HasPrefix(batch[0].ID, "rome_"), "small-integer id %q replaced", batch[0].ID)
	assert.Equal(t, "dup", batch[1].ID, "first holder of an id keeps it")
	assert.True(t, strings.HasPrefix(batch[2].ID, "lisbon_"))
	assert.True(t, strings.HasPrefix(batch[3].ID, "oslo_"))
}

func TestRequestRecommendationsGeneratorFailureYieldsFallback(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exhausted")}
	c := newTestClient(gen)

	batch := c.RequestRecommendations(context.Background(), Preferences{})

	require.Len(t, batch, 2)
	assert.Equal(t, "Paris", batch[0].Destination)
	assert.Equal(t, "Tokyo", batch[1].Destination)
}

func TestRequestRecommendationsUnparseableResponseYieldsFallback(t *testing.T) {
	gen := &stubGenerator{response: "I'm sorry, I can't produce travel plans right now."}
	c := newTestClient(gen)

	batch := c.RequestRecommendations(context.Background(), Preferences{})

	require.Len(t, batch, 2)
	assert.Equal(t, "Paris", batch[0].Destination)
}

func TestRequestRecommendationsNoBackendYieldsFallback(t *testing.T) {
	c := newTestClient(nil)

	batch := c.RequestRecommendations(context.Background(), Preferences{})
	require.Len(t, batch, 2)
	assert.Equal(t, "Paris", batch[0].Destination)
}

func TestRequestRecommendationsCachesByPreferences(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" +
		`[{"id":"rome_1","destination":"Rome","country":"Italy"}]` +
		"\n```"}
	c := newTestClient(gen)

	prefs := Preferences{Interests: []string{"history"}, Budget: "low"}
	first := c.RequestRecommendations(context.Background(), prefs)
	second := c.RequestRecommendations(context.Background(), prefs)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.calls, "second identical request served from cache")

	c.RequestRecommendations(context.Background(), Preferences{Interests: []string{"beaches"}})
	assert.Equal(t, 2, gen.calls, "different preferences miss the cache")
}

func TestSearchNearbyAttractions(t *testing.T) {
	gen := &stubGenerator{response: "```json\n" +
		`[{"id":"a1","name":"Colosseum","location":"Rome","category":"Historical Site"}]` +
		"\n```"}
	c := newTestClient(gen)

	attractions := c.SearchNearbyAttractions(context.Background(), "Rome")
	require.Len(t, attractions, 1)
	assert.Equal(t, "Colosseum", attractions[0].Name)

	// Same location, cached.
	c.SearchNearbyAttractions(context.Background(), "rome")
	assert.Equal(t, 1, gen.calls)
}

func TestSearchNearbyAttractionsFailureYieldsFallback(t *testing.T) {
	gen := &stubGenerator{err: errors.New("backend down")}
	c := newTestClient(gen)

	attractions := c.SearchNearbyAttractions(context.Background(), "Rome")
	require.Len(t, attractions, 1)
	assert.Equal(t, "Rome", attractions[0].Location)
}
