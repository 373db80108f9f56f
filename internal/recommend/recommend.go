// Package recommend talks to the generation service and turns its free-text
// output into canonical trip records. Failures never escape this package:
// the caller always gets a usable batch, falling back to the built-in
// catalog when the service is down or its output can't be parsed.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse means the generation output contained neither a
// fenced JSON block nor a bare array, or the extracted text did not parse.
var ErrMalformedResponse = errors.New("recommend: malformed generation response")

// Generator is a text-generation backend.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Preferences are the recognized recommendation options. Zero values mean
// the documented defaults.
type Preferences struct {
	Interests    []string
	Budget       string // default "medium"
	Season       string // default "summer"
	TripDuration string // default "7 days"
}

func (p Preferences) withDefaults() Preferences {
	if p.Budget == "" {
		p.Budget = "medium"
	}
	if p.Season == "" {
		p.Season = "summer"
	}
	if p.TripDuration == "" {
		p.TripDuration = "7 days"
	}
	return p
}

// interestsLabel renders the interest set for the prompt; an empty set means
// general tourism.
func (p Preferences) interestsLabel() string {
	if len(p.Interests) == 0 {
		return "general tourism"
	}
	return strings.Join(p.Interests, ", ")
}

// cacheKey is stable for identical preference tuples.
func (p Preferences) cacheKey() string {
	return fmt.Sprintf("recs|%s|%s|%s|%s",
		strings.Join(p.Interests, ","), p.Budget, p.Season, p.TripDuration)
}
