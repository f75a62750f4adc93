package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// PlaceSuggestion is a venue returned by the optional enrichment
// lookup. PriceLevel follows the common 1 (cheap) to 4 (splurge) scale.
type PlaceSuggestion struct {
	Name       string  `json:"name"`
	PriceLevel int     `json:"price_level"`
	Rating     float64 `json:"rating"`
}

// PlaceSearcher is the optional external enrichment hook. The pipeline
// works the same when it is nil or failing; results only decorate meal
// entries with a concrete venue.
type PlaceSearcher interface {
	Search(ctx context.Context, query, area string) (*PlaceSuggestion, error)
}

type placeSearchClient struct {
	http    *http.Client
	baseURL string
	token   string
}

// NewPlaceSearcherFromEnv wires the client from PLACE_SEARCH_URL and
// PLACE_SEARCH_TOKEN. Returns nil when the URL is unset so callers can
// treat enrichment as disabled.
func NewPlaceSearcherFromEnv() PlaceSearcher {
	baseURL := os.Getenv("PLACE_SEARCH_URL")
	if baseURL == "" {
		return nil
	}
	return &placeSearchClient{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		token:   os.Getenv("PLACE_SEARCH_TOKEN"),
	}
}

func (c *placeSearchClient) Search(ctx context.Context, query, area string) (*PlaceSuggestion, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("place search url: %w", err)
	}
	q := url.Values{}
	q.Set("query", query)
	q.Set("near", area)
	q.Set("limit", "1")
	if c.token != "" {
		q.Set("access_token", c.token)
	}
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place search http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("place search bad status: %s", resp.Status)
	}

	var payload struct {
		Results []PlaceSuggestion `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("place search decode: %w", err)
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}
	return &payload.Results[0], nil
}
