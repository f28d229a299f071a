package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/buger/jsonparser"
)

const (
	DefaultPlacesAPIURL = "https://places.googleapis.com/v1/places:searchText"
	PlacesSource        = "google-places"

	placesPageSize  = 10
	placesFieldMask = "places.id,places.displayName,places.formattedAddress,places.location,places.rating,places.priceLevel"
)

// SearchResult is one restaurant candidate from the places provider. It is
// never persisted; "use this place" copies parts of it into a PlaceDraft.
type SearchResult struct {
	ExternalID string   `json:"externalId"`
	Name       string   `json:"name" binding:"required"`
	Address    string   `json:"address"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Rating     *float64 `json:"rating"`
	PriceLevel *string  `json:"priceLevel"`
	Source     string   `json:"source"`
}

// PlacesSearchService proxies text searches to the Google Places API (New).
type PlacesSearchService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewPlacesSearchService uses DefaultPlacesAPIURL when endpoint is empty.
// The client has no timeout of its own; the inbound request's context
// bounds the call.
func NewPlacesSearchService(apiKey, endpoint string) *PlacesSearchService {
	if endpoint == "" {
		endpoint = DefaultPlacesAPIURL
	}
	return &PlacesSearchService{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// BuildTextQuery combines the dish/restaurant query with the location, e.g.
// "ramen in Toronto, ON". A location on its own searches for "restaurants".
func BuildTextQuery(query, location string) string {
	query = strings.TrimSpace(query)
	location = strings.TrimSpace(location)
	if location == "" {
		return query
	}
	if query == "" {
		query = "restaurants"
	}
	return fmt.Sprintf("%s in %s", query, location)
}

type searchTextRequest struct {
	TextQuery string `json:"textQuery"`
	PageSize  int    `json:"pageSize"`
}

// Search returns up to ten candidates. Every provider failure is wrapped in
// ErrUpstream; the wrapped detail is for logs, not for clients.
func (s *PlacesSearchService) Search(ctx context.Context, textQuery string) ([]SearchResult, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: GOOGLE_PLACES_API_KEY not set", ErrUpstream)
	}

	b, err := json.Marshal(searchTextRequest{TextQuery: textQuery, PageSize: placesPageSize})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal search payload: %v", ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create search request: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", s.apiKey)
	req.Header.Set("X-Goog-FieldMask", placesFieldMask)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to call places API: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read places response: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: places API error %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	results, err := parseSearchResponse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return results, nil
}

// parseSearchResponse maps the provider's "places" array. The provider
// answers {} when nothing matches; optional fields map to nil.
func parseSearchResponse(body []byte) ([]SearchResult, error) {
	if _, dataType, _, err := jsonparser.Get(body); err != nil || dataType != jsonparser.Object {
		return nil, errors.New("malformed places response")
	}

	results := []SearchResult{}
	var itemErr error
	_, err := jsonparser.ArrayEach(body, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if itemErr != nil {
			return
		}
		if err != nil || dataType != jsonparser.Object {
			itemErr = errors.New("malformed place entry")
			return
		}
		results = append(results, parsePlace(value))
	}, "places")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
		return results, nil
	case err != nil:
		return nil, fmt.Errorf("malformed places array: %w", err)
	case itemErr != nil:
		return nil, itemErr
	}
	return results, nil
}

func parsePlace(value []byte) SearchResult {
	r := SearchResult{Source: PlacesSource}
	r.ExternalID, _ = jsonparser.GetString(value, "id")
	r.Name, _ = jsonparser.GetString(value, "displayName", "text")
	r.Address, _ = jsonparser.GetString(value, "formattedAddress")
	r.Lat = optionalFloat(value, "location", "latitude")
	r.Lng = optionalFloat(value, "location", "longitude")
	r.Rating = optionalFloat(value, "rating")
	if level, err := jsonparser.GetString(value, "priceLevel"); err == nil && level != "" {
		r.PriceLevel = &level
	}
	return r
}

func optionalFloat(value []byte, keys ...string) *float64 {
	f, err := jsonparser.GetFloat(value, keys...)
	if err != nil {
		return nil
	}
	return &f
}
