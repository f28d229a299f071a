package services

import (
	"fmt"

	"foodietrail/utils"
)

// PlaceDraft pre-fills the create form from a chosen SearchResult. It is
// handed back to the browser, which keeps it as the form's draft until the
// form is submitted or reset.
type PlaceDraft struct {
	DishName        string   `json:"dishName"`
	LocationCity    string   `json:"locationCity"`
	LocationCountry string   `json:"locationCountry"`
	PriceLevel      string   `json:"priceLevel"`
	Notes           string   `json:"notes"`
	ExternalID      string   `json:"externalId"`
	Address         string   `json:"address"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
	Source          string   `json:"source"`
}

// DraftFromResult copies the provenance of r and guesses city and country
// from its formatted address. Unknown price tiers leave priceLevel empty.
func DraftFromResult(r SearchResult) PlaceDraft {
	city, country := utils.ParseCityCountry(r.Address)

	draft := PlaceDraft{
		DishName:        r.Name,
		LocationCity:    city,
		LocationCountry: country,
		ExternalID:      r.ExternalID,
		Address:         r.Address,
		Lat:             r.Lat,
		Lng:             r.Lng,
		Source:          r.Source,
	}
	if r.PriceLevel != nil {
		draft.PriceLevel, _ = utils.PriceLevel(*r.PriceLevel)
	}
	if r.Address != "" {
		draft.Notes = fmt.Sprintf("Address: %s", r.Address)
	}
	if draft.Source == "" {
		draft.Source = PlacesSource
	}
	return draft
}
