package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	MinRating = 1
	MaxRating = 5
	MaxPhotos = 3
)

// Accepted priceLevel values; empty means "not specified".
var PriceLevels = []string{"", "$", "$$", "$$$", "$$$$"}

// Place is one recorded dish / restaurant visit.
type Place struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Dish & location
	DishName        string `gorm:"not null" json:"dishName"`
	LocationCity    string `gorm:"not null" json:"locationCity"`
	LocationCountry string `gorm:"not null;index" json:"locationCountry"`
	PlaceType       string `json:"placeType"` // Street Food, Cafe, Restaurant

	// Rating & price
	Rating     int    `gorm:"not null;check:chk_places_rating,rating >= 1 AND rating <= 5" json:"rating"`
	PriceLevel string `gorm:"size:4" json:"priceLevel"`

	// Tags & date
	KeywordTags pq.StringArray `gorm:"type:text[]" json:"keywordTags"`
	VisitDate   Date           `gorm:"not null" json:"visitDate"`

	// Notes & photos
	Notes  string         `gorm:"type:text" json:"notes"`
	Photos pq.StringArray `gorm:"type:text[]" json:"photos"`

	Visited bool `gorm:"not null" json:"visited"`

	// Provenance, set when the entry came from a restaurant search
	ExternalID string   `json:"externalId"`
	Address    string   `json:"address"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Source     string   `gorm:"size:32" json:"source"`

	// Timestamps are owned by the service layer so updatedAt can be kept
	// strictly increasing.
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// Validate checks the schema rules that must hold before a Place is written.
func (p *Place) Validate() error {
	var problems []string

	if strings.TrimSpace(p.DishName) == "" {
		problems = append(problems, "dishName is required")
	}
	if strings.TrimSpace(p.LocationCity) == "" {
		problems = append(problems, "locationCity is required")
	}
	if strings.TrimSpace(p.LocationCountry) == "" {
		problems = append(problems, "locationCountry is required")
	}
	switch {
	case p.Rating == 0:
		problems = append(problems, "rating is required")
	case p.Rating < MinRating || p.Rating > MaxRating:
		problems = append(problems, fmt.Sprintf("rating must be between %d and %d, got %d", MinRating, MaxRating, p.Rating))
	}
	if !validPriceLevel(p.PriceLevel) {
		problems = append(problems, fmt.Sprintf("priceLevel must be one of $, $$, $$$, $$$$ or empty, got %q", p.PriceLevel))
	}
	if p.VisitDate.IsZero() {
		problems = append(problems, "visitDate is required")
	}
	if len(p.Photos) > MaxPhotos {
		problems = append(problems, fmt.Sprintf("at most %d photos are allowed, got %d", MaxPhotos, len(p.Photos)))
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New(strings.Join(problems, "; "))
}

func validPriceLevel(level string) bool {
	for _, l := range PriceLevels {
		if level == l {
			return true
		}
	}
	return false
}
