package dto

import (
	"foodietrail/models"

	"github.com/lib/pq"
)

// CreatePlaceInput is the body of POST /places. Schema rules are enforced by
// models.Place.Validate after conversion so create and update report the
// same messages.
type CreatePlaceInput struct {
	DishName        string       `json:"dishName"`
	LocationCity    string       `json:"locationCity"`
	LocationCountry string       `json:"locationCountry"`
	PlaceType       string       `json:"placeType"`
	Rating          *int         `json:"rating"`
	PriceLevel      string       `json:"priceLevel"`
	KeywordTags     []string     `json:"keywordTags"`
	VisitDate       *models.Date `json:"visitDate"`
	Notes           string       `json:"notes"`
	Photos          []string     `json:"photos"`
	Visited         *bool        `json:"visited"`

	ExternalID string   `json:"externalId"`
	Address    string   `json:"address"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Source     string   `json:"source"`
}

// ToPlace fills defaults (visited=true, empty tag/photo lists) and leaves
// id and timestamps to the caller.
func (in CreatePlaceInput) ToPlace() models.Place {
	p := models.Place{
		DishName:        in.DishName,
		LocationCity:    in.LocationCity,
		LocationCountry: in.LocationCountry,
		PlaceType:       in.PlaceType,
		PriceLevel:      in.PriceLevel,
		KeywordTags:     stringArray(in.KeywordTags),
		Notes:           in.Notes,
		Photos:          stringArray(in.Photos),
		Visited:         true,
		ExternalID:      in.ExternalID,
		Address:         in.Address,
		Lat:             in.Lat,
		Lng:             in.Lng,
		Source:          in.Source,
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.VisitDate != nil {
		p.VisitDate = *in.VisitDate
	}
	if in.Visited != nil {
		p.Visited = *in.Visited
	}
	return p
}

// UpdatePlaceInput is the body of PUT /places/:id. Absent fields are left
// alone; present fields overwrite, and null or "" clears.
type UpdatePlaceInput struct {
	DishName        Optional[string]      `json:"dishName"`
	LocationCity    Optional[string]      `json:"locationCity"`
	LocationCountry Optional[string]      `json:"locationCountry"`
	PlaceType       Optional[string]      `json:"placeType"`
	Rating          Optional[int]         `json:"rating"`
	PriceLevel      Optional[string]      `json:"priceLevel"`
	KeywordTags     Optional[[]string]    `json:"keywordTags"`
	VisitDate       Optional[models.Date] `json:"visitDate"`
	Notes           Optional[string]      `json:"notes"`
	Photos          Optional[[]string]    `json:"photos"`
	Visited         Optional[bool]        `json:"visited"`

	ExternalID Optional[string]  `json:"externalId"`
	Address    Optional[string]  `json:"address"`
	Lat        Optional[float64] `json:"lat"`
	Lng        Optional[float64] `json:"lng"`
	Source     Optional[string]  `json:"source"`
}

// Apply overwrites the fields present in the input. A null rating or
// visitDate zeroes the field, which Validate then rejects.
func (in UpdatePlaceInput) Apply(p *models.Place) {
	applyString(in.DishName, &p.DishName)
	applyString(in.LocationCity, &p.LocationCity)
	applyString(in.LocationCountry, &p.LocationCountry)
	applyString(in.PlaceType, &p.PlaceType)
	applyString(in.PriceLevel, &p.PriceLevel)
	applyString(in.Notes, &p.Notes)
	applyString(in.ExternalID, &p.ExternalID)
	applyString(in.Address, &p.Address)
	applyString(in.Source, &p.Source)

	if in.Rating.Set {
		p.Rating = in.Rating.Value
	}
	if in.VisitDate.Set {
		p.VisitDate = in.VisitDate.Value
	}
	if in.KeywordTags.Set {
		p.KeywordTags = stringArray(in.KeywordTags.Value)
	}
	if in.Photos.Set {
		p.Photos = stringArray(in.Photos.Value)
	}
	if in.Visited.Set {
		p.Visited = in.Visited.Null || in.Visited.Value
	}
	applyFloat(in.Lat, &p.Lat)
	applyFloat(in.Lng, &p.Lng)
}

func applyString(o Optional[string], dst *string) {
	if o.Set {
		*dst = o.Value
	}
}

func applyFloat(o Optional[float64], dst **float64) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}

func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
