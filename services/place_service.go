package services

import (
	"context"
	"time"

	"foodietrail/dto"
	"foodietrail/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PlaceService struct {
	store  PlaceStore
	photos PhotoStore
	now    func() time.Time
}

func NewPlaceService(store PlaceStore, photos PhotoStore) *PlaceService {
	if photos == nil {
		photos = InlinePhotoStore{}
	}
	return &PlaceService{store: store, photos: photos, now: time.Now}
}

// timestamp is rounded to postgres' microsecond precision and never goes
// backwards relative to prev.
func (s *PlaceService) timestamp(prev time.Time) time.Time {
	now := s.now().UTC().Truncate(time.Microsecond)
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}

func (s *PlaceService) Create(ctx context.Context, in dto.CreatePlaceInput) (*models.Place, error) {
	place := in.ToPlace()
	if err := place.Validate(); err != nil {
		return nil, validationErrorf(err)
	}

	photos, err := s.photos.Store(ctx, place.Photos)
	if err != nil {
		return nil, err
	}
	place.Photos = pq.StringArray(photos)

	place.ID = uuid.New()
	place.CreatedAt = s.timestamp(time.Time{})
	place.UpdatedAt = place.CreatedAt

	if err := s.store.Create(ctx, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (s *PlaceService) List(ctx context.Context) ([]models.Place, error) {
	return s.store.List(ctx)
}

func (s *PlaceService) Get(ctx context.Context, id string) (*models.Place, error) {
	placeID, err := parsePlaceID(id)
	if err != nil {
		return nil, err
	}
	return s.store.Get(ctx, placeID)
}

// Update loads the stored record, overwrites the fields present in the
// input and writes the whole record back. Concurrent updates are
// last-write-wins.
func (s *PlaceService) Update(ctx context.Context, id string, in dto.UpdatePlaceInput) (*models.Place, error) {
	place, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Apply(place)
	if err := place.Validate(); err != nil {
		return nil, validationErrorf(err)
	}

	if in.Photos.Set {
		photos, err := s.photos.Store(ctx, place.Photos)
		if err != nil {
			return nil, err
		}
		place.Photos = pq.StringArray(photos)
	}

	place.UpdatedAt = s.timestamp(place.UpdatedAt)
	if err := s.store.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *PlaceService) Delete(ctx context.Context, id string) error {
	placeID, err := parsePlaceID(id)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, placeID)
}

// Ids that are not UUIDs cannot exist in the store.
func parsePlaceID(id string) (uuid.UUID, error) {
	placeID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrPlaceNotFound
	}
	return placeID, nil
}
