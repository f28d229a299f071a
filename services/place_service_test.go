package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"foodietrail/dto"
	"foodietrail/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory PlaceStore for tests.
type memStore struct {
	mu     sync.Mutex
	places map[uuid.UUID]models.Place
	order  []uuid.UUID
	err    error
}

func newMemStore() *memStore {
	return &memStore{places: map[uuid.UUID]models.Place{}}
}

func (m *memStore) Create(_ context.Context, p *models.Place) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.places[p.ID] = *p
	m.order = append(m.order, p.ID)
	return nil
}

func (m *memStore) List(_ context.Context) ([]models.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Place{}
	for _, id := range m.order {
		if p, ok := m.places[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) Get(_ context.Context, id uuid.UUID) (*models.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.places[id]
	if !ok {
		return nil, ErrPlaceNotFound
	}
	return &p, nil
}

func (m *memStore) Update(_ context.Context, p *models.Place) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.places[p.ID]; !ok {
		return ErrPlaceNotFound
	}
	m.places[p.ID] = *p
	return nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.places[id]; !ok {
		return ErrPlaceNotFound
	}
	delete(m.places, id)
	return nil
}

// fixedClock returns the same instant on every call, the worst case for
// keeping updatedAt increasing.
func fixedClock() time.Time {
	return time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
}

func newTestService() (*PlaceService, *memStore) {
	store := newMemStore()
	svc := NewPlaceService(store, nil)
	svc.now = fixedClock
	return svc, store
}

func ramenInput() dto.CreatePlaceInput {
	rating := 5
	date := models.NewDate(2024, time.January, 1)
	return dto.CreatePlaceInput{
		DishName:        "Ramen",
		LocationCity:    "Toronto",
		LocationCountry: "Canada",
		Rating:          &rating,
		VisitDate:       &date,
		KeywordTags:     []string{"spicy", "noodles"},
		Photos:          []string{"data:image/png;base64,aGVsbG8="},
	}
}

func decodeUpdate(t *testing.T, body string) dto.UpdatePlaceInput {
	var in dto.UpdatePlaceInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), ramenInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "Ramen", p.DishName)
	assert.Equal(t, "Toronto", p.LocationCity)
	assert.Equal(t, "Canada", p.LocationCountry)
	assert.Equal(t, 5, p.Rating)
	assert.Equal(t, "2024-01-01", p.VisitDate.String())
	assert.Equal(t, pq.StringArray{"spicy", "noodles"}, p.KeywordTags)
	assert.True(t, p.Visited)
	assert.Equal(t, fixedClock(), p.CreatedAt)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestCreateRejectsInvalidRating(t *testing.T) {
	svc, store := newTestService()

	for _, rating := range []int{0, 6, -3} {
		in := ramenInput()
		r := rating
		in.Rating = &r

		_, err := svc.Create(context.Background(), in)
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr), "rating %d", rating)
	}
	assert.Empty(t, store.places)
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), dto.CreatePlaceInput{DishName: "Ramen"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Msg, "rating is required")
	assert.Contains(t, verr.Msg, "visitDate is required")
}

func TestCreateRejectsBadPhotos(t *testing.T) {
	svc, _ := newTestService()

	in := ramenInput()
	in.Photos = []string{"not a data uri"}
	_, err := svc.Create(context.Background(), in)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	in.Photos = []string{"data:image/png;base64,aGVsbG8=", "data:image/png;base64,aGVsbG8=", "data:image/png;base64,aGVsbG8=", "data:image/png;base64,aGVsbG8="}
	_, err = svc.Create(context.Background(), in)
	assert.True(t, errors.As(err, &verr))
}

func TestGetAfterCreateAndDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, ramenInput())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	_, err = svc.Get(ctx, created.ID.String())
	assert.ErrorIs(t, err, ErrPlaceNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID.String()), ErrPlaceNotFound)
}

func TestMalformedIDIsNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Get(ctx, "65a1b2c3d4e5f6a7b8c9d0e1")
	assert.ErrorIs(t, err, ErrPlaceNotFound)

	_, err = svc.Update(ctx, "nope", dto.UpdatePlaceInput{})
	assert.ErrorIs(t, err, ErrPlaceNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrPlaceNotFound)
}

func TestUpdateEmptyPayloadOnlyAdvancesUpdatedAt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, ramenInput())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.String(), decodeUpdate(t, `{}`))
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	expected := *created
	expected.UpdatedAt = updated.UpdatedAt
	assert.Equal(t, &expected, updated)

	again, err := svc.Update(ctx, created.ID.String(), decodeUpdate(t, `{}`))
	require.NoError(t, err)
	assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))
}

func TestUpdateNotesOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, ramenInput())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.String(), decodeUpdate(t, `{"notes": "x"}`))
	require.NoError(t, err)

	assert.Equal(t, "x", updated.Notes)
	assert.Equal(t, created.Photos, updated.Photos)
	assert.Equal(t, created.KeywordTags, updated.KeywordTags)
	assert.Equal(t, created.DishName, updated.DishName)
	assert.Equal(t, created.Rating, updated.Rating)
	assert.Equal(t, created.VisitDate, updated.VisitDate)

	stored, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, ramenInput())
	require.NoError(t, err)

	for _, body := range []string{
		`{"rating": 9}`,
		`{"rating": null}`,
		`{"dishName": ""}`,
		`{"visitDate": null}`,
		`{"priceLevel": "cheap"}`,
	} {
		_, err := svc.Update(ctx, created.ID.String(), decodeUpdate(t, body))
		var verr *ValidationError
		assert.True(t, errors.As(err, &verr), body)
	}

	stored, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestUpdateClearsOptionalFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := ramenInput()
	in.Notes = "great broth"
	in.PlaceType = "Restaurant"
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID.String(), decodeUpdate(t, `{"notes": null, "placeType": "", "photos": null}`))
	require.NoError(t, err)
	assert.Equal(t, "", updated.Notes)
	assert.Equal(t, "", updated.PlaceType)
	assert.Empty(t, updated.Photos)
}

func TestStoreErrorsPropagate(t *testing.T) {
	svc, store := newTestService()
	store.err = ErrStoreUnavailable

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.Create(context.Background(), ramenInput())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestGormStoreWithoutDatabase(t *testing.T) {
	store := NewGormPlaceStore(nil)
	ctx := context.Background()

	_, err := store.List(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = store.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, store.Create(ctx, &models.Place{}), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Update(ctx, &models.Place{}), ErrStoreUnavailable)
	assert.ErrorIs(t, store.Delete(ctx, uuid.New()), ErrStoreUnavailable)
}
