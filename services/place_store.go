package services

import (
	"context"
	"errors"
	"fmt"

	"foodietrail/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceStore persists Place records.
type PlaceStore interface {
	Create(ctx context.Context, p *models.Place) error
	List(ctx context.Context) ([]models.Place, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Place, error)
	Update(ctx context.Context, p *models.Place) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GormPlaceStore is the postgres-backed PlaceStore. A nil DB means the
// process started without a database; every call then fails with
// ErrStoreUnavailable.
type GormPlaceStore struct {
	DB *gorm.DB
}

func NewGormPlaceStore(db *gorm.DB) *GormPlaceStore {
	return &GormPlaceStore{DB: db}
}

func (s *GormPlaceStore) db(ctx context.Context) (*gorm.DB, error) {
	if s.DB == nil {
		return nil, ErrStoreUnavailable
	}
	return s.DB.WithContext(ctx), nil
}

func (s *GormPlaceStore) Create(ctx context.Context, p *models.Place) error {
	db, err := s.db(ctx)
	if err != nil {
		return err
	}
	if err := db.Create(p).Error; err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

func (s *GormPlaceStore) List(ctx context.Context) ([]models.Place, error) {
	db, err := s.db(ctx)
	if err != nil {
		return nil, err
	}
	places := []models.Place{}
	if err := db.Order("created_at ASC").Find(&places).Error; err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	return places, nil
}

func (s *GormPlaceStore) Get(ctx context.Context, id uuid.UUID) (*models.Place, error) {
	db, err := s.db(ctx)
	if err != nil {
		return nil, err
	}
	var p models.Place
	if err := db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to load place %s: %w", id, err)
	}
	return &p, nil
}

// Update writes every column except id and created_at. Zero values are
// written too, so cleared fields stick.
func (s *GormPlaceStore) Update(ctx context.Context, p *models.Place) error {
	db, err := s.db(ctx)
	if err != nil {
		return err
	}
	res := db.Model(&models.Place{}).
		Where("id = ?", p.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(p)
	if res.Error != nil {
		return fmt.Errorf("failed to update place %s: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPlaceNotFound
	}
	return nil
}

func (s *GormPlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := s.db(ctx)
	if err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&models.Place{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete place %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPlaceNotFound
	}
	return nil
}
