// internal/repositories/trip_repository.go
package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "tripplanner/internal/models/db_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *dbm.Trip) error
	GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error)
	UpdateItineraryJSON(ctx context.Context, tripId uuid.UUID, itineraryJSON []byte) error
	ListTrips(ctx context.Context, page, pageSize int) ([]dbm.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	id, err := uuid.Parse(tripId)
	if err != nil {
		return nil, nil
	}

	var trip dbm.Trip
	if err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) UpdateItineraryJSON(ctx context.Context, tripId uuid.UUID, itineraryJSON []byte) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripId).
		Update("itinerary_json", itineraryJSON).Error
}

func (r *tripRepository) ListTrips(ctx context.Context, page, pageSize int) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	return trips, err
}
