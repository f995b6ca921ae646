package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/domain"
)

// CalendarRepository defines the interface for calendar data access
type CalendarRepository interface {
	Create(ctx context.Context, calendar *domain.Calendar) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Calendar, error)
	// FindByIDForUpdate locks the calendar row for the rest of the
	// transaction. Slot creation serializes on this lock so concurrent
	// overlap checks on the same calendar cannot interleave.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Calendar, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Calendar, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type gormCalendarRepositoryImpl struct {
	db *gorm.DB
}

// NewGormCalendarRepository creates a new GORM-based CalendarRepository
func NewGormCalendarRepository(db *gorm.DB) CalendarRepository {
	return &gormCalendarRepositoryImpl{db: db}
}

func (r *gormCalendarRepositoryImpl) Create(ctx context.Context, calendar *domain.Calendar) error {
	return r.db.WithContext(ctx).Create(calendar).Error
}

func (r *gormCalendarRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Calendar, error) {
	var calendar domain.Calendar
	if err := r.db.WithContext(ctx).First(&calendar, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &calendar, nil
}

func (r *gormCalendarRepositoryImpl) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Calendar, error) {
	var calendar domain.Calendar
	if err := forUpdate(r.db.WithContext(ctx)).First(&calendar, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &calendar, nil
}

func (r *gormCalendarRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Calendar, error) {
	var calendars []*domain.Calendar
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&calendars).Error
	return calendars, err
}

func (r *gormCalendarRepositoryImpl) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Calendar{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
