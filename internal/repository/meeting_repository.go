package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/domain"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	Create(ctx context.Context, meeting *domain.Meeting) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*domain.Meeting, error)
	Count(ctx context.Context) (int64, error)
}

type gormMeetingRepositoryImpl struct {
	db *gorm.DB
}

// NewGormMeetingRepository creates a new GORM-based MeetingRepository
func NewGormMeetingRepository(db *gorm.DB) MeetingRepository {
	return &gormMeetingRepositoryImpl{db: db}
}

func (r *gormMeetingRepositoryImpl) Create(ctx context.Context, meeting *domain.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

func (r *gormMeetingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	var meeting domain.Meeting
	if err := r.db.WithContext(ctx).First(&meeting, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (r *gormMeetingRepositoryImpl) FindByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*domain.Meeting, error) {
	var meetings []*domain.Meeting
	err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("created_at ASC").
		Find(&meetings).Error
	return meetings, err
}

func (r *gormMeetingRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Meeting{}).Count(&count).Error
	return count, err
}
