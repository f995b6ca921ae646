package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/domain"
)

// ParticipantRepository defines the interface for meeting participant data access
type ParticipantRepository interface {
	// CreateBatch inserts all rows as given. Duplicate user ids are valid
	// input and produce one row each.
	CreateBatch(ctx context.Context, participants []*domain.MeetingParticipant) error
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*domain.MeetingParticipant, error)
}

type gormParticipantRepositoryImpl struct {
	db *gorm.DB
}

// NewGormParticipantRepository creates a new GORM-based ParticipantRepository
func NewGormParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &gormParticipantRepositoryImpl{db: db}
}

func (r *gormParticipantRepositoryImpl) CreateBatch(ctx context.Context, participants []*domain.MeetingParticipant) error {
	if len(participants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(participants).Error
}

func (r *gormParticipantRepositoryImpl) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*domain.MeetingParticipant, error) {
	var participants []*domain.MeetingParticipant
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Find(&participants).Error
	return participants, err
}
