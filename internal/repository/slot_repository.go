package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/domain"
)

// SlotFilter narrows FindByCalendar results. Nil fields are not applied.
type SlotFilter struct {
	Status *domain.SlotStatus
	From   *time.Time
	To     *time.Time
}

// SlotRepository defines the interface for time slot data access
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) error
	// UpdateColumns writes only the given columns of a slot. Callers patch
	// what changed instead of writing a full row snapshot back.
	UpdateColumns(ctx context.Context, id uuid.UUID, values map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error)
	// FindByIDForUpdate locks the slot row for the rest of the transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error)
	FindByCalendar(ctx context.Context, calendarID uuid.UUID, filter SlotFilter) ([]*domain.TimeSlot, error)
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.TimeSlot, error)
	// CountOverlapping counts slots on the calendar whose half-open interval
	// intersects [start, end). Slots that merely touch at an endpoint do not
	// count.
	CountOverlapping(ctx context.Context, calendarID uuid.UUID, start, end time.Time) (int64, error)
	// MarkBusy transitions a slot to BUSY and binds it to a meeting, but only
	// if it is still FREE. Returns the number of rows updated; 0 means the
	// slot was claimed by someone else (or is gone).
	MarkBusy(ctx context.Context, slotID, meetingID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type gormSlotRepositoryImpl struct {
	db *gorm.DB
}

// NewGormSlotRepository creates a new GORM-based SlotRepository
func NewGormSlotRepository(db *gorm.DB) SlotRepository {
	return &gormSlotRepositoryImpl{db: db}
}

func (r *gormSlotRepositoryImpl) Create(ctx context.Context, slot *domain.TimeSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *gormSlotRepositoryImpl) UpdateColumns(ctx context.Context, id uuid.UUID, values map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&domain.TimeSlot{}).
		Where("id = ?", id).
		Updates(values).Error
}

func (r *gormSlotRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.TimeSlot{}, "id = ?", id).Error
}

func (r *gormSlotRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *gormSlotRepositoryImpl) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	if err := forUpdate(r.db.WithContext(ctx)).First(&slot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *gormSlotRepositoryImpl) FindByCalendar(ctx context.Context, calendarID uuid.UUID, filter SlotFilter) ([]*domain.TimeSlot, error) {
	query := r.db.WithContext(ctx).Where("calendar_id = ?", calendarID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("end_time <= ?", *filter.To)
	}

	var slots []*domain.TimeSlot
	err := query.Order("start_time ASC").Find(&slots).Error
	return slots, err
}

// FindByUserAndRange returns slots fully contained in [from, to] across all
// calendars owned by the user, ordered by start time.
func (r *gormSlotRepositoryImpl) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.TimeSlot, error) {
	var slots []*domain.TimeSlot
	err := r.db.WithContext(ctx).
		Model(&domain.TimeSlot{}).
		Select("time_slots.*").
		Joins("JOIN calendars ON calendars.id = time_slots.calendar_id").
		Where("calendars.user_id = ? AND time_slots.start_time >= ? AND time_slots.end_time <= ?", userID, from, to).
		Order("time_slots.start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *gormSlotRepositoryImpl) CountOverlapping(ctx context.Context, calendarID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.TimeSlot{}).
		Where("calendar_id = ? AND start_time < ? AND end_time > ?", calendarID, end, start).
		Count(&count).Error
	return count, err
}

func (r *gormSlotRepositoryImpl) MarkBusy(ctx context.Context, slotID, meetingID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.TimeSlot{}).
		Where("id = ? AND status = ?", slotID, domain.SlotStatusFree).
		Updates(map[string]interface{}{
			"status":     domain.SlotStatusBusy,
			"meeting_id": meetingID,
		})
	return result.RowsAffected, result.Error
}

func (r *gormSlotRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.TimeSlot{}).Count(&count).Error
	return count, err
}
