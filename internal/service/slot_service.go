package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/domain"
	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/metrics"
	"meeting-scheduler-api/internal/repository"
	"meeting-scheduler-api/internal/response"
)

// SlotService defines the interface for time slot business logic
type SlotService interface {
	CreateSlot(ctx context.Context, calendarID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	UpdateSlot(ctx context.Context, slotID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, slotID uuid.UUID) error
	ListSlots(ctx context.Context, calendarID uuid.UUID, filter repository.SlotFilter) ([]*dto.SlotResponse, error)
}

type slotServiceImpl struct {
	uow      repository.UnitOfWork
	slotRepo repository.SlotRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewSlotService creates a new SlotService instance
func NewSlotService(
	uow repository.UnitOfWork,
	slotRepo repository.SlotRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) SlotService {
	return &slotServiceImpl{
		uow:      uow,
		slotRepo: slotRepo,
		metrics:  m,
		logger:   logger,
	}
}

// CreateSlot adds a free slot to a calendar. The overlap check and the
// insert run in one transaction holding the calendar row lock, so two
// concurrent creates on the same calendar cannot both pass the check.
func (s *slotServiceImpl) CreateSlot(ctx context.Context, calendarID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, response.NewAppError(response.ErrCodeValidation, "endTime must be after startTime", "")
	}

	slot := &domain.TimeSlot{
		CalendarID: calendarID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     domain.SlotStatusFree,
	}

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		if _, err := r.Calendars.FindByIDForUpdate(ctx, calendarID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewAppError(response.ErrCodeNotFound, "Calendar not found", calendarID.String())
			}
			return err
		}

		count, err := r.Slots.CountOverlapping(ctx, calendarID, req.StartTime, req.EndTime)
		if err != nil {
			return err
		}
		if count > 0 {
			return response.NewAppError(response.ErrCodeSlotOverlap, "Slot overlaps an existing slot on this calendar", "")
		}

		return r.Slots.Create(ctx, slot)
	})
	if err != nil {
		return nil, s.classify(err, "Failed to create slot")
	}

	s.metrics.IncrementSlotsCreated()
	s.logger.Info("Slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("calendar_id", calendarID.String()),
	)

	return dto.ToSlotResponse(slot), nil
}

// UpdateSlot applies a partial update to a slot that does not belong to a
// meeting. The linked-meeting check and the column write run in one
// transaction holding the slot row lock, so a concurrent schedule cannot
// commit between the check and the write. Only the patched columns are
// written back. The new interval is not re-checked for overlaps, matching
// the create-time guarantee only.
func (s *slotServiceImpl) UpdateSlot(ctx context.Context, slotID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	if req.Status != nil && *req.Status != domain.SlotStatusFree && *req.Status != domain.SlotStatusBusy {
		return nil, response.NewAppError(response.ErrCodeValidation, "status must be FREE or BUSY", "")
	}

	var slot *domain.TimeSlot

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		found, err := r.Slots.FindByIDForUpdate(ctx, slotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewAppError(response.ErrCodeNotFound, "Slot not found", slotID.String())
			}
			return err
		}

		if found.MeetingID != nil {
			return response.NewAppError(response.ErrCodeSlotLinked, "Slot is linked to a meeting", found.MeetingID.String())
		}

		values := map[string]interface{}{}
		if req.StartTime != nil {
			found.StartTime = *req.StartTime
			values["start_time"] = *req.StartTime
		}
		if req.EndTime != nil {
			found.EndTime = *req.EndTime
			values["end_time"] = *req.EndTime
		}
		if req.Status != nil {
			found.Status = *req.Status
			values["status"] = *req.Status
		}
		if !found.EndTime.After(found.StartTime) {
			return response.NewAppError(response.ErrCodeValidation, "endTime must be after startTime", "")
		}

		slot = found
		if len(values) == 0 {
			return nil
		}
		return r.Slots.UpdateColumns(ctx, slotID, values)
	})
	if err != nil {
		return nil, s.classify(err, "Failed to update slot")
	}

	s.logger.Info("Slot updated", zap.String("slot_id", slotID.String()))
	return dto.ToSlotResponse(slot), nil
}

// DeleteSlot removes a slot permanently. Slots claimed by a meeting cannot
// be deleted; the check and the delete hold the slot row lock together so a
// schedule committing in between cannot leave a meeting pointing at a
// removed slot.
func (s *slotServiceImpl) DeleteSlot(ctx context.Context, slotID uuid.UUID) error {
	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		slot, err := r.Slots.FindByIDForUpdate(ctx, slotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewAppError(response.ErrCodeNotFound, "Slot not found", slotID.String())
			}
			return err
		}

		if slot.MeetingID != nil {
			return response.NewAppError(response.ErrCodeSlotLinked, "Slot is linked to a meeting", slot.MeetingID.String())
		}

		return r.Slots.Delete(ctx, slotID)
	})
	if err != nil {
		return s.classify(err, "Failed to delete slot")
	}

	s.logger.Info("Slot deleted", zap.String("slot_id", slotID.String()))
	return nil
}

// ListSlots returns the slots of a calendar, optionally narrowed by status
// and time window, ordered by start time.
func (s *slotServiceImpl) ListSlots(ctx context.Context, calendarID uuid.UUID, filter repository.SlotFilter) ([]*dto.SlotResponse, error) {
	slots, err := s.slotRepo.FindByCalendar(ctx, calendarID, filter)
	if err != nil {
		return nil, s.classify(err, "Failed to fetch slots")
	}
	return dto.ToSlotResponses(slots), nil
}

// classify passes AppErrors through and wraps everything else as internal
func (s *slotServiceImpl) classify(err error, message string) error {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	s.logger.Error(message, zap.Error(err))
	return response.NewAppError(response.ErrCodeInternal, message, err.Error())
}
