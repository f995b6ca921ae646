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

// MeetingService defines the interface for meeting business logic
type MeetingService interface {
	ScheduleMeeting(ctx context.Context, req *dto.ScheduleMeetingRequest) (*dto.MeetingResponse, error)
	GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	ListUserMeetings(ctx context.Context, organizerID uuid.UUID) ([]*dto.MeetingResponse, error)
}

type meetingServiceImpl struct {
	uow             repository.UnitOfWork
	meetingRepo     repository.MeetingRepository
	slotRepo        repository.SlotRepository
	participantRepo repository.ParticipantRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewMeetingService creates a new MeetingService instance
func NewMeetingService(
	uow repository.UnitOfWork,
	meetingRepo repository.MeetingRepository,
	slotRepo repository.SlotRepository,
	participantRepo repository.ParticipantRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) MeetingService {
	return &meetingServiceImpl{
		uow:             uow,
		meetingRepo:     meetingRepo,
		slotRepo:        slotRepo,
		participantRepo: participantRepo,
		metrics:         m,
		logger:          logger,
	}
}

// ScheduleMeeting claims a free slot for a new meeting. Meeting insert, slot
// transition and participant inserts commit or roll back together. The slot
// transition is a conditional update on status FREE, so even under
// concurrent scheduling exactly one caller wins the slot.
func (s *meetingServiceImpl) ScheduleMeeting(ctx context.Context, req *dto.ScheduleMeetingRequest) (*dto.MeetingResponse, error) {
	var resp *dto.MeetingResponse

	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		slot, err := r.Slots.FindByIDForUpdate(ctx, req.SlotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewAppError(response.ErrCodeNotFound, "Slot not found", req.SlotID.String())
			}
			return err
		}
		if slot.Status == domain.SlotStatusBusy {
			return response.NewAppError(response.ErrCodeSlotBusy, "Slot is already busy", slot.ID.String())
		}

		meeting := &domain.Meeting{
			Title:       req.Title,
			Description: req.Description,
			OrganizerID: req.OrganizerID,
			SlotID:      slot.ID,
		}
		if err := r.Meetings.Create(ctx, meeting); err != nil {
			return err
		}

		rows, err := r.Slots.MarkBusy(ctx, slot.ID, meeting.ID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return response.NewAppError(response.ErrCodeSlotBusy, "Slot is already busy", slot.ID.String())
		}

		participants := make([]*domain.MeetingParticipant, 0, len(req.ParticipantIDs))
		for _, userID := range req.ParticipantIDs {
			participants = append(participants, &domain.MeetingParticipant{
				ID:        uuid.New(),
				MeetingID: meeting.ID,
				UserID:    userID,
			})
		}
		if err := r.Participants.CreateBatch(ctx, participants); err != nil {
			return err
		}

		resp = &dto.MeetingResponse{
			ID:             meeting.ID,
			Title:          meeting.Title,
			Description:    meeting.Description,
			OrganizerID:    meeting.OrganizerID,
			SlotID:         slot.ID,
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			ParticipantIDs: req.ParticipantIDs,
			CreatedAt:      meeting.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, s.classify(err, "Failed to schedule meeting")
	}

	s.metrics.IncrementMeetingsScheduled()
	s.logger.Info("Meeting scheduled",
		zap.String("meeting_id", resp.ID.String()),
		zap.String("slot_id", req.SlotID.String()),
		zap.Int("participants", len(req.ParticipantIDs)),
	)

	return resp, nil
}

// GetMeeting returns the denormalized meeting view. The slot reference is
// weak: a meeting whose slot was removed out-of-band reports a distinct
// not-found error instead of a partial view.
func (s *meetingServiceImpl) GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Meeting not found", id.String())
		}
		return nil, s.classify(err, "Failed to fetch meeting")
	}

	return s.assembleView(ctx, meeting)
}

// ListUserMeetings returns the meeting views organized by a user. Meetings
// whose slot is missing are logged and skipped rather than failing the
// whole listing.
func (s *meetingServiceImpl) ListUserMeetings(ctx context.Context, organizerID uuid.UUID) ([]*dto.MeetingResponse, error) {
	meetings, err := s.meetingRepo.FindByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, s.classify(err, "Failed to fetch meetings")
	}

	views := make([]*dto.MeetingResponse, 0, len(meetings))
	for _, meeting := range meetings {
		view, err := s.assembleView(ctx, meeting)
		if err != nil {
			var appErr *response.AppError
			if errors.As(err, &appErr) && appErr.Code == response.ErrCodeNotFound {
				s.logger.Warn("Meeting references a missing slot, skipping",
					zap.String("meeting_id", meeting.ID.String()),
					zap.String("slot_id", meeting.SlotID.String()),
				)
				continue
			}
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// assembleView joins a meeting with its slot interval and participant list
func (s *meetingServiceImpl) assembleView(ctx context.Context, meeting *domain.Meeting) (*dto.MeetingResponse, error) {
	slot, err := s.slotRepo.FindByID(ctx, meeting.SlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Slot for meeting no longer exists", meeting.ID.String())
		}
		return nil, s.classify(err, "Failed to fetch slot for meeting")
	}

	participants, err := s.participantRepo.FindByMeeting(ctx, meeting.ID)
	if err != nil {
		return nil, s.classify(err, "Failed to fetch meeting participants")
	}
	participantIDs := make([]uuid.UUID, 0, len(participants))
	for _, p := range participants {
		participantIDs = append(participantIDs, p.UserID)
	}

	return &dto.MeetingResponse{
		ID:             meeting.ID,
		Title:          meeting.Title,
		Description:    meeting.Description,
		OrganizerID:    meeting.OrganizerID,
		SlotID:         meeting.SlotID,
		StartTime:      slot.StartTime,
		EndTime:        slot.EndTime,
		ParticipantIDs: participantIDs,
		CreatedAt:      meeting.CreatedAt,
	}, nil
}

// classify passes AppErrors through and wraps everything else as internal
func (s *meetingServiceImpl) classify(err error, message string) error {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	s.logger.Error(message, zap.Error(err))
	return response.NewAppError(response.ErrCodeInternal, message, err.Error())
}
