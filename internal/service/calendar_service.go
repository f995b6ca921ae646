package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/domain"
	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/repository"
	"meeting-scheduler-api/internal/response"
)

// CalendarService defines the interface for calendar business logic
type CalendarService interface {
	CreateCalendar(ctx context.Context, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, error)
	GetCalendar(ctx context.Context, id uuid.UUID) (*dto.CalendarResponse, error)
	ListUserCalendars(ctx context.Context, userID uuid.UUID) ([]*dto.CalendarResponse, error)
}

type calendarServiceImpl struct {
	calendarRepo repository.CalendarRepository
	userRepo     repository.UserRepository
	logger       *zap.Logger
}

// NewCalendarService creates a new CalendarService instance
func NewCalendarService(
	calendarRepo repository.CalendarRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) CalendarService {
	return &calendarServiceImpl{
		calendarRepo: calendarRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// CreateCalendar creates a calendar owned by an existing user
func (s *calendarServiceImpl) CreateCalendar(ctx context.Context, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, error) {
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", req.UserID.String())
		}
		return nil, s.internal(err, "Failed to verify user")
	}

	calendar := &domain.Calendar{
		UserID: req.UserID,
		Name:   req.Name,
	}
	if err := s.calendarRepo.Create(ctx, calendar); err != nil {
		return nil, s.internal(err, "Failed to create calendar")
	}

	s.logger.Info("Calendar created",
		zap.String("calendar_id", calendar.ID.String()),
		zap.String("user_id", req.UserID.String()),
	)
	return dto.ToCalendarResponse(calendar), nil
}

func (s *calendarServiceImpl) GetCalendar(ctx context.Context, id uuid.UUID) (*dto.CalendarResponse, error) {
	calendar, err := s.calendarRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Calendar not found", id.String())
		}
		return nil, s.internal(err, "Failed to fetch calendar")
	}
	return dto.ToCalendarResponse(calendar), nil
}

func (s *calendarServiceImpl) ListUserCalendars(ctx context.Context, userID uuid.UUID) ([]*dto.CalendarResponse, error) {
	calendars, err := s.calendarRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, s.internal(err, "Failed to fetch calendars")
	}
	return dto.ToCalendarResponses(calendars), nil
}

func (s *calendarServiceImpl) internal(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return response.NewAppError(response.ErrCodeInternal, message, err.Error())
}
