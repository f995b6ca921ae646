package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/repository"
)

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	CreateUserFunc  func(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUserFunc     func(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	SearchUsersFunc func(ctx context.Context, query string) ([]*dto.UserResponse, error)
}

func (m *MockUserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) SearchUsers(ctx context.Context, query string) ([]*dto.UserResponse, error) {
	if m.SearchUsersFunc != nil {
		return m.SearchUsersFunc(ctx, query)
	}
	return nil, nil
}

// MockCalendarService is a mock implementation of service.CalendarService
type MockCalendarService struct {
	CreateCalendarFunc    func(ctx context.Context, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, error)
	GetCalendarFunc       func(ctx context.Context, id uuid.UUID) (*dto.CalendarResponse, error)
	ListUserCalendarsFunc func(ctx context.Context, userID uuid.UUID) ([]*dto.CalendarResponse, error)
}

func (m *MockCalendarService) CreateCalendar(ctx context.Context, req *dto.CreateCalendarRequest) (*dto.CalendarResponse, error) {
	if m.CreateCalendarFunc != nil {
		return m.CreateCalendarFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCalendarService) GetCalendar(ctx context.Context, id uuid.UUID) (*dto.CalendarResponse, error) {
	if m.GetCalendarFunc != nil {
		return m.GetCalendarFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCalendarService) ListUserCalendars(ctx context.Context, userID uuid.UUID) ([]*dto.CalendarResponse, error) {
	if m.ListUserCalendarsFunc != nil {
		return m.ListUserCalendarsFunc(ctx, userID)
	}
	return nil, nil
}

// MockSlotService is a mock implementation of service.SlotService
type MockSlotService struct {
	CreateSlotFunc func(ctx context.Context, calendarID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	UpdateSlotFunc func(ctx context.Context, slotID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlotFunc func(ctx context.Context, slotID uuid.UUID) error
	ListSlotsFunc  func(ctx context.Context, calendarID uuid.UUID, filter repository.SlotFilter) ([]*dto.SlotResponse, error)
}

func (m *MockSlotService) CreateSlot(ctx context.Context, calendarID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	if m.CreateSlotFunc != nil {
		return m.CreateSlotFunc(ctx, calendarID, req)
	}
	return nil, nil
}

func (m *MockSlotService) UpdateSlot(ctx context.Context, slotID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	if m.UpdateSlotFunc != nil {
		return m.UpdateSlotFunc(ctx, slotID, req)
	}
	return nil, nil
}

func (m *MockSlotService) DeleteSlot(ctx context.Context, slotID uuid.UUID) error {
	if m.DeleteSlotFunc != nil {
		return m.DeleteSlotFunc(ctx, slotID)
	}
	return nil
}

func (m *MockSlotService) ListSlots(ctx context.Context, calendarID uuid.UUID, filter repository.SlotFilter) ([]*dto.SlotResponse, error) {
	if m.ListSlotsFunc != nil {
		return m.ListSlotsFunc(ctx, calendarID, filter)
	}
	return nil, nil
}

// MockMeetingService is a mock implementation of service.MeetingService
type MockMeetingService struct {
	ScheduleMeetingFunc  func(ctx context.Context, req *dto.ScheduleMeetingRequest) (*dto.MeetingResponse, error)
	GetMeetingFunc       func(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error)
	ListUserMeetingsFunc func(ctx context.Context, organizerID uuid.UUID) ([]*dto.MeetingResponse, error)
}

func (m *MockMeetingService) ScheduleMeeting(ctx context.Context, req *dto.ScheduleMeetingRequest) (*dto.MeetingResponse, error) {
	if m.ScheduleMeetingFunc != nil {
		return m.ScheduleMeetingFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockMeetingService) GetMeeting(ctx context.Context, id uuid.UUID) (*dto.MeetingResponse, error) {
	if m.GetMeetingFunc != nil {
		return m.GetMeetingFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMeetingService) ListUserMeetings(ctx context.Context, organizerID uuid.UUID) ([]*dto.MeetingResponse, error) {
	if m.ListUserMeetingsFunc != nil {
		return m.ListUserMeetingsFunc(ctx, organizerID)
	}
	return nil, nil
}

// MockAvailabilityService is a mock implementation of service.AvailabilityService
type MockAvailabilityService struct {
	GetAvailabilityFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) (*dto.AvailabilityResponse, error)
}

func (m *MockAvailabilityService) GetAvailability(ctx context.Context, userID uuid.UUID, from, to time.Time) (*dto.AvailabilityResponse, error) {
	if m.GetAvailabilityFunc != nil {
		return m.GetAvailabilityFunc(ctx, userID, from, to)
	}
	return nil, nil
}
