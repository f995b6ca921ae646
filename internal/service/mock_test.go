package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"meeting-scheduler-api/internal/domain"
	"meeting-scheduler-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *domain.User) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	SearchFunc           func(ctx context.Context, query string, limit int) ([]*domain.User, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *MockUserRepository) Search(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return nil, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCalendarRepository is a mock implementation of CalendarRepository
type MockCalendarRepository struct {
	CreateFunc            func(ctx context.Context, calendar *domain.Calendar) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Calendar, error)
	FindByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Calendar, error)
	FindByUserFunc        func(ctx context.Context, userID uuid.UUID) ([]*domain.Calendar, error)
	ExistsFunc            func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockCalendarRepository) Create(ctx context.Context, calendar *domain.Calendar) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, calendar)
	}
	return nil
}

func (m *MockCalendarRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Calendar, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCalendarRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Calendar, error) {
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCalendarRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Calendar, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockCalendarRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

// MockSlotRepository is a mock implementation of SlotRepository
type MockSlotRepository struct {
	CreateFunc             func(ctx context.Context, slot *domain.TimeSlot) error
	UpdateColumnsFunc      func(ctx context.Context, id uuid.UUID, values map[string]interface{}) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error)
	FindByIDForUpdateFunc  func(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error)
	FindByCalendarFunc     func(ctx context.Context, calendarID uuid.UUID, filter repository.SlotFilter) ([]*domain.TimeSlot, error)
	FindByUserAndRangeFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.TimeSlot, error)
	CountOverlappingFunc   func(ctx context.Context, calendarID uuid.UUID, start, end time.Time) (int64, error)
	MarkBusyFunc           func(ctx context.Context, slotID, meetingID uuid.UUID) (int64, error)
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *MockSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, slot)
	}
	return nil
}

func (m *MockSlotRepository) UpdateColumns(ctx context.Context, id uuid.UUID, values map[string]interface{}) error {
	if m.UpdateColumnsFunc != nil {
		return m.UpdateColumnsFunc(ctx, id, values)
	}
	return nil
}

func (m *MockSlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockSlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSlotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.TimeSlot, error) {
	if m.FindByIDForUpdateFunc != nil {
		return m.FindByIDForUpdateFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSlotRepository) FindByCalendar(ctx context.Context, calendarID uuid.UUID, filter repository.SlotFilter) ([]*domain.TimeSlot, error) {
	if m.FindByCalendarFunc != nil {
		return m.FindByCalendarFunc(ctx, calendarID, filter)
	}
	return nil, nil
}

func (m *MockSlotRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.TimeSlot, error) {
	if m.FindByUserAndRangeFunc != nil {
		return m.FindByUserAndRangeFunc(ctx, userID, from, to)
	}
	return nil, nil
}

func (m *MockSlotRepository) CountOverlapping(ctx context.Context, calendarID uuid.UUID, start, end time.Time) (int64, error) {
	if m.CountOverlappingFunc != nil {
		return m.CountOverlappingFunc(ctx, calendarID, start, end)
	}
	return 0, nil
}

func (m *MockSlotRepository) MarkBusy(ctx context.Context, slotID, meetingID uuid.UUID) (int64, error) {
	if m.MarkBusyFunc != nil {
		return m.MarkBusyFunc(ctx, slotID, meetingID)
	}
	return 1, nil
}

func (m *MockSlotRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockMeetingRepository is a mock implementation of MeetingRepository
type MockMeetingRepository struct {
	CreateFunc          func(ctx context.Context, meeting *domain.Meeting) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	FindByOrganizerFunc func(ctx context.Context, organizerID uuid.UUID) ([]*domain.Meeting, error)
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, meeting)
	}
	return nil
}

func (m *MockMeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMeetingRepository) FindByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*domain.Meeting, error) {
	if m.FindByOrganizerFunc != nil {
		return m.FindByOrganizerFunc(ctx, organizerID)
	}
	return nil, nil
}

func (m *MockMeetingRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockParticipantRepository is a mock implementation of ParticipantRepository
type MockParticipantRepository struct {
	CreateBatchFunc   func(ctx context.Context, participants []*domain.MeetingParticipant) error
	FindByMeetingFunc func(ctx context.Context, meetingID uuid.UUID) ([]*domain.MeetingParticipant, error)
}

func (m *MockParticipantRepository) CreateBatch(ctx context.Context, participants []*domain.MeetingParticipant) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, participants)
	}
	return nil
}

func (m *MockParticipantRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*domain.MeetingParticipant, error) {
	if m.FindByMeetingFunc != nil {
		return m.FindByMeetingFunc(ctx, meetingID)
	}
	return nil, nil
}

// MockUnitOfWork runs the function against a fixed repository bundle. The
// mutex serializes units of work the way row locks do on a real database.
type MockUnitOfWork struct {
	Repos repository.Repositories
	mu    sync.Mutex
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(r *repository.Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(&m.Repos)
}
