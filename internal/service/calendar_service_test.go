package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/domain"
	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/response"
)

func TestCreateCalendar_Success(t *testing.T) {
	userID := uuid.New()
	userRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{Username: "alice"}, nil
		},
	}
	calendarRepo := &MockCalendarRepository{
		CreateFunc: func(ctx context.Context, calendar *domain.Calendar) error {
			calendar.ID = uuid.New()
			return nil
		},
	}
	svc := NewCalendarService(calendarRepo, userRepo, zap.NewNop())

	resp, err := svc.CreateCalendar(context.Background(), &dto.CreateCalendarRequest{
		UserID: userID, Name: "work",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, "work", resp.Name)
}

func TestCreateCalendar_UserNotFound(t *testing.T) {
	created := false
	userRepo := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	calendarRepo := &MockCalendarRepository{
		CreateFunc: func(ctx context.Context, calendar *domain.Calendar) error {
			created = true
			return nil
		},
	}
	svc := NewCalendarService(calendarRepo, userRepo, zap.NewNop())

	_, err := svc.CreateCalendar(context.Background(), &dto.CreateCalendarRequest{
		UserID: uuid.New(), Name: "work",
	})

	require.Error(t, err)
	assert.Equal(t, response.ErrCodeNotFound, appErrorCode(t, err))
	assert.False(t, created)
}

func TestGetCalendar_NotFound(t *testing.T) {
	calendarRepo := &MockCalendarRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Calendar, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewCalendarService(calendarRepo, &MockUserRepository{}, zap.NewNop())

	_, err := svc.GetCalendar(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, response.ErrCodeNotFound, appErrorCode(t, err))
}

func TestListUserCalendars(t *testing.T) {
	userID := uuid.New()
	calendarRepo := &MockCalendarRepository{
		FindByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]*domain.Calendar, error) {
			assert.Equal(t, userID, uid)
			return []*domain.Calendar{{Name: "work"}, {Name: "personal"}}, nil
		},
	}
	svc := NewCalendarService(calendarRepo, &MockUserRepository{}, zap.NewNop())

	calendars, err := svc.ListUserCalendars(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, calendars, 2)
	assert.Equal(t, "work", calendars[0].Name)
}
