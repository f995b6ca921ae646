package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/metrics"
	"meeting-scheduler-api/internal/repository"
	"meeting-scheduler-api/internal/response"
	"meeting-scheduler-api/internal/service"
)

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// one connection so every statement sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE calendars (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			user_id TEXT NOT NULL,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE time_slots (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			calendar_id TEXT NOT NULL,
			start_time DATETIME NOT NULL,
			end_time DATETIME NOT NULL,
			status TEXT NOT NULL DEFAULT 'FREE',
			meeting_id TEXT
		)`,
		`CREATE TABLE meetings (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			organizer_id TEXT NOT NULL,
			slot_id TEXT NOT NULL
		)`,
		`CREATE TABLE meeting_participants (
			id TEXT PRIMARY KEY,
			meeting_id TEXT NOT NULL,
			user_id TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

// setupTestServer wires the full stack (repositories, unit of work, services,
// handlers) onto an in-memory database.
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupIntegrationDB(t)
	logger := zap.NewNop()
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), logger)

	repos := repository.NewRepositories(db)
	uow := repository.NewGormUnitOfWork(db)

	userService := service.NewUserService(repos.Users, logger)
	calendarService := service.NewCalendarService(repos.Calendars, repos.Users, logger)
	slotService := service.NewSlotService(uow, repos.Slots, m, logger)
	meetingService := service.NewMeetingService(uow, repos.Meetings, repos.Slots, repos.Participants, m, logger)
	availabilityService := service.NewAvailabilityService(repos.Slots, nil, m, logger)

	userHandler := NewUserHandler(userService)
	calendarHandler := NewCalendarHandler(calendarService)
	slotHandler := NewSlotHandler(slotService)
	meetingHandler := NewMeetingHandler(meetingService)
	availabilityHandler := NewAvailabilityHandler(availabilityService)

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.POST("/users", userHandler.CreateUser)
		api.GET("/users/search", userHandler.SearchUsers)
		api.GET("/users/:userId", userHandler.GetUser)
		api.GET("/users/:userId/calendars", calendarHandler.ListUserCalendars)
		api.GET("/users/:userId/availability", availabilityHandler.GetAvailability)
		api.GET("/users/:userId/meetings", meetingHandler.ListUserMeetings)
		api.POST("/calendars", calendarHandler.CreateCalendar)
		api.GET("/calendars/:calendarId", calendarHandler.GetCalendar)
		api.POST("/calendars/:calendarId/slots", slotHandler.CreateSlot)
		api.GET("/calendars/:calendarId/slots", slotHandler.ListSlots)
		api.PUT("/slots/:slotId", slotHandler.UpdateSlot)
		api.DELETE("/slots/:slotId", slotHandler.DeleteSlot)
		api.POST("/meetings", meetingHandler.ScheduleMeeting)
		api.GET("/meetings/:meetingId", meetingHandler.GetMeeting)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), "body: %s", w.Body.String())
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestSchedulingFlow(t *testing.T) {
	r := setupTestServer(t)

	// users
	w := doJSON(t, r, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{Username: "alice", Email: "alice@example.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	alice := decodeData[*dto.UserResponse](t, w)

	w = doJSON(t, r, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{Username: "bob", Email: "bob@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	bob := decodeData[*dto.UserResponse](t, w)

	// duplicate email is rejected
	w = doJSON(t, r, http.MethodPost, "/api/v1/users", dto.CreateUserRequest{Username: "alice2", Email: "alice@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.ErrCodeEmailInUse, decodeError(t, w).Error.Code)

	// calendar
	w = doJSON(t, r, http.MethodPost, "/api/v1/calendars", dto.CreateCalendarRequest{UserID: alice.ID, Name: "work"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	calendar := decodeData[*dto.CalendarResponse](t, w)

	// slots
	nine := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	ten := nine.Add(time.Hour)
	eleven := ten.Add(time.Hour)

	w = doJSON(t, r, http.MethodPost, "/api/v1/calendars/"+calendar.ID.String()+"/slots",
		dto.CreateSlotRequest{StartTime: nine, EndTime: ten})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	morning := decodeData[*dto.SlotResponse](t, w)
	assert.Equal(t, "FREE", morning.Status)

	// overlapping slot is rejected
	w = doJSON(t, r, http.MethodPost, "/api/v1/calendars/"+calendar.ID.String()+"/slots",
		dto.CreateSlotRequest{StartTime: nine.Add(30 * time.Minute), EndTime: eleven})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.ErrCodeSlotOverlap, decodeError(t, w).Error.Code)

	// abutting slot shares only the boundary instant and is accepted
	w = doJSON(t, r, http.MethodPost, "/api/v1/calendars/"+calendar.ID.String()+"/slots",
		dto.CreateSlotRequest{StartTime: ten, EndTime: eleven})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	noon := decodeData[*dto.SlotResponse](t, w)

	// schedule a meeting, duplicate participant entries are preserved
	w = doJSON(t, r, http.MethodPost, "/api/v1/meetings", dto.ScheduleMeetingRequest{
		Title:          "planning",
		OrganizerID:    alice.ID,
		SlotID:         morning.ID,
		ParticipantIDs: []uuid.UUID{bob.ID, bob.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	meeting := decodeData[*dto.MeetingResponse](t, w)
	assert.Equal(t, nine.Unix(), meeting.StartTime.Unix())
	assert.Equal(t, ten.Unix(), meeting.EndTime.Unix())
	assert.Len(t, meeting.ParticipantIDs, 2)

	// the slot is claimed now
	w = doJSON(t, r, http.MethodPost, "/api/v1/meetings", dto.ScheduleMeetingRequest{
		Title: "second", OrganizerID: bob.ID, SlotID: morning.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.ErrCodeSlotBusy, decodeError(t, w).Error.Code)

	// a claimed slot can be neither changed nor deleted
	w = doJSON(t, r, http.MethodPut, "/api/v1/slots/"+morning.ID.String(), map[string]string{
		"endTime": eleven.Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, response.ErrCodeSlotLinked, decodeError(t, w).Error.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/slots/"+morning.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// meeting view carries the slot interval and participants
	w = doJSON(t, r, http.MethodGet, "/api/v1/meetings/"+meeting.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decodeData[*dto.MeetingResponse](t, w)
	assert.Equal(t, []uuid.UUID{bob.ID, bob.ID}, fetched.ParticipantIDs)

	// availability covers both calendars' slots inside the window
	w = doJSON(t, r, http.MethodGet,
		"/api/v1/users/"+alice.ID.String()+"/availability?from=2026-03-02T00:00:00Z&to=2026-03-03T00:00:00Z", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	availability := decodeData[*dto.AvailabilityResponse](t, w)
	require.Len(t, availability.Slots, 2)
	assert.Equal(t, "BUSY", availability.Slots[0].Status)
	assert.Equal(t, "FREE", availability.Slots[1].Status)

	// status filter
	w = doJSON(t, r, http.MethodGet, "/api/v1/calendars/"+calendar.ID.String()+"/slots?status=FREE", nil)
	require.Equal(t, http.StatusOK, w.Code)
	free := decodeData[[]*dto.SlotResponse](t, w)
	require.Len(t, free, 1)
	assert.Equal(t, noon.ID, free[0].ID)

	// an unlinked slot can be blocked and freed by hand
	w = doJSON(t, r, http.MethodPut, "/api/v1/slots/"+noon.ID.String(), map[string]string{"status": "BUSY"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "BUSY", decodeData[*dto.SlotResponse](t, w).Status)

	w = doJSON(t, r, http.MethodPut, "/api/v1/slots/"+noon.ID.String(), map[string]string{"status": "FREE"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FREE", decodeData[*dto.SlotResponse](t, w).Status)

	// free slots can be removed
	w = doJSON(t, r, http.MethodDelete, "/api/v1/slots/"+noon.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet,
		"/api/v1/users/"+alice.ID.String()+"/availability?from=2026-03-02T00:00:00Z&to=2026-03-03T00:00:00Z", nil)
	require.Equal(t, http.StatusOK, w.Code)
	availability = decodeData[*dto.AvailabilityResponse](t, w)
	assert.Len(t, availability.Slots, 1)
}

func TestSchedulingFlow_UserSearch(t *testing.T) {
	r := setupTestServer(t)

	for _, u := range []dto.CreateUserRequest{
		{Username: "alice", Email: "alice@example.com"},
		{Username: "alicia", Email: "alicia@example.com"},
		{Username: "bob", Email: "bob@example.com"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/users", u)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/search?q=ali", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decodeData[[]*dto.UserResponse](t, w)
	assert.Len(t, users, 2)
}
