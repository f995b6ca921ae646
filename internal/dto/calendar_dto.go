package dto

import (
	"time"

	"github.com/google/uuid"

	"meeting-scheduler-api/internal/domain"
)

// CreateCalendarRequest represents the request body for creating a calendar
type CreateCalendarRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
	Name   string    `json:"name" binding:"required" example:"work"`
}

// CalendarResponse represents a calendar in API responses
type CalendarResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCalendarResponse converts a Calendar domain model to CalendarResponse
func ToCalendarResponse(calendar *domain.Calendar) *CalendarResponse {
	return &CalendarResponse{
		ID:        calendar.ID,
		UserID:    calendar.UserID,
		Name:      calendar.Name,
		CreatedAt: calendar.CreatedAt,
	}
}

// ToCalendarResponses converts a slice of Calendar domain models to CalendarResponses
func ToCalendarResponses(calendars []*domain.Calendar) []*CalendarResponse {
	responses := make([]*CalendarResponse, 0, len(calendars))
	for _, calendar := range calendars {
		responses = append(responses, ToCalendarResponse(calendar))
	}
	return responses
}
