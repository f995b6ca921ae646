package dto

import (
	"time"

	"github.com/google/uuid"

	"meeting-scheduler-api/internal/domain"
)

// CreateSlotRequest represents the request body for creating a time slot.
// The interval is half-open: [startTime, endTime).
type CreateSlotRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// UpdateSlotRequest represents a partial update of a time slot. Absent
// fields leave the stored value unchanged. Status can move an unlinked slot
// between FREE and BUSY; slots linked to a meeting reject any update.
type UpdateSlotRequest struct {
	StartTime *time.Time         `json:"startTime"`
	EndTime   *time.Time         `json:"endTime"`
	Status    *domain.SlotStatus `json:"status" binding:"omitempty,oneof=FREE BUSY"`
}

// SlotResponse represents a time slot in API responses
type SlotResponse struct {
	ID         uuid.UUID  `json:"id"`
	CalendarID uuid.UUID  `json:"calendarId"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    time.Time  `json:"endTime"`
	Status     string     `json:"status"`
	MeetingID  *uuid.UUID `json:"meetingId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// AvailabilityResponse represents the free/busy view of a user over a window
type AvailabilityResponse struct {
	UserID uuid.UUID       `json:"userId"`
	From   time.Time       `json:"from"`
	To     time.Time       `json:"to"`
	Slots  []*SlotResponse `json:"slots"`
}

// ToSlotResponse converts a TimeSlot domain model to SlotResponse
func ToSlotResponse(slot *domain.TimeSlot) *SlotResponse {
	return &SlotResponse{
		ID:         slot.ID,
		CalendarID: slot.CalendarID,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Status:     string(slot.Status),
		MeetingID:  slot.MeetingID,
		CreatedAt:  slot.CreatedAt,
	}
}

// ToSlotResponses converts a slice of TimeSlot domain models to SlotResponses
func ToSlotResponses(slots []*domain.TimeSlot) []*SlotResponse {
	responses := make([]*SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, ToSlotResponse(slot))
	}
	return responses
}
