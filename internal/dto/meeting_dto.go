package dto

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleMeetingRequest represents the request body for scheduling a meeting
// on a free time slot
type ScheduleMeetingRequest struct {
	Title          string      `json:"title" binding:"required" example:"sprint planning"`
	Description    string      `json:"description"`
	OrganizerID    uuid.UUID   `json:"organizerId" binding:"required"`
	SlotID         uuid.UUID   `json:"slotId" binding:"required"`
	ParticipantIDs []uuid.UUID `json:"participantIds"`
}

// MeetingResponse is the denormalized meeting view: meeting fields plus the
// interval of its slot and the participant user ids in submission order.
type MeetingResponse struct {
	ID             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	OrganizerID    uuid.UUID   `json:"organizerId"`
	SlotID         uuid.UUID   `json:"slotId"`
	StartTime      time.Time   `json:"startTime"`
	EndTime        time.Time   `json:"endTime"`
	ParticipantIDs []uuid.UUID `json:"participantIds"`
	CreatedAt      time.Time   `json:"createdAt"`
}
