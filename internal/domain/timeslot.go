package domain

import (
	"time"

	"github.com/google/uuid"
)

// SlotStatus represents the lifecycle state of a time slot
type SlotStatus string

const (
	SlotStatusFree SlotStatus = "FREE"
	SlotStatusBusy SlotStatus = "BUSY"
)

// TimeSlot is a bookable interval on a calendar. Intervals are half-open:
// [StartTime, EndTime). A BUSY slot carries the id of the meeting that
// claimed it.
type TimeSlot struct {
	BaseModel
	CalendarID uuid.UUID  `gorm:"type:uuid;not null;index:idx_slots_calendar_start,priority:1" json:"calendarId"`
	StartTime  time.Time  `gorm:"not null;index:idx_slots_calendar_start,priority:2" json:"startTime"`
	EndTime    time.Time  `gorm:"not null" json:"endTime"`
	Status     SlotStatus `gorm:"type:varchar(8);not null;default:'FREE'" json:"status"`
	MeetingID  *uuid.UUID `gorm:"type:uuid" json:"meetingId,omitempty"`
}

// TableName returns the table name for TimeSlot model
func (TimeSlot) TableName() string {
	return "time_slots"
}
