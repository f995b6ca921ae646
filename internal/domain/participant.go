package domain

import "github.com/google/uuid"

// MeetingParticipant links a user to a meeting. Rows are insert-only and
// intentionally carry no uniqueness constraint: the participant list is
// stored exactly as submitted, duplicates included.
type MeetingParticipant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MeetingID uuid.UUID `gorm:"type:uuid;not null;index" json:"meetingId"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"userId"`
}

// TableName returns the table name for MeetingParticipant model
func (MeetingParticipant) TableName() string {
	return "meeting_participants"
}
