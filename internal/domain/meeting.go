package domain

import "github.com/google/uuid"

// Meeting is the booking that claimed a time slot. SlotID is a weak
// reference: the slot row may be deleted out-of-band, readers must handle
// the dangling case.
type Meeting struct {
	BaseModel
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	OrganizerID uuid.UUID `gorm:"type:uuid;not null;index" json:"organizerId"`
	SlotID      uuid.UUID `gorm:"type:uuid;not null" json:"slotId"`
}

// TableName returns the table name for Meeting model
func (Meeting) TableName() string {
	return "meetings"
}
