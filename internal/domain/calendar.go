package domain

import "github.com/google/uuid"

// Calendar groups the time slots of one user. A user may own several
// calendars (work, personal).
type Calendar struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Name   string    `gorm:"type:varchar(255);not null" json:"name"`
}

// TableName returns the table name for Calendar model
func (Calendar) TableName() string {
	return "calendars"
}
