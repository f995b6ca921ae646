package domain

// User is an account that owns calendars and organizes meetings
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
}

// TableName returns the table name for User model
func (User) TableName() string {
	return "users"
}
