package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repositories bundles the data access interfaces that participate in
// transactions. Inside a unit of work every repository runs on the same
// transaction handle.
type Repositories struct {
	Users        UserRepository
	Calendars    CalendarRepository
	Slots        SlotRepository
	Meetings     MeetingRepository
	Participants ParticipantRepository
}

// NewRepositories builds the repository bundle on the given handle, which
// may be a plain connection or an open transaction.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewGormUserRepository(db),
		Calendars:    NewGormCalendarRepository(db),
		Slots:        NewGormSlotRepository(db),
		Meetings:     NewGormMeetingRepository(db),
		Participants: NewGormParticipantRepository(db),
	}
}

// UnitOfWork runs a function against a repository bundle atomically. The
// function's error rolls everything back; nil commits.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r *Repositories) error) error
}

type gormUnitOfWorkImpl struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GORM-based UnitOfWork
func NewGormUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWorkImpl{db: db}
}

func (u *gormUnitOfWorkImpl) Do(ctx context.Context, fn func(r *Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// forUpdate adds a row lock on dialects that support it. The sqlite driver
// used in tests cannot parse FOR UPDATE; transactions there serialize on the
// database level instead.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
