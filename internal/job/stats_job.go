package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"meeting-scheduler-api/internal/metrics"
	"meeting-scheduler-api/internal/repository"
)

const statsQueryTimeout = 5 * time.Second

// StatsJob refreshes the business gauges from the database.
// It is scheduled through cron and also runs once at startup so the
// gauges are populated before the first tick.
type StatsJob struct {
	userRepo    repository.UserRepository
	slotRepo    repository.SlotRepository
	meetingRepo repository.MeetingRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewStatsJob creates a new StatsJob instance
func NewStatsJob(
	userRepo repository.UserRepository,
	slotRepo repository.SlotRepository,
	meetingRepo repository.MeetingRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *StatsJob {
	return &StatsJob{
		userRepo:    userRepo,
		slotRepo:    slotRepo,
		meetingRepo: meetingRepo,
		metrics:     m,
		logger:      logger,
	}
}

// Run executes one stats collection pass
func (j *StatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), statsQueryTimeout)
	defer cancel()

	users, err := j.userRepo.Count(ctx)
	if err != nil {
		j.logger.Error("Failed to count users", zap.Error(err))
		return
	}
	slots, err := j.slotRepo.Count(ctx)
	if err != nil {
		j.logger.Error("Failed to count time slots", zap.Error(err))
		return
	}
	meetings, err := j.meetingRepo.Count(ctx)
	if err != nil {
		j.logger.Error("Failed to count meetings", zap.Error(err))
		return
	}

	j.metrics.SetUsersTotal(users)
	j.metrics.SetSlotsTotal(slots)
	j.metrics.SetMeetingsTotal(meetings)

	j.logger.Debug("Stats gauges refreshed",
		zap.Int64("users", users),
		zap.Int64("slots", slots),
		zap.Int64("meetings", meetings),
	)
}
