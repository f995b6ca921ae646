package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/metrics"
	"meeting-scheduler-api/internal/repository"
	"meeting-scheduler-api/internal/response"
)

const (
	availabilityCacheName = "availability"
	availabilityCacheTTL  = 30 * time.Second
)

// ErrCacheMiss is returned by AvailabilityCache.Get when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// AvailabilityCache is a small string cache with TTL. Availability reads
// tolerate responses up to the TTL stale.
type AvailabilityCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// AvailabilityService defines the interface for the cross-calendar
// availability view
type AvailabilityService interface {
	GetAvailability(ctx context.Context, userID uuid.UUID, from, to time.Time) (*dto.AvailabilityResponse, error)
}

type availabilityServiceImpl struct {
	slotRepo repository.SlotRepository
	cache    AvailabilityCache
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewAvailabilityService creates a new AvailabilityService instance. cache
// may be nil; every read then goes to the database.
func NewAvailabilityService(
	slotRepo repository.SlotRepository,
	cache AvailabilityCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) AvailabilityService {
	return &availabilityServiceImpl{
		slotRepo: slotRepo,
		cache:    cache,
		metrics:  m,
		logger:   logger,
	}
}

// GetAvailability returns all slots of the user's calendars fully contained
// in [from, to], ordered by start time.
func (s *availabilityServiceImpl) GetAvailability(ctx context.Context, userID uuid.UUID, from, to time.Time) (*dto.AvailabilityResponse, error) {
	if !to.After(from) {
		return nil, response.NewAppError(response.ErrCodeValidation, "to must be after from", "")
	}

	key := availabilityKey(userID, from, to)
	if cached, ok := s.lookupCache(ctx, key); ok {
		return cached, nil
	}

	slots, err := s.slotRepo.FindByUserAndRange(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("Failed to fetch availability", zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch availability", err.Error())
	}

	resp := &dto.AvailabilityResponse{
		UserID: userID,
		From:   from,
		To:     to,
		Slots:  dto.ToSlotResponses(slots),
	}
	s.storeCache(ctx, key, resp)
	return resp, nil
}

func (s *availabilityServiceImpl) lookupCache(ctx context.Context, key string) (*dto.AvailabilityResponse, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("Availability cache read failed", zap.Error(err))
		}
		s.metrics.RecordCacheMiss(availabilityCacheName)
		return nil, false
	}

	var resp dto.AvailabilityResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		s.logger.Warn("Availability cache entry corrupt", zap.Error(err))
		s.metrics.RecordCacheMiss(availabilityCacheName)
		return nil, false
	}

	s.metrics.RecordCacheHit(availabilityCacheName)
	return &resp, true
}

func (s *availabilityServiceImpl) storeCache(ctx context.Context, key string, resp *dto.AvailabilityResponse) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("Failed to marshal availability for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), availabilityCacheTTL); err != nil {
		s.logger.Warn("Availability cache write failed", zap.Error(err))
	}
}

func availabilityKey(userID uuid.UUID, from, to time.Time) string {
	return fmt.Sprintf("availability:%s:%d:%d", userID, from.Unix(), to.Unix())
}
