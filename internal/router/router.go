package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/database"
	"meeting-scheduler-api/internal/handler"
	"meeting-scheduler-api/internal/metrics"
	"meeting-scheduler-api/internal/middleware"
	"meeting-scheduler-api/internal/repository"
	"meeting-scheduler-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	BasePath       string
	AllowedOrigins []string
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "meeting-scheduler-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if !database.IsConnected(cfg.DB) {
			c.JSON(503, gin.H{"status": "not ready", "service": "meeting-scheduler-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "meeting-scheduler-api"})
	})

	// Initialize repositories
	repos := repository.NewRepositories(cfg.DB)
	uow := repository.NewGormUnitOfWork(cfg.DB)

	// The availability cache is optional, the service falls back to the
	// database when no Redis client is configured.
	var cache service.AvailabilityCache
	if cfg.Redis != nil {
		cache = service.NewRedisAvailabilityCache(cfg.Redis)
	}

	// Initialize services
	userService := service.NewUserService(repos.Users, cfg.Logger)
	calendarService := service.NewCalendarService(repos.Calendars, repos.Users, cfg.Logger)
	slotService := service.NewSlotService(uow, repos.Slots, cfg.Metrics, cfg.Logger)
	meetingService := service.NewMeetingService(uow, repos.Meetings, repos.Slots, repos.Participants, cfg.Metrics, cfg.Logger)
	availabilityService := service.NewAvailabilityService(repos.Slots, cache, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	slotHandler := handler.NewSlotHandler(slotService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityService)

	// API routes group
	api := r.Group(cfg.BasePath)

	users := api.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/search", userHandler.SearchUsers)
		users.GET("/:userId", userHandler.GetUser)
		users.GET("/:userId/calendars", calendarHandler.ListUserCalendars)
		users.GET("/:userId/availability", availabilityHandler.GetAvailability)
		users.GET("/:userId/meetings", meetingHandler.ListUserMeetings)
	}

	calendars := api.Group("/calendars")
	{
		calendars.POST("", calendarHandler.CreateCalendar)
		calendars.GET("/:calendarId", calendarHandler.GetCalendar)
		calendars.POST("/:calendarId/slots", slotHandler.CreateSlot)
		calendars.GET("/:calendarId/slots", slotHandler.ListSlots)
	}

	slots := api.Group("/slots")
	{
		slots.PUT("/:slotId", slotHandler.UpdateSlot)
		slots.DELETE("/:slotId", slotHandler.DeleteSlot)
	}

	meetings := api.Group("/meetings")
	{
		meetings.POST("", meetingHandler.ScheduleMeeting)
		meetings.GET("/:meetingId", meetingHandler.GetMeeting)
	}

	return r
}
