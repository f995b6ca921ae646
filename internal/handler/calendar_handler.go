package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/response"
	"meeting-scheduler-api/internal/service"
)

type CalendarHandler struct {
	calendarService service.CalendarService
}

func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
	}
}

// CreateCalendar godoc
// @Summary      Create a calendar
// @Tags         calendars
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCalendarRequest true "Calendar to create"
// @Success      201 {object} response.SuccessResponse{data=dto.CalendarResponse} "Calendar created"
// @Failure      400 {object} response.ErrorResponse "Invalid request body"
// @Failure      404 {object} response.ErrorResponse "Owner not found"
// @Router       /calendars [post]
func (h *CalendarHandler) CreateCalendar(c *gin.Context) {
	var req dto.CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	calendar, err := h.calendarService.CreateCalendar(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, calendar)
}

// GetCalendar godoc
// @Summary      Fetch a calendar
// @Tags         calendars
// @Produce      json
// @Param        calendarId path string true "Calendar ID"
// @Success      200 {object} response.SuccessResponse{data=dto.CalendarResponse} "Calendar"
// @Failure      400 {object} response.ErrorResponse "Invalid calendar ID"
// @Failure      404 {object} response.ErrorResponse "Calendar not found"
// @Router       /calendars/{calendarId} [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	calendarID, err := uuid.Parse(c.Param("calendarId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid calendar ID")
		return
	}

	calendar, err := h.calendarService.GetCalendar(c.Request.Context(), calendarID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, calendar)
}

// ListUserCalendars godoc
// @Summary      List a user's calendars
// @Tags         calendars
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CalendarResponse} "Calendars"
// @Failure      400 {object} response.ErrorResponse "Invalid user ID"
// @Router       /users/{userId}/calendars [get]
func (h *CalendarHandler) ListUserCalendars(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	calendars, err := h.calendarService.ListUserCalendars(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, calendars)
}
