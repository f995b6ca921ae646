package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-scheduler-api/internal/response"
	"meeting-scheduler-api/internal/service"
)

const defaultAvailabilityWindow = 7 * 24 * time.Hour

type AvailabilityHandler struct {
	availabilityService service.AvailabilityService
}

func NewAvailabilityHandler(availabilityService service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
	}
}

// GetAvailability godoc
// @Summary      Cross-calendar availability of a user
// @Description  Returns the slots fully contained in the window across all of the user's calendars. The window defaults to the next seven days.
// @Tags         availability
// @Produce      json
// @Param        userId path string true "User ID"
// @Param        from query string false "Window start (RFC 3339), defaults to now"
// @Param        to query string false "Window end (RFC 3339), defaults to from + 7 days"
// @Success      200 {object} response.SuccessResponse{data=dto.AvailabilityResponse} "Availability"
// @Failure      400 {object} response.ErrorResponse "Invalid window"
// @Router       /users/{userId}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	fromPtr, ok := parseTimeQuery(c, "from")
	if !ok {
		return
	}
	toPtr, ok := parseTimeQuery(c, "to")
	if !ok {
		return
	}

	from := time.Now().UTC()
	if fromPtr != nil {
		from = *fromPtr
	}
	to := from.Add(defaultAvailabilityWindow)
	if toPtr != nil {
		to = *toPtr
	}

	availability, err := h.availabilityService.GetAvailability(c.Request.Context(), userID, from, to)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, availability)
}
