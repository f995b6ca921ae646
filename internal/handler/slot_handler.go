package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-scheduler-api/internal/domain"
	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/repository"
	"meeting-scheduler-api/internal/response"
	"meeting-scheduler-api/internal/service"
)

type SlotHandler struct {
	slotService service.SlotService
}

func NewSlotHandler(slotService service.SlotService) *SlotHandler {
	return &SlotHandler{
		slotService: slotService,
	}
}

// CreateSlot godoc
// @Summary      Create a time slot
// @Description  Adds a free slot to a calendar. The slot must not overlap any existing slot on the same calendar; touching at an endpoint is allowed.
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        calendarId path string true "Calendar ID"
// @Param        request body dto.CreateSlotRequest true "Slot interval"
// @Success      201 {object} response.SuccessResponse{data=dto.SlotResponse} "Slot created"
// @Failure      400 {object} response.ErrorResponse "Invalid interval"
// @Failure      404 {object} response.ErrorResponse "Calendar not found"
// @Failure      409 {object} response.ErrorResponse "Slot overlaps an existing slot"
// @Router       /calendars/{calendarId}/slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	calendarID, err := uuid.Parse(c.Param("calendarId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid calendar ID")
		return
	}

	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	slot, err := h.slotService.CreateSlot(c.Request.Context(), calendarID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, slot)
}

// ListSlots godoc
// @Summary      List slots of a calendar
// @Tags         slots
// @Produce      json
// @Param        calendarId path string true "Calendar ID"
// @Param        status query string false "Filter by status" Enums(FREE, BUSY)
// @Param        from query string false "Earliest start time (RFC 3339)"
// @Param        to query string false "Latest end time (RFC 3339)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.SlotResponse} "Slots ordered by start time"
// @Failure      400 {object} response.ErrorResponse "Invalid filter"
// @Router       /calendars/{calendarId}/slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	calendarID, err := uuid.Parse(c.Param("calendarId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid calendar ID")
		return
	}

	var filter repository.SlotFilter

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.SlotStatus(statusStr)
		if status != domain.SlotStatusFree && status != domain.SlotStatusBusy {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "status must be FREE or BUSY")
			return
		}
		filter.Status = &status
	}
	if from, ok := parseTimeQuery(c, "from"); ok {
		filter.From = from
	} else {
		return
	}
	if to, ok := parseTimeQuery(c, "to"); ok {
		filter.To = to
	} else {
		return
	}

	slots, err := h.slotService.ListSlots(c.Request.Context(), calendarID, filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, slots)
}

// UpdateSlot godoc
// @Summary      Update a time slot
// @Description  Partial update of an unlinked slot's interval or status. Absent fields are left unchanged. Slots linked to a meeting are immutable.
// @Tags         slots
// @Accept       json
// @Produce      json
// @Param        slotId path string true "Slot ID"
// @Param        request body dto.UpdateSlotRequest true "Fields to change"
// @Success      200 {object} response.SuccessResponse{data=dto.SlotResponse} "Updated slot"
// @Failure      400 {object} response.ErrorResponse "Invalid interval"
// @Failure      404 {object} response.ErrorResponse "Slot not found"
// @Failure      409 {object} response.ErrorResponse "Slot linked to a meeting"
// @Router       /slots/{slotId} [put]
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid slot ID")
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	slot, err := h.slotService.UpdateSlot(c.Request.Context(), slotID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, slot)
}

// DeleteSlot godoc
// @Summary      Delete a time slot
// @Tags         slots
// @Param        slotId path string true "Slot ID"
// @Success      204 "Slot deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid slot ID"
// @Failure      404 {object} response.ErrorResponse "Slot not found"
// @Failure      409 {object} response.ErrorResponse "Slot linked to a meeting"
// @Router       /slots/{slotId} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("slotId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid slot ID")
		return
	}

	if err := h.slotService.DeleteSlot(c.Request.Context(), slotID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseTimeQuery reads an optional RFC 3339 query parameter. On a malformed
// value it writes the 400 response and reports ok=false.
func parseTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, name+" must be an RFC 3339 timestamp")
		return nil, false
	}
	return &parsed, true
}
