package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/response"
	"meeting-scheduler-api/internal/service"
)

type MeetingHandler struct {
	meetingService service.MeetingService
}

func NewMeetingHandler(meetingService service.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// ScheduleMeeting godoc
// @Summary      Schedule a meeting
// @Description  Claims a free slot for a new meeting. Meeting, slot transition and participant list are written atomically.
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        request body dto.ScheduleMeetingRequest true "Meeting to schedule"
// @Success      201 {object} response.SuccessResponse{data=dto.MeetingResponse} "Meeting scheduled"
// @Failure      400 {object} response.ErrorResponse "Invalid request body"
// @Failure      404 {object} response.ErrorResponse "Slot not found"
// @Failure      409 {object} response.ErrorResponse "Slot already busy"
// @Router       /meetings [post]
func (h *MeetingHandler) ScheduleMeeting(c *gin.Context) {
	var req dto.ScheduleMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	meeting, err := h.meetingService.ScheduleMeeting(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, meeting)
}

// GetMeeting godoc
// @Summary      Fetch a meeting
// @Produce      json
// @Tags         meetings
// @Param        meetingId path string true "Meeting ID"
// @Success      200 {object} response.SuccessResponse{data=dto.MeetingResponse} "Meeting with slot interval and participants"
// @Failure      400 {object} response.ErrorResponse "Invalid meeting ID"
// @Failure      404 {object} response.ErrorResponse "Meeting not found or its slot is gone"
// @Router       /meetings/{meetingId} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	meeting, err := h.meetingService.GetMeeting(c.Request.Context(), meetingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meeting)
}

// ListUserMeetings godoc
// @Summary      List meetings organized by a user
// @Tags         meetings
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MeetingResponse} "Meetings"
// @Failure      400 {object} response.ErrorResponse "Invalid user ID"
// @Router       /users/{userId}/meetings [get]
func (h *MeetingHandler) ListUserMeetings(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	meetings, err := h.meetingService.ListUserMeetings(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meetings)
}
