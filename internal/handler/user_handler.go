package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/response"
	"meeting-scheduler-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser godoc
// @Summary      Register a user
// @Description  Creates a user with a unique username and email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "User to create"
// @Success      201 {object} response.SuccessResponse{data=dto.UserResponse} "User created"
// @Failure      400 {object} response.ErrorResponse "Invalid request body"
// @Failure      409 {object} response.ErrorResponse "Email or username already in use"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, user)
}

// GetUser godoc
// @Summary      Fetch a user
// @Tags         users
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "User"
// @Failure      400 {object} response.ErrorResponse "Invalid user ID"
// @Failure      404 {object} response.ErrorResponse "User not found"
// @Router       /users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// SearchUsers godoc
// @Summary      Search users
// @Description  Substring search over usernames and emails, at most 10 results
// @Tags         users
// @Produce      json
// @Param        q query string true "Search term"
// @Success      200 {object} response.SuccessResponse{data=[]dto.UserResponse} "Matching users"
// @Failure      400 {object} response.ErrorResponse "Missing search term"
// @Router       /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "q query parameter is required")
		return
	}

	users, err := h.userService.SearchUsers(c.Request.Context(), query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, users)
}
