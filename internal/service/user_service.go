package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-scheduler-api/internal/domain"
	"meeting-scheduler-api/internal/dto"
	"meeting-scheduler-api/internal/repository"
	"meeting-scheduler-api/internal/response"
)

const userSearchLimit = 10

// UserService defines the interface for user business logic
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	SearchUsers(ctx context.Context, query string) ([]*dto.UserResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService instance
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser registers a user. Email and username must both be unused.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, s.internal(err, "Failed to check email")
	}
	if exists {
		return nil, response.NewAppError(response.ErrCodeEmailInUse, "Email already in use", req.Email)
	}

	exists, err = s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, s.internal(err, "Failed to check username")
	}
	if exists {
		return nil, response.NewAppError(response.ErrCodeUsernameInUse, "Username already in use", req.Username)
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, s.internal(err, "Failed to create user")
	}

	s.logger.Info("User created", zap.String("user_id", user.ID.String()))
	return dto.ToUserResponse(user), nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", id.String())
		}
		return nil, s.internal(err, "Failed to fetch user")
	}
	return dto.ToUserResponse(user), nil
}

func (s *userServiceImpl) SearchUsers(ctx context.Context, query string) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.Search(ctx, query, userSearchLimit)
	if err != nil {
		return nil, s.internal(err, "Failed to search users")
	}
	return dto.ToUserResponses(users), nil
}

func (s *userServiceImpl) internal(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return response.NewAppError(response.ErrCodeInternal, message, err.Error())
}
