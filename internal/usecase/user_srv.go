package usecase

import (
	"context"
	"fmt"
	"time"

	"stayease/internal/data/entity"
	"stayease/internal/data/repository"
	"stayease/internal/dto/request"
	"stayease/internal/dto/response"
	"stayease/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUser(ctx context.Context, userID string) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users")
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to count users")
	}

	items := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateUser validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user")
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateUser validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// Email changes must not collide with another account
	if req.Email != user.Email {
		existing, err := s.repo.User.FindByEmail(ctx, req.Email)
		if err != nil {
			s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
			return nil, fmt.Errorf("failed to check email")
		}
		if existing != nil {
			return nil, fmt.Errorf("email already registered")
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = entity.UserRole(req.Role)
	user.UpdatedAt = time.Now()

	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
		user.PasswordHash = hashedPassword
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}

	s.log.Info("User updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID")
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return err
	}

	// A deleted account must not keep working through live sessions
	if err := s.repo.Session.RevokeAllUserSessions(ctx, id); err != nil {
		s.log.Warn("Failed to revoke sessions of deleted user",
			zap.Error(err), zap.String("user_id", userID))
	}

	return nil
}
