package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/data/repos/user"
	types "github.com/cliptube/cliptube-backend/internal/domain"
	"github.com/cliptube/cliptube-backend/internal/platform/apperr"
	"github.com/cliptube/cliptube-backend/internal/platform/logger"
)

type UserService interface {
	CreateUser(ctx context.Context, username, email, fullName string) (*types.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo user.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo user.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) CreateUser(ctx context.Context, username, email, fullName string) (*types.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperr.Validation("username_required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, apperr.Validation("email_required")
	}

	existing, err := us.userRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("username_taken", errors.New("username already registered"))
	}

	created, err := us.userRepo.Create(ctx, nil, []*types.User{{
		Username: username,
		Email:    email,
		FullName: fullName,
	}})
	if err != nil {
		return nil, err
	}
	us.log.Info("user created", "user_id", created[0].ID, "username", username)
	return created[0], nil
}

func (us *userService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	if userID == uuid.Nil {
		return nil, apperr.InvalidReference("user_id")
	}
	u, err := us.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("user")
	}
	return u, nil
}
