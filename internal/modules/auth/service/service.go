package service

import (
	"context"
	"errors"
	"strings"

	"restaurant-review-server/internal/model"
	"restaurant-review-server/internal/modules/auth/repo"
	platformservice "restaurant-review-server/internal/platform/service"

	"gorm.io/gorm"
)

const (
	MsgIncorrectLogin    = "Incorrect Username/Password"
	MsgUsernameTaken     = "Username already exists. Please choose a different username."
	MsgCredentialsNeeded = "Username and password are required."
	MsgUserNotFound      = "User not found."
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	hasher    PasswordHasher
}

// New 按当前配置选择口令摘要算法
func New(appService *platformservice.AppService, userStore repo.UserStore) *Service {
	return NewWithHasher(appService, userStore, HasherFor(appService.Config().Security.PasswordHash))
}

func NewWithHasher(appService *platformservice.AppService, userStore repo.UserStore, hasher PasswordHasher) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		hasher:     hasher,
	}
}

// CreateUser 注册账号。用户名重复时返回 conflict，已存在的账号不受影响
func (s *Service) CreateUser(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, platformservice.NewValidationError(MsgCredentialsNeeded)
	}

	existing, err := s.userStore.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, platformservice.NewConflictError(MsgUsernameTaken)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformservice.FromStore(err, MsgUserNotFound)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, platformservice.WrapInternal(err)
	}

	user := &model.User{Username: username, Password: digest}
	if err := s.userStore.Create(ctx, user); err != nil {
		// 并发注册同名账号时由唯一约束兜底
		if isUniqueViolation(err) {
			return nil, platformservice.NewConflictError(MsgUsernameTaken)
		}
		return nil, platformservice.FromStore(err, MsgUserNotFound)
	}
	return user, nil
}

// LoginUser 校验用户名与口令，成功时返回用户记录（含摘要）
func (s *Service) LoginUser(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, platformservice.NewUnauthorizedError(MsgIncorrectLogin)
	}

	user, err := s.userStore.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError(MsgIncorrectLogin)
		}
		return nil, platformservice.FromStore(err, MsgIncorrectLogin)
	}

	if !s.hasher.Verify(user.Password, password) {
		return nil, platformservice.NewUnauthorizedError(MsgIncorrectLogin)
	}
	return user, nil
}

// FindUserByID 供其他模块校验用户是否存在
func (s *Service) FindUserByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		return nil, platformservice.FromStore(err, MsgUserNotFound)
	}
	return user, nil
}

func (s *Service) Hasher() PasswordHasher {
	return s.hasher
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
