package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kipkirui63/all-in-one/internal/model"
	"github.com/kipkirui63/all-in-one/internal/repository"
	"github.com/kipkirui63/all-in-one/pkg/auth"
)

// UserService はユーザー登録と認証を扱う（現状 HTTP には公開していない）
type UserService interface {
	Signup(ctx context.Context, username, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

type userServiceImpl struct {
	repo repository.UserRepository
}

// NewUserService creates a UserService backed by repo.
func NewUserService(repo repository.UserRepository) UserService {
	return &userServiceImpl{repo: repo}
}

// Signup hashes password with bcrypt and stores the user.
func (s *userServiceImpl) Signup(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{Username: username, PasswordHash: hash}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate returns ErrInvalidCredentials for an unknown user or a wrong
// password without telling the two apart.
func (s *userServiceImpl) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}
