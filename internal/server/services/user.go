// Package services contains server-side business logic. UserService
// implements registration, login and bearer-token verification.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/alaaldainabdo/scalable-login-system/internal/common"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/auth"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/config"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/models"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/repositories/repomanager"
)

// UserService provides the authentication flows. Every error it returns is a
// *common.Error whose Kind tells the transport how to answer.
type UserService struct {
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	jwtSecret   []byte
}

// NewUserService constructs a UserService. The secret is copied out of cfg
// once; later changes to cfg are not observed.
func NewUserService(m repomanager.RepositoryManager, hasher auth.PasswordHasher, cfg *config.Config) *UserService {
	return &UserService{
		repomanager: m,
		hasher:      hasher,
		jwtSecret:   []byte(cfg.SecretKey),
	}
}

// Register hashes password and stores a new user. Fields are not validated.
// Any store failure, a duplicate email included, is KindPersistence.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.NewError(common.KindUnexpected, fmt.Errorf("hash password: %w", err))
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	u, err := s.repomanager.Users().Create(ctx, user)
	if err != nil {
		return nil, common.NewError(common.KindPersistence, fmt.Errorf("create user: %w", err))
	}
	return u, nil
}

// Login looks the user up by email, verifies password against the stored
// hash and returns a token carrying the user id, valid for auth.TokenValidity.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.NewError(common.KindNotFound, err)
		}
		return "", common.NewError(common.KindPersistence, fmt.Errorf("find user: %w", err))
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return "", common.NewError(common.KindInvalidCredential, err)
		}
		return "", common.NewError(common.KindUnexpected, fmt.Errorf("compare password: %w", err))
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, auth.TokenValidity)
	if err != nil {
		return "", common.NewError(common.KindUnexpected, fmt.Errorf("sign token: %w", err))
	}
	return token, nil
}

// Authenticate verifies a bearer token and returns the user id it carries.
func (s *UserService) Authenticate(ctx context.Context, token string) (string, error) {
	userID, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrorMisconfigured) {
			return "", common.NewError(common.KindUnexpected, err)
		}
		return "", common.NewError(common.KindUnauthorized, err)
	}
	return userID, nil
}
