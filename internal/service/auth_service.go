package service

import (
	"errors"
	"time"

	"nihongo_backend/internal/config"
	"nihongo_backend/internal/model"
	"nihongo_backend/internal/repository"
	"nihongo_backend/internal/streak"
	"nihongo_backend/internal/util"
	"nihongo_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	user.Level = 1
	return s.UserRepo.Create(user)
}

// Login checks credentials, advances the login streak and returns a signed token with
// the fresh user state.
func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if user.Disabled {
		return "", nil, util.ErrAccountDisabled
	}

	next := streak.Advance(streak.State{
		Current:   user.Streak,
		Longest:   user.LongestStreak,
		LastLogin: user.LastLoginDate,
	}, time.Now())

	user.Streak = next.Current
	user.LongestStreak = next.Longest
	user.LastLoginDate = next.LastLogin

	if err := s.UserRepo.UpdateStreak(user.ID, next.Current, next.Longest, *next.LastLogin); err != nil {
		// The login itself still succeeds; the streak write is retried on the next login.
		logger.Log.Error("failed to persist login streak", zap.Uint("userId", user.ID), zap.Error(err))
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
