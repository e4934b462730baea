package service

import (
	"context"
	"encoding/json"
	"time"

	"nihongo_backend/internal/model"
	"nihongo_backend/internal/repository"
	"nihongo_backend/internal/scoring"
	"nihongo_backend/internal/streak"
	"nihongo_backend/internal/util"
	"nihongo_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	leaderboardCacheKey = "leaderboard:points"
	leaderboardCacheTTL = 5 * time.Minute
	leaderboardSize     = 20
)

// UserService handles profile, admin user management, the points leaderboard and the
// daily streak sweep.
type UserService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewUserService(userRepo *repository.UserRepository, rdb *redis.Client) *UserService {
	return &UserService{UserRepo: userRepo, Redis: rdb}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ListUsers(page, limit int, role, search string) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit, role, search)
}

// UpdateUserRequest carries optional fields; nil means "leave unchanged".
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Disabled *bool   `json:"disabled"`
}

func (s *UserService) UpdateUser(id uint, req UpdateUserRequest) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = model.UserRole(*req.Role)
	}
	if req.Disabled != nil {
		user.Disabled = *req.Disabled
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id uint) error {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.Delete(user)
}

// AwardPoints adds earned points and recomputes the denormalized level.
func (s *UserService) AwardPoints(userID uint, points int) error {
	if points <= 0 {
		return nil
	}
	if err := s.UserRepo.AddPoints(userID, points); err != nil {
		return err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	level := scoring.LevelForPoints(user.Points)
	if level != user.Level {
		if err := s.UserRepo.UpdateLevel(userID, level); err != nil {
			return err
		}
	}

	// Scores changed, drop the cached leaderboard.
	if s.Redis != nil {
		s.Redis.Del(context.Background(), leaderboardCacheKey)
	}
	return nil
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Level  int    `json:"level"`
	Streak int    `json:"streak"`
}

// Leaderboard returns the top users by points, served from Redis when fresh.
func (s *UserService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	users, err := s.UserRepo.FindTopByPoints(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = LeaderboardEntry{
			UserID: u.ID,
			Name:   u.Name,
			Points: u.Points,
			Level:  u.Level,
			Streak: u.Streak,
		}
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			s.Redis.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL)
		}
	}
	return entries, nil
}

// SweepStaleStreaks zeroes streaks of users who have not logged in for more than two
// days. Called once at startup and then daily by the background job.
func (s *UserService) SweepStaleStreaks(now time.Time) {
	affected, err := s.UserRepo.ResetStaleStreaks(streak.StaleCutoff(now))
	if err != nil {
		logger.Log.Error("streak sweep failed", zap.Error(err))
		return
	}
	if affected > 0 {
		logger.Log.Info("streak sweep reset stale streaks", zap.Int64("users", affected))
	}
}
