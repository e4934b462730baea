package repository

import (
	"time"

	"nihongo_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) Delete(user *model.User) error {
	return r.DB.Delete(user).Error
}

// List supports the admin user table: role/search filters plus pagination.
func (r *UserRepository) List(page, limit int, role, search string) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.DB.Model(&model.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	return users, total, err
}

// AddPoints increments points atomically in the database.
func (r *UserRepository) AddPoints(userID uint, points int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("points", gorm.Expr("points + ?", points)).
		Error
}

func (r *UserRepository) UpdateLevel(userID uint, level int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("level", level).
		Error
}

// UpdateStreak persists a user's streak triple in one write.
func (r *UserRepository) UpdateStreak(userID uint, streakDays, longest int, lastLogin time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"streak":          streakDays,
			"longest_streak":  longest,
			"last_login_date": lastLogin,
		}).
		Error
}

// ResetStaleStreaks zeroes the streak of every user whose last login predates cutoff.
// Idempotent; run by the daily sweep.
func (r *UserRepository) ResetStaleStreaks(cutoff time.Time) (int64, error) {
	res := r.DB.Model(&model.User{}).
		Where("last_login_date IS NOT NULL AND last_login_date < ? AND streak != 0", cutoff).
		Update("streak", 0)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) FindTopByPoints(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("disabled = ?", false).
		Order("points DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}
