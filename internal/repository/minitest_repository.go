package repository

import (
	"nihongo_backend/internal/model"

	"gorm.io/gorm"
)

type MiniTestRepository struct {
	DB *gorm.DB
}

func NewMiniTestRepository(db *gorm.DB) *MiniTestRepository {
	return &MiniTestRepository{DB: db}
}

func (r *MiniTestRepository) CreateTest(t *model.MiniTest) error {
	return r.DB.Create(t).Error
}

func (r *MiniTestRepository) FindTestByID(id uint) (*model.MiniTest, error) {
	var t model.MiniTest
	err := r.DB.First(&t, id).Error
	return &t, err
}

func (r *MiniTestRepository) UpdateTest(t *model.MiniTest) error {
	return r.DB.Save(t).Error
}

func (r *MiniTestRepository) DeleteTest(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_id = ?", id).Delete(&model.MiniTestQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MiniTest{}, id).Error
	})
}

func (r *MiniTestRepository) ListTests(page, limit int, publishedOnly bool) ([]model.MiniTest, int64, error) {
	var tests []model.MiniTest
	var total int64

	query := r.DB.Model(&model.MiniTest{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tests).Error
	return tests, total, err
}

func (r *MiniTestRepository) CreateQuestion(q *model.MiniTestQuestion) error {
	return r.DB.Create(q).Error
}

func (r *MiniTestRepository) UpdateQuestion(q *model.MiniTestQuestion) error {
	return r.DB.Save(q).Error
}

func (r *MiniTestRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.MiniTestQuestion{}, id).Error
}

func (r *MiniTestRepository) ListQuestions(testID uint) ([]model.MiniTestQuestion, error) {
	var qs []model.MiniTestQuestion
	err := r.DB.Where("test_id = ?", testID).
		Order("`order` ASC, id ASC").
		Find(&qs).Error
	return qs, err
}

func (r *MiniTestRepository) CreateResult(res *model.MiniTestResult) error {
	return r.DB.Create(res).Error
}

func (r *MiniTestRepository) ListResultsByUser(userID uint, testID uint) ([]model.MiniTestResult, error) {
	var results []model.MiniTestResult
	query := r.DB.Where("user_id = ?", userID)
	if testID != 0 {
		query = query.Where("test_id = ?", testID)
	}
	err := query.Order("completed_at DESC").Find(&results).Error
	return results, err
}

// BestScore returns the user's best score for a test, 0 when no attempt exists.
func (r *MiniTestRepository) BestScore(userID, testID uint) (int, error) {
	var best *int
	err := r.DB.Model(&model.MiniTestResult{}).
		Where("user_id = ? AND test_id = ?", userID, testID).
		Select("MAX(score)").
		Scan(&best).Error
	if err != nil || best == nil {
		return 0, err
	}
	return *best, nil
}
