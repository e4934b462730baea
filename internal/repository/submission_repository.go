package repository

import (
	"nihongo_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// CreateWithAnswers inserts the submission row and its answer rows in one transaction.
func (r *SubmissionRepository) CreateWithAnswers(sub *model.Submission, answers []model.SubmissionAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].SubmissionID = sub.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SubmissionRepository) FindByID(id string) (*model.Submission, error) {
	var sub model.Submission
	err := r.DB.Preload("Answers").First(&sub, "id = ?", id).Error
	return &sub, err
}

// FindByUserAndLesson backs the pre-insert uniqueness check.
func (r *SubmissionRepository) FindByUserAndLesson(userID, lessonID uint) (*model.Submission, error) {
	var sub model.Submission
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) Update(sub *model.Submission) error {
	return r.DB.Save(sub).Error
}

func (r *SubmissionRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_id = ?", id).Delete(&model.SubmissionAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Submission{}, "id = ?", id).Error
	})
}

// ListByLesson supports the admin review table, optionally filtered by status.
func (r *SubmissionRepository) ListByLesson(lessonID uint, page, limit int, status string) ([]model.Submission, int64, error) {
	var subs []model.Submission
	var total int64

	query := r.DB.Model(&model.Submission{}).Where("lesson_id = ?", lessonID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("submitted_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&subs).Error
	return subs, total, err
}

func (r *SubmissionRepository) ListByUser(userID uint) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.DB.Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&subs).Error
	return subs, err
}
