package repository

import (
	"nihongo_backend/internal/model"

	"gorm.io/gorm"
)

type GrammarRepository struct {
	DB *gorm.DB
}

func NewGrammarRepository(db *gorm.DB) *GrammarRepository {
	return &GrammarRepository{DB: db}
}

func (r *GrammarRepository) CreateLesson(lesson *model.GrammarLesson) error {
	return r.DB.Create(lesson).Error
}

func (r *GrammarRepository) FindLessonByID(id uint) (*model.GrammarLesson, error) {
	var lesson model.GrammarLesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

func (r *GrammarRepository) UpdateLesson(lesson *model.GrammarLesson) error {
	return r.DB.Save(lesson).Error
}

// DeleteLesson removes a lesson together with its questions.
func (r *GrammarRepository) DeleteLesson(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", id).Delete(&model.GrammarQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.GrammarLesson{}, id).Error
	})
}

func (r *GrammarRepository) ListLessons(page, limit int, jlptLevel string, publishedOnly bool) ([]model.GrammarLesson, int64, error) {
	var lessons []model.GrammarLesson
	var total int64

	query := r.DB.Model(&model.GrammarLesson{})
	if jlptLevel != "" {
		query = query.Where("jlpt_level = ?", jlptLevel)
	}
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("`order` ASC, id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&lessons).Error
	return lessons, total, err
}

func (r *GrammarRepository) CreateQuestion(q *model.GrammarQuestion) error {
	return r.DB.Create(q).Error
}

func (r *GrammarRepository) FindQuestionByID(id uint) (*model.GrammarQuestion, error) {
	var q model.GrammarQuestion
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *GrammarRepository) UpdateQuestion(q *model.GrammarQuestion) error {
	return r.DB.Save(q).Error
}

func (r *GrammarRepository) DeleteQuestion(id uint) error {
	return r.DB.Delete(&model.GrammarQuestion{}, id).Error
}

func (r *GrammarRepository) ListQuestions(lessonID uint) ([]model.GrammarQuestion, error) {
	var qs []model.GrammarQuestion
	err := r.DB.Where("lesson_id = ?", lessonID).
		Order("`order` ASC, id ASC").
		Find(&qs).Error
	return qs, err
}
