package repository

import (
	"nihongo_backend/internal/model"

	"gorm.io/gorm"
)

type VocabularyRepository struct {
	DB *gorm.DB
}

func NewVocabularyRepository(db *gorm.DB) *VocabularyRepository {
	return &VocabularyRepository{DB: db}
}

func (r *VocabularyRepository) Create(v *model.Vocabulary) error {
	return r.DB.Create(v).Error
}

func (r *VocabularyRepository) FindByID(id uint) (*model.Vocabulary, error) {
	var v model.Vocabulary
	err := r.DB.First(&v, id).Error
	return &v, err
}

func (r *VocabularyRepository) Update(v *model.Vocabulary) error {
	return r.DB.Save(v).Error
}

func (r *VocabularyRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Vocabulary{}, id).Error
}

func (r *VocabularyRepository) List(page, limit int, jlptLevel, search string) ([]model.Vocabulary, int64, error) {
	var items []model.Vocabulary
	var total int64

	query := r.DB.Model(&model.Vocabulary{})
	if jlptLevel != "" {
		query = query.Where("jlpt_level = ?", jlptLevel)
	}
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("word LIKE ? OR reading LIKE ? OR meaning LIKE ?", term, term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	return items, total, err
}
