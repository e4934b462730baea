package repository

import (
	"nihongo_backend/internal/model"

	"gorm.io/gorm"
)

type KanjiRepository struct {
	DB *gorm.DB
}

func NewKanjiRepository(db *gorm.DB) *KanjiRepository {
	return &KanjiRepository{DB: db}
}

func (r *KanjiRepository) Create(k *model.Kanji) error {
	return r.DB.Create(k).Error
}

func (r *KanjiRepository) FindByID(id uint) (*model.Kanji, error) {
	var k model.Kanji
	err := r.DB.First(&k, id).Error
	return &k, err
}

func (r *KanjiRepository) Update(k *model.Kanji) error {
	return r.DB.Save(k).Error
}

func (r *KanjiRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Kanji{}, id).Error
}

func (r *KanjiRepository) List(page, limit int, jlptLevel, search string) ([]model.Kanji, int64, error) {
	var items []model.Kanji
	var total int64

	query := r.DB.Model(&model.Kanji{})
	if jlptLevel != "" {
		query = query.Where("jlpt_level = ?", jlptLevel)
	}
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("`character` LIKE ? OR meaning LIKE ? OR onyomi LIKE ? OR kunyomi LIKE ?", term, term, term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("strokes ASC, id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	return items, total, err
}
