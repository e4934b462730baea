package repository

import (
	"nihongo_backend/internal/model"

	"gorm.io/gorm"
)

type KanaRepository struct {
	DB *gorm.DB
}

func NewKanaRepository(db *gorm.DB) *KanaRepository {
	return &KanaRepository{DB: db}
}

func (r *KanaRepository) Create(k *model.Kana) error {
	return r.DB.Create(k).Error
}

func (r *KanaRepository) FindByID(id uint) (*model.Kana, error) {
	var k model.Kana
	err := r.DB.First(&k, id).Error
	return &k, err
}

func (r *KanaRepository) Update(k *model.Kana) error {
	return r.DB.Save(k).Error
}

func (r *KanaRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Kana{}, id).Error
}

// List returns kana in gojūon order, optionally limited to one syllabary.
func (r *KanaRepository) List(kanaType string) ([]model.Kana, error) {
	var items []model.Kana
	query := r.DB.Model(&model.Kana{})
	if kanaType != "" {
		query = query.Where("type = ?", kanaType)
	}
	err := query.Order("id ASC").Find(&items).Error
	return items, err
}
