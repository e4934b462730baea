package service

import (
	"errors"

	"nihongo_backend/internal/model"
	"nihongo_backend/internal/repository"

	"gorm.io/gorm"
)

// ContentService covers the three reference-data catalogs: kanji, kana and vocabulary.
type ContentService struct {
	KanjiRepo *repository.KanjiRepository
	KanaRepo  *repository.KanaRepository
	VocabRepo *repository.VocabularyRepository
}

func NewContentService(kanjiRepo *repository.KanjiRepository, kanaRepo *repository.KanaRepository, vocabRepo *repository.VocabularyRepository) *ContentService {
	return &ContentService{
		KanjiRepo: kanjiRepo,
		KanaRepo:  kanaRepo,
		VocabRepo: vocabRepo,
	}
}

// ---- kanji ----

func (s *ContentService) CreateKanji(k *model.Kanji) error {
	return s.KanjiRepo.Create(k)
}

func (s *ContentService) GetKanji(id uint) (*model.Kanji, error) {
	return s.KanjiRepo.FindByID(id)
}

type UpdateKanjiRequest struct {
	Character      *string `json:"character"`
	Onyomi         *string `json:"onyomi"`
	Kunyomi        *string `json:"kunyomi"`
	Meaning        *string `json:"meaning"`
	Strokes        *int    `json:"strokes"`
	JLPTLevel      *string `json:"jlptLevel"`
	StrokeOrderURL *string `json:"strokeOrderUrl"`
}

func (s *ContentService) UpdateKanji(id uint, req UpdateKanjiRequest) (*model.Kanji, error) {
	k, err := s.KanjiRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Character != nil {
		k.Character = *req.Character
	}
	if req.Onyomi != nil {
		k.Onyomi = *req.Onyomi
	}
	if req.Kunyomi != nil {
		k.Kunyomi = *req.Kunyomi
	}
	if req.Meaning != nil {
		k.Meaning = *req.Meaning
	}
	if req.Strokes != nil {
		k.Strokes = *req.Strokes
	}
	if req.JLPTLevel != nil {
		k.JLPTLevel = *req.JLPTLevel
	}
	if req.StrokeOrderURL != nil {
		k.StrokeOrderURL = *req.StrokeOrderURL
	}

	if err := s.KanjiRepo.Update(k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *ContentService) DeleteKanji(id uint) error {
	return s.KanjiRepo.Delete(id)
}

func (s *ContentService) ListKanji(page, limit int, jlptLevel, search string) ([]model.Kanji, int64, error) {
	return s.KanjiRepo.List(page, limit, jlptLevel, search)
}

// ---- kana ----

func (s *ContentService) CreateKana(k *model.Kana) error {
	if k.Type != model.Hiragana && k.Type != model.Katakana {
		return errors.New("type must be hiragana or katakana")
	}
	return s.KanaRepo.Create(k)
}

func (s *ContentService) ListKana(kanaType string) ([]model.Kana, error) {
	return s.KanaRepo.List(kanaType)
}

type UpdateKanaRequest struct {
	Character *string `json:"character"`
	Romaji    *string `json:"romaji"`
	Type      *string `json:"type" binding:"omitempty,oneof=hiragana katakana"`
	RowGroup  *string `json:"rowGroup"`
	AudioURL  *string `json:"audioUrl"`
}

func (s *ContentService) UpdateKana(id uint, req UpdateKanaRequest) (*model.Kana, error) {
	k, err := s.KanaRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Character != nil {
		k.Character = *req.Character
	}
	if req.Romaji != nil {
		k.Romaji = *req.Romaji
	}
	if req.Type != nil {
		k.Type = model.KanaType(*req.Type)
	}
	if req.RowGroup != nil {
		k.RowGroup = *req.RowGroup
	}
	if req.AudioURL != nil {
		k.AudioURL = *req.AudioURL
	}

	if err := s.KanaRepo.Update(k); err != nil {
		return nil, err
	}
	return k, nil
}

func (s *ContentService) DeleteKana(id uint) error {
	return s.KanaRepo.Delete(id)
}

// ---- vocabulary ----

func (s *ContentService) CreateVocabulary(v *model.Vocabulary) error {
	return s.VocabRepo.Create(v)
}

func (s *ContentService) GetVocabulary(id uint) (*model.Vocabulary, error) {
	return s.VocabRepo.FindByID(id)
}

type UpdateVocabularyRequest struct {
	Word      *string `json:"word"`
	Reading   *string `json:"reading"`
	Meaning   *string `json:"meaning"`
	JLPTLevel *string `json:"jlptLevel"`
	Example   *string `json:"example"`
	AudioURL  *string `json:"audioUrl"`
}

func (s *ContentService) UpdateVocabulary(id uint, req UpdateVocabularyRequest) (*model.Vocabulary, error) {
	v, err := s.VocabRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Word != nil {
		v.Word = *req.Word
	}
	if req.Reading != nil {
		v.Reading = *req.Reading
	}
	if req.Meaning != nil {
		v.Meaning = *req.Meaning
	}
	if req.JLPTLevel != nil {
		v.JLPTLevel = *req.JLPTLevel
	}
	if req.Example != nil {
		v.Example = *req.Example
	}
	if req.AudioURL != nil {
		v.AudioURL = *req.AudioURL
	}

	if err := s.VocabRepo.Update(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *ContentService) DeleteVocabulary(id uint) error {
	return s.VocabRepo.Delete(id)
}

func (s *ContentService) ListVocabulary(page, limit int, jlptLevel, search string) ([]model.Vocabulary, int64, error) {
	return s.VocabRepo.List(page, limit, jlptLevel, search)
}

// IsNotFound lets controllers translate gorm misses without importing gorm.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
