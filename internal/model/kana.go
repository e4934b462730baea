package model

type KanaType string

const (
	Hiragana KanaType = "hiragana"
	Katakana KanaType = "katakana"
)

// Kana is one hiragana/katakana character row.
// swagger:model Kana
type Kana struct {
	BaseModel
	Character string   `gorm:"size:8;not null;uniqueIndex:idx_kana_char_type" json:"character"`
	Romaji    string   `gorm:"size:16;not null" json:"romaji"`
	Type      KanaType `gorm:"type:enum('hiragana','katakana');not null;uniqueIndex:idx_kana_char_type" json:"type"`
	RowGroup  string   `gorm:"size:8;index" json:"rowGroup"` // gojūon row: a, ka, sa, ...
	AudioURL  string   `gorm:"size:255" json:"audioUrl"`
}

func (Kana) TableName() string {
	return "kana"
}
