package model

// Kanji is a single reference character with its readings.
// swagger:model Kanji
type Kanji struct {
	BaseModel
	Character      string `gorm:"size:8;unique;not null" json:"character"`
	Onyomi         string `gorm:"size:100" json:"onyomi"`
	Kunyomi        string `gorm:"size:100" json:"kunyomi"`
	Meaning        string `gorm:"size:255;not null" json:"meaning"`
	Strokes        int    `gorm:"default:0" json:"strokes"`
	JLPTLevel      string `gorm:"size:4;index" json:"jlptLevel"` // N5..N1
	StrokeOrderURL string `gorm:"size:255" json:"strokeOrderUrl"`
}

func (Kanji) TableName() string {
	return "kanji"
}
