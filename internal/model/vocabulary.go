package model

// swagger:model Vocabulary
type Vocabulary struct {
	BaseModel
	Word      string `gorm:"size:100;not null;index" json:"word"`
	Reading   string `gorm:"size:100;not null" json:"reading"` // kana reading
	Meaning   string `gorm:"size:255;not null" json:"meaning"`
	JLPTLevel string `gorm:"size:4;index" json:"jlptLevel"`
	Example   string `gorm:"type:text" json:"example"`
	AudioURL  string `gorm:"size:255" json:"audioUrl"`
}

func (Vocabulary) TableName() string {
	return "vocabularies"
}
