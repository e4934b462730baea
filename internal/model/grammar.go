package model

import "encoding/json"

// GrammarLesson groups a set of exercise questions a learner completes as one unit.
// swagger:model GrammarLesson
type GrammarLesson struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	JLPTLevel   string `gorm:"size:4;index" json:"jlptLevel"`
	Explanation string `gorm:"type:text" json:"explanation"`
	Order       int    `gorm:"default:0" json:"order"`
	IsPublished bool   `gorm:"default:false" json:"isPublished"`

	Questions []GrammarQuestion `gorm:"foreignKey:LessonID" json:"questions,omitempty"`
}

func (GrammarLesson) TableName() string {
	return "grammar_lessons"
}

// GrammarQuestion holds one exercise question. CorrectAnswer uses the platform
// encoding: `;` separates ordered sub-answers, `|` separates acceptable alternatives
// within a fill_blank sub-answer; rearrange stores the single expected string.
// swagger:model GrammarQuestion
type GrammarQuestion struct {
	BaseModel
	LessonID      uint            `gorm:"index;not null" json:"lessonId"`
	Type          string          `gorm:"size:32;not null" json:"type"` // fill_blank, multiple_choice, rearrange
	Text          string          `gorm:"type:text;not null" json:"text"`
	Options       json.RawMessage `gorm:"type:json" json:"options,omitempty"` // choices for multiple_choice
	CorrectAnswer string          `gorm:"type:text;not null" json:"-"`
	Points        int             `gorm:"default:10" json:"points"`
	Explanation   string          `gorm:"type:text" json:"-"`
	Order         int             `gorm:"default:0" json:"order"`
}

func (GrammarQuestion) TableName() string {
	return "grammar_questions"
}
