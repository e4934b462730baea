package model

import (
	"encoding/json"
	"time"
)

// MiniTest is a short mixed quiz; learners may retake it, the best score counts for
// the ranking.
// swagger:model MiniTest
type MiniTest struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	JLPTLevel   string `gorm:"size:4;index" json:"jlptLevel"`
	TimeLimit   int    `gorm:"default:0" json:"timeLimit"` // minutes, 0 = unlimited
	IsPublished bool   `gorm:"default:false" json:"isPublished"`

	Questions []MiniTestQuestion `gorm:"foreignKey:TestID" json:"questions,omitempty"`
}

func (MiniTest) TableName() string {
	return "mini_tests"
}

// MiniTestQuestion uses the same correct-answer encoding as GrammarQuestion.
// swagger:model MiniTestQuestion
type MiniTestQuestion struct {
	BaseModel
	TestID        uint            `gorm:"index;not null" json:"testId"`
	Type          string          `gorm:"size:32;not null" json:"type"`
	Text          string          `gorm:"type:text;not null" json:"text"`
	Options       json.RawMessage `gorm:"type:json" json:"options,omitempty"`
	CorrectAnswer string          `gorm:"type:text;not null" json:"-"`
	Points        int             `gorm:"default:10" json:"points"`
	Explanation   string          `gorm:"type:text" json:"-"`
	Order         int             `gorm:"default:0" json:"order"`
}

func (MiniTestQuestion) TableName() string {
	return "mini_test_questions"
}

// MiniTestResult is one completed attempt.
// swagger:model MiniTestResult
type MiniTestResult struct {
	UUIDBase
	TestID      uint            `gorm:"index;not null" json:"testId"`
	UserID      uint            `gorm:"index;not null" json:"userId"`
	Score       int             `gorm:"default:0" json:"score"`
	MaxScore    int             `gorm:"default:0" json:"maxScore"`
	Percentage  int             `gorm:"default:0" json:"percentage"`
	TimeSpent   int             `gorm:"default:0" json:"timeSpent"`
	Detail      json.RawMessage `gorm:"type:json" json:"detail,omitempty"` // per-answer evaluation records
	CompletedAt time.Time       `gorm:"not null" json:"completedAt"`
}

func (MiniTestResult) TableName() string {
	return "mini_test_results"
}
