package model

import (
	"time"
)

type SubmissionStatus string

const (
	SubmissionPending    SubmissionStatus = "pending"
	SubmissionFeedbacked SubmissionStatus = "feedbacked"
)

// Submission is one learner's complete attempt at a lesson, at most one per
// (user, lesson). The composite unique index backs the pre-insert existence check so a
// concurrent double submit cannot create a second row.
// swagger:model Submission
type Submission struct {
	UUIDBase
	UserID   uint `gorm:"not null;uniqueIndex:idx_submission_user_lesson" json:"userId"`
	LessonID uint `gorm:"not null;uniqueIndex:idx_submission_user_lesson" json:"lessonId"`

	Status           SubmissionStatus `gorm:"size:16;default:'pending'" json:"status"`
	Score            int              `gorm:"default:0" json:"score"`
	MaxPossibleScore int              `gorm:"default:0" json:"maxPossibleScore"`
	Percentage       int              `gorm:"default:0" json:"percentage"`
	TimeSpent        int              `gorm:"default:0" json:"timeSpent"` // seconds
	SubmittedAt      time.Time        `gorm:"not null" json:"submittedAt"`

	Feedback   string     `gorm:"type:text" json:"feedback,omitempty"`
	FeedbackAt *time.Time `json:"feedbackAt,omitempty"`

	Answers []SubmissionAnswer `gorm:"foreignKey:SubmissionID" json:"answers,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

// SubmissionAnswer is the stored per-sub-answer evaluation record.
// swagger:model SubmissionAnswer
type SubmissionAnswer struct {
	BaseModel
	SubmissionID     string `gorm:"type:varchar(36);index;not null" json:"submissionId"`
	QuestionID       uint   `gorm:"not null" json:"questionId"`
	SubQuestionIndex int    `gorm:"default:0" json:"subQuestionIndex"`
	UserAnswer       string `gorm:"type:text" json:"userAnswer"`
	IsCorrect        bool   `gorm:"default:false" json:"isCorrect"`
	PointsAwarded    int    `gorm:"default:0" json:"pointsAwarded"`
	MaxPoints        int    `gorm:"default:0" json:"maxPoints"`
	CorrectAnswer    string `gorm:"type:text" json:"correctAnswer"`
	Explanation      string `gorm:"type:text" json:"explanation"`
}

func (SubmissionAnswer) TableName() string {
	return "submission_answers"
}
