package service

import (
	"encoding/json"
	"errors"
	"time"

	"nihongo_backend/internal/model"
	"nihongo_backend/internal/repository"
	"nihongo_backend/internal/scoring"
	"nihongo_backend/internal/util"
	"nihongo_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// GrammarService owns grammar lessons, their questions and the submission flow.
type GrammarService struct {
	Repo    *repository.GrammarRepository
	SubRepo *repository.SubmissionRepository
	UserSvc *UserService
}

func NewGrammarService(repo *repository.GrammarRepository, subRepo *repository.SubmissionRepository, userSvc *UserService) *GrammarService {
	return &GrammarService{Repo: repo, SubRepo: subRepo, UserSvc: userSvc}
}

type GrammarQuestionReq struct {
	ID            uint            `json:"id"`
	Type          string          `json:"type" binding:"required,oneof=fill_blank multiple_choice rearrange"`
	Text          string          `json:"text" binding:"required"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correctAnswer" binding:"required"`
	Points        int             `json:"points"`
	Explanation   string          `json:"explanation"`
	Order         int             `json:"order"`
}

type GrammarLessonReq struct {
	Title       *string               `json:"title"`
	JLPTLevel   *string               `json:"jlptLevel"`
	Explanation *string               `json:"explanation"`
	Order       *int                  `json:"order"`
	IsPublished *bool                 `json:"isPublished"`
	Questions   *[]GrammarQuestionReq `json:"questions"`
}

func (s *GrammarService) CreateLesson(req GrammarLessonReq) (*model.GrammarLesson, error) {
	if req.Title == nil || *req.Title == "" {
		return nil, errors.New("title is required")
	}

	lesson := &model.GrammarLesson{Title: *req.Title}
	if req.JLPTLevel != nil {
		lesson.JLPTLevel = *req.JLPTLevel
	}
	if req.Explanation != nil {
		lesson.Explanation = *req.Explanation
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	if req.IsPublished != nil {
		lesson.IsPublished = *req.IsPublished
	}

	if err := s.Repo.CreateLesson(lesson); err != nil {
		return nil, err
	}

	if req.Questions != nil {
		for _, qReq := range *req.Questions {
			q := questionFromReq(lesson.ID, qReq)
			if err := s.Repo.CreateQuestion(q); err != nil {
				return nil, err
			}
		}
	}

	return lesson, nil
}

func (s *GrammarService) UpdateLesson(lessonID uint, req GrammarLessonReq) (*model.GrammarLesson, error) {
	lesson, err := s.Repo.FindLessonByID(lessonID)
	if err != nil {
		return nil, util.ErrLessonNotFound
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.JLPTLevel != nil {
		lesson.JLPTLevel = *req.JLPTLevel
	}
	if req.Explanation != nil {
		lesson.Explanation = *req.Explanation
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}
	if req.IsPublished != nil {
		lesson.IsPublished = *req.IsPublished
	}

	if err := s.Repo.UpdateLesson(lesson); err != nil {
		return nil, err
	}

	if req.Questions != nil {
		existing, _ := s.Repo.ListQuestions(lessonID)
		existingMap := make(map[uint]*model.GrammarQuestion, len(existing))
		for i := range existing {
			existingMap[existing[i].ID] = &existing[i]
		}

		kept := make(map[uint]bool)
		for _, qReq := range *req.Questions {
			if qReq.ID != 0 {
				if q, ok := existingMap[qReq.ID]; ok {
					q.Type = qReq.Type
					q.Text = qReq.Text
					q.Options = qReq.Options
					q.CorrectAnswer = qReq.CorrectAnswer
					q.Points = qReq.Points
					q.Explanation = qReq.Explanation
					q.Order = qReq.Order
					s.Repo.UpdateQuestion(q)
					kept[q.ID] = true
				}
			} else {
				s.Repo.CreateQuestion(questionFromReq(lessonID, qReq))
			}
		}

		for id := range existingMap {
			if !kept[id] {
				s.Repo.DeleteQuestion(id)
			}
		}
	}

	return lesson, nil
}

func questionFromReq(lessonID uint, req GrammarQuestionReq) *model.GrammarQuestion {
	points := req.Points
	if points <= 0 {
		points = 10
	}
	return &model.GrammarQuestion{
		LessonID:      lessonID,
		Type:          req.Type,
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Points:        points,
		Explanation:   req.Explanation,
		Order:         req.Order,
	}
}

func (s *GrammarService) DeleteLesson(lessonID uint) error {
	if _, err := s.Repo.FindLessonByID(lessonID); err != nil {
		return util.ErrLessonNotFound
	}
	return s.Repo.DeleteLesson(lessonID)
}

func (s *GrammarService) ListLessons(page, limit int, jlptLevel string, publishedOnly bool) ([]model.GrammarLesson, int64, error) {
	return s.Repo.ListLessons(page, limit, jlptLevel, publishedOnly)
}

// StudentQuestion is the learner-facing view: the correct answer and explanation stay
// hidden until the learner has submitted.
type StudentQuestion struct {
	ID            uint            `json:"id"`
	Type          string          `json:"type"`
	Text          string          `json:"text"`
	Options       json.RawMessage `json:"options,omitempty"`
	Points        int             `json:"points"`
	Order         int             `json:"order"`
	SegmentCount  int             `json:"segmentCount"`
	CorrectAnswer *string         `json:"correctAnswer,omitempty"`
	Explanation   *string         `json:"explanation,omitempty"`
}

type LessonDetail struct {
	Lesson     *model.GrammarLesson `json:"lesson"`
	Questions  []StudentQuestion    `json:"questions"`
	Submission *model.Submission    `json:"submission,omitempty"`
}

// GetLessonForStudent returns the lesson with its questions. Answers and explanations
// are revealed only when the learner already has a submission.
func (s *GrammarService) GetLessonForStudent(userID, lessonID uint) (*LessonDetail, error) {
	lesson, err := s.Repo.FindLessonByID(lessonID)
	if err != nil {
		return nil, util.ErrLessonNotFound
	}
	if !lesson.IsPublished {
		return nil, util.ErrLessonNotPublished
	}

	qs, err := s.Repo.ListQuestions(lessonID)
	if err != nil {
		return nil, err
	}

	sub, err := s.SubRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	revealed := sub != nil

	detail := &LessonDetail{Lesson: lesson, Submission: sub}
	detail.Questions = make([]StudentQuestion, len(qs))
	for i, q := range qs {
		sq := StudentQuestion{
			ID:           q.ID,
			Type:         q.Type,
			Text:         q.Text,
			Options:      q.Options,
			Points:       q.Points,
			Order:        q.Order,
			SegmentCount: toScoringQuestion(q).SegmentCount(),
		}
		if revealed {
			answer := q.CorrectAnswer
			explanation := q.Explanation
			sq.CorrectAnswer = &answer
			sq.Explanation = &explanation
		}
		detail.Questions[i] = sq
	}

	return detail, nil
}

type SubmitAnswerReq struct {
	QuestionID       uint   `json:"questionId" binding:"required"`
	UserAnswer       string `json:"userAnswer"`
	SubQuestionIndex *int   `json:"subQuestionIndex"`
}

type SubmitLessonReq struct {
	Answers   []SubmitAnswerReq `json:"answers" binding:"required"`
	TimeSpent int               `json:"timeSpent"`
}

type SubmitLessonResult struct {
	Submission *model.Submission `json:"submission"`
	Evaluation scoring.Result    `json:"evaluation"`
}

// SubmitLesson evaluates one complete attempt and stores it. A second submit for the
// same (user, lesson) pair returns ErrAlreadySubmitted; the unique index on the
// submissions table keeps a concurrent double submit from slipping past the check.
func (s *GrammarService) SubmitLesson(userID, lessonID uint, req SubmitLessonReq) (*SubmitLessonResult, error) {
	lesson, err := s.Repo.FindLessonByID(lessonID)
	if err != nil {
		return nil, util.ErrLessonNotFound
	}
	if !lesson.IsPublished {
		return nil, util.ErrLessonNotPublished
	}

	if existing, err := s.SubRepo.FindByUserAndLesson(userID, lessonID); err == nil && existing != nil {
		monitoring.SubmissionCounter.WithLabelValues("duplicate").Inc()
		return nil, util.ErrAlreadySubmitted
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	qs, err := s.Repo.ListQuestions(lessonID)
	if err != nil {
		return nil, err
	}

	questions := make([]scoring.Question, len(qs))
	for i, q := range qs {
		questions[i] = toScoringQuestion(q)
	}

	answers := make([]scoring.Answer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = scoring.Answer{
			QuestionID:       a.QuestionID,
			UserAnswer:       a.UserAnswer,
			SubQuestionIndex: a.SubQuestionIndex,
		}
	}

	result := scoring.EvaluateSubmission(answers, questions)

	sub := &model.Submission{
		UserID:           userID,
		LessonID:         lessonID,
		Status:           model.SubmissionPending,
		Score:            result.TotalScore,
		MaxPossibleScore: result.MaxPossibleScore,
		Percentage:       result.Percentage,
		TimeSpent:        req.TimeSpent,
		SubmittedAt:      time.Now(),
	}

	rows := make([]model.SubmissionAnswer, len(result.Answers))
	for i, a := range result.Answers {
		rows[i] = model.SubmissionAnswer{
			QuestionID:       a.QuestionID,
			SubQuestionIndex: a.SubQuestionIndex,
			UserAnswer:       a.UserAnswer,
			IsCorrect:        a.IsCorrect,
			PointsAwarded:    a.PointsAwarded,
			MaxPoints:        a.MaxPoints,
			CorrectAnswer:    a.CorrectAnswer,
			Explanation:      a.Explanation,
		}
	}

	if err := s.SubRepo.CreateWithAnswers(sub, rows); err != nil {
		// The unique index rejects the row when two submits raced past the check.
		monitoring.SubmissionCounter.WithLabelValues("duplicate").Inc()
		return nil, util.ErrAlreadySubmitted
	}

	monitoring.SubmissionCounter.WithLabelValues("accepted").Inc()

	if err := s.UserSvc.AwardPoints(userID, result.TotalScore); err != nil {
		return nil, err
	}

	return &SubmitLessonResult{Submission: sub, Evaluation: result}, nil
}

func toScoringQuestion(q model.GrammarQuestion) scoring.Question {
	return scoring.Question{
		ID:            q.ID,
		LessonID:      q.LessonID,
		Type:          scoring.QuestionType(q.Type),
		Text:          q.Text,
		CorrectAnswer: q.CorrectAnswer,
		Points:        q.Points,
		Explanation:   q.Explanation,
	}
}

func (s *GrammarService) GetMySubmission(userID, lessonID uint) (*model.Submission, error) {
	sub, err := s.SubRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		return nil, util.ErrSubmissionNotFound
	}
	return s.SubRepo.FindByID(sub.ID)
}

type FeedbackReq struct {
	Feedback string `json:"feedback" binding:"required"`
	Score    *int   `json:"score"`
}

// GiveFeedback moves a submission from pending to feedbacked. An admin may override
// the stored score at the same time.
func (s *GrammarService) GiveFeedback(submissionID string, req FeedbackReq) (*model.Submission, error) {
	sub, err := s.SubRepo.FindByID(submissionID)
	if err != nil {
		return nil, util.ErrSubmissionNotFound
	}

	now := time.Now()
	sub.Status = model.SubmissionFeedbacked
	sub.Feedback = req.Feedback
	sub.FeedbackAt = &now
	if req.Score != nil {
		sub.Score = *req.Score
	}

	if err := s.SubRepo.Update(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// DeleteSubmission removes an attempt. Learners may delete only their own; admins any.
func (s *GrammarService) DeleteSubmission(submissionID string, requesterID uint, requesterRole model.UserRole) error {
	sub, err := s.SubRepo.FindByID(submissionID)
	if err != nil {
		return util.ErrSubmissionNotFound
	}
	if requesterRole != model.Admin && sub.UserID != requesterID {
		return util.ErrPermissionDenied
	}
	return s.SubRepo.Delete(submissionID)
}

func (s *GrammarService) ListSubmissions(lessonID uint, page, limit int, status string) ([]model.Submission, int64, error) {
	return s.SubRepo.ListByLesson(lessonID, page, limit, status)
}

func (s *GrammarService) ListMySubmissions(userID uint) ([]model.Submission, error) {
	return s.SubRepo.ListByUser(userID)
}
