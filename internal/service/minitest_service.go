package service

import (
	"encoding/json"
	"errors"
	"time"

	"nihongo_backend/internal/model"
	"nihongo_backend/internal/repository"
	"nihongo_backend/internal/scoring"
	"nihongo_backend/internal/util"
)

// MiniTestService owns mini-tests. Unlike lessons, a learner may retake a mini-test;
// the best score counts.
type MiniTestService struct {
	Repo    *repository.MiniTestRepository
	UserSvc *UserService
}

func NewMiniTestService(repo *repository.MiniTestRepository, userSvc *UserService) *MiniTestService {
	return &MiniTestService{Repo: repo, UserSvc: userSvc}
}

type MiniTestQuestionReq struct {
	ID            uint            `json:"id"`
	Type          string          `json:"type" binding:"required,oneof=fill_blank multiple_choice rearrange"`
	Text          string          `json:"text" binding:"required"`
	Options       json.RawMessage `json:"options"`
	CorrectAnswer string          `json:"correctAnswer" binding:"required"`
	Points        int             `json:"points"`
	Explanation   string          `json:"explanation"`
	Order         int             `json:"order"`
}

type MiniTestReq struct {
	Title       *string                `json:"title"`
	JLPTLevel   *string                `json:"jlptLevel"`
	TimeLimit   *int                   `json:"timeLimit"`
	IsPublished *bool                  `json:"isPublished"`
	Questions   *[]MiniTestQuestionReq `json:"questions"`
}

func (s *MiniTestService) CreateTest(req MiniTestReq) (*model.MiniTest, error) {
	if req.Title == nil || *req.Title == "" {
		return nil, errors.New("title is required")
	}

	test := &model.MiniTest{Title: *req.Title}
	if req.JLPTLevel != nil {
		test.JLPTLevel = *req.JLPTLevel
	}
	if req.TimeLimit != nil {
		test.TimeLimit = *req.TimeLimit
	}
	if req.IsPublished != nil {
		test.IsPublished = *req.IsPublished
	}

	if err := s.Repo.CreateTest(test); err != nil {
		return nil, err
	}

	if req.Questions != nil {
		for _, qReq := range *req.Questions {
			if err := s.Repo.CreateQuestion(miniTestQuestionFromReq(test.ID, qReq)); err != nil {
				return nil, err
			}
		}
	}

	return test, nil
}

func (s *MiniTestService) UpdateTest(testID uint, req MiniTestReq) (*model.MiniTest, error) {
	test, err := s.Repo.FindTestByID(testID)
	if err != nil {
		return nil, util.ErrTestNotFound
	}

	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.JLPTLevel != nil {
		test.JLPTLevel = *req.JLPTLevel
	}
	if req.TimeLimit != nil {
		test.TimeLimit = *req.TimeLimit
	}
	if req.IsPublished != nil {
		test.IsPublished = *req.IsPublished
	}

	if err := s.Repo.UpdateTest(test); err != nil {
		return nil, err
	}

	if req.Questions != nil {
		existing, _ := s.Repo.ListQuestions(testID)
		existingMap := make(map[uint]*model.MiniTestQuestion, len(existing))
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
				s.Repo.CreateQuestion(miniTestQuestionFromReq(testID, qReq))
			}
		}

		for id := range existingMap {
			if !kept[id] {
				s.Repo.DeleteQuestion(id)
			}
		}
	}

	return test, nil
}

func miniTestQuestionFromReq(testID uint, req MiniTestQuestionReq) *model.MiniTestQuestion {
	points := req.Points
	if points <= 0 {
		points = 10
	}
	return &model.MiniTestQuestion{
		TestID:        testID,
		Type:          req.Type,
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Points:        points,
		Explanation:   req.Explanation,
		Order:         req.Order,
	}
}

func (s *MiniTestService) DeleteTest(testID uint) error {
	if _, err := s.Repo.FindTestByID(testID); err != nil {
		return util.ErrTestNotFound
	}
	return s.Repo.DeleteTest(testID)
}

func (s *MiniTestService) ListTests(page, limit int, publishedOnly bool) ([]model.MiniTest, int64, error) {
	return s.Repo.ListTests(page, limit, publishedOnly)
}

// GetTestForStudent returns the test and its questions without answers.
func (s *MiniTestService) GetTestForStudent(testID uint) (*model.MiniTest, []StudentQuestion, error) {
	test, err := s.Repo.FindTestByID(testID)
	if err != nil {
		return nil, nil, util.ErrTestNotFound
	}
	if !test.IsPublished {
		return nil, nil, util.ErrTestNotPublished
	}

	qs, err := s.Repo.ListQuestions(testID)
	if err != nil {
		return nil, nil, err
	}

	studentQs := make([]StudentQuestion, len(qs))
	for i, q := range qs {
		studentQs[i] = StudentQuestion{
			ID:           q.ID,
			Type:         q.Type,
			Text:         q.Text,
			Options:      q.Options,
			Points:       q.Points,
			Order:        q.Order,
			SegmentCount: miniTestScoringQuestion(q).SegmentCount(),
		}
	}
	return test, studentQs, nil
}

type SubmitMiniTestReq struct {
	Answers   []SubmitAnswerReq `json:"answers" binding:"required"`
	TimeSpent int               `json:"timeSpent"`
}

type SubmitMiniTestResult struct {
	Result     *model.MiniTestResult `json:"result"`
	Evaluation scoring.Result        `json:"evaluation"`
	BestScore  int                   `json:"bestScore"`
}

// SubmitTest evaluates an attempt and stores the result. Points are awarded only for
// the improvement over the learner's previous best, so retakes cannot farm points.
func (s *MiniTestService) SubmitTest(userID, testID uint, req SubmitMiniTestReq) (*SubmitMiniTestResult, error) {
	test, err := s.Repo.FindTestByID(testID)
	if err != nil {
		return nil, util.ErrTestNotFound
	}
	if !test.IsPublished {
		return nil, util.ErrTestNotPublished
	}

	qs, err := s.Repo.ListQuestions(testID)
	if err != nil {
		return nil, err
	}

	questions := make([]scoring.Question, len(qs))
	for i, q := range qs {
		questions[i] = miniTestScoringQuestion(q)
	}

	answers := make([]scoring.Answer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = scoring.Answer{
			QuestionID:       a.QuestionID,
			UserAnswer:       a.UserAnswer,
			SubQuestionIndex: a.SubQuestionIndex,
		}
	}

	evaluation := scoring.EvaluateSubmission(answers, questions)

	previousBest, err := s.Repo.BestScore(userID, testID)
	if err != nil {
		return nil, err
	}

	detail, _ := json.Marshal(evaluation.Answers)
	result := &model.MiniTestResult{
		TestID:      testID,
		UserID:      userID,
		Score:       evaluation.TotalScore,
		MaxScore:    evaluation.MaxPossibleScore,
		Percentage:  evaluation.Percentage,
		TimeSpent:   req.TimeSpent,
		Detail:      detail,
		CompletedAt: time.Now(),
	}
	if err := s.Repo.CreateResult(result); err != nil {
		return nil, err
	}

	best := previousBest
	if evaluation.TotalScore > previousBest {
		best = evaluation.TotalScore
		if err := s.UserSvc.AwardPoints(userID, evaluation.TotalScore-previousBest); err != nil {
			return nil, err
		}
	}

	return &SubmitMiniTestResult{Result: result, Evaluation: evaluation, BestScore: best}, nil
}

func miniTestScoringQuestion(q model.MiniTestQuestion) scoring.Question {
	return scoring.Question{
		ID:            q.ID,
		Type:          scoring.QuestionType(q.Type),
		Text:          q.Text,
		CorrectAnswer: q.CorrectAnswer,
		Points:        q.Points,
		Explanation:   q.Explanation,
	}
}

func (s *MiniTestService) ListMyResults(userID, testID uint) ([]model.MiniTestResult, error) {
	return s.Repo.ListResultsByUser(userID, testID)
}
