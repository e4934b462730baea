package scoring

import (
	"math"
	"sort"
	"strings"
)

const explanationQuestionNotFound = "question not found in this lesson"

// Answer is one submitted sub-answer. SubQuestionIndex is nil when the client did not
// address a specific sub-blank, in which case the answer's position within its question
// group is used instead.
type Answer struct {
	QuestionID       uint
	UserAnswer       string
	SubQuestionIndex *int
}

// AnswerResult is the per-sub-answer evaluation record returned to the caller.
type AnswerResult struct {
	QuestionID       uint         `json:"questionId"`
	SubQuestionIndex int          `json:"subQuestionIndex"`
	QuestionText     string       `json:"questionText"`
	QuestionType     QuestionType `json:"questionType"`
	UserAnswer       string       `json:"userAnswer"`
	IsCorrect        bool         `json:"isCorrect"`
	PointsAwarded    int          `json:"pointsAwarded"`
	MaxPoints        int          `json:"maxPoints"`
	CorrectAnswer    string       `json:"correctAnswer"`
	Explanation      string       `json:"explanation"`
}

// Result aggregates the evaluation of one whole submission.
type Result struct {
	Answers          []AnswerResult `json:"answers"`
	TotalScore       int            `json:"totalScore"`
	MaxPossibleScore int            `json:"maxPossibleScore"`
	Percentage       int            `json:"percentage"`
}

// EvaluateSubmission scores a full set of submitted answers against a lesson's
// questions. Unknown question ids score zero with a sentinel explanation; the batch is
// never aborted. Points for multi-segment questions are split by integer division, the
// remainder is not redistributed.
func EvaluateSubmission(answers []Answer, questions []Question) Result {
	byID := make(map[uint]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	res := Result{Answers: make([]AnswerResult, 0, len(answers))}
	for _, q := range questions {
		res.MaxPossibleScore += q.Points
	}

	// Group answers per question, preserving submission order within each group.
	order := make([]uint, 0, len(answers))
	groups := make(map[uint][]Answer)
	for _, a := range answers {
		if _, seen := groups[a.QuestionID]; !seen {
			order = append(order, a.QuestionID)
		}
		groups[a.QuestionID] = append(groups[a.QuestionID], a)
	}

	for _, qid := range order {
		group := groups[qid]
		q, found := byID[qid]

		if !found {
			for i, a := range group {
				res.Answers = append(res.Answers, AnswerResult{
					QuestionID:       qid,
					SubQuestionIndex: subIndex(a, i),
					UserAnswer:       a.UserAnswer,
					IsCorrect:        false,
					PointsAwarded:    0,
					MaxPoints:        0,
					Explanation:      explanationQuestionNotFound,
				})
			}
			continue
		}

		segmentCount := q.SegmentCount()
		perSegment := q.Points / segmentCount

		for i, a := range group {
			idx := subIndex(a, i)
			if idx >= segmentCount {
				idx = idx % segmentCount
			}

			correct := Evaluate(a.UserAnswer, q, idx)
			awarded := 0
			if correct {
				awarded = perSegment
			}
			res.TotalScore += awarded

			res.Answers = append(res.Answers, AnswerResult{
				QuestionID:       q.ID,
				SubQuestionIndex: idx,
				QuestionText:     q.Text,
				QuestionType:     q.Type,
				UserAnswer:       a.UserAnswer,
				IsCorrect:        correct,
				PointsAwarded:    awarded,
				MaxPoints:        perSegment,
				CorrectAnswer:    appliedCorrectAnswer(q, idx),
				Explanation:      q.Explanation,
			})
		}
	}

	sort.SliceStable(res.Answers, func(i, j int) bool {
		if res.Answers[i].QuestionID != res.Answers[j].QuestionID {
			return res.Answers[i].QuestionID < res.Answers[j].QuestionID
		}
		return res.Answers[i].SubQuestionIndex < res.Answers[j].SubQuestionIndex
	})

	if res.MaxPossibleScore > 0 {
		res.Percentage = int(math.Round(float64(res.TotalScore) / float64(res.MaxPossibleScore) * 100))
	}

	return res
}

func subIndex(a Answer, position int) int {
	if a.SubQuestionIndex != nil && *a.SubQuestionIndex >= 0 {
		return *a.SubQuestionIndex
	}
	return position
}

// appliedCorrectAnswer returns the correct-answer text the comparison actually ran
// against: for fill_blank the selected segment, otherwise the full stored answer.
func appliedCorrectAnswer(q Question, idx int) string {
	if q.Type != FillBlank {
		return q.CorrectAnswer
	}
	segments := strings.Split(q.CorrectAnswer, ";")
	if len(segments) == 0 {
		return q.CorrectAnswer
	}
	return segments[idx%len(segments)]
}
