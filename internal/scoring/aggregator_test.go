package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idx(i int) *int { return &i }

func TestEvaluateSubmissionSplitsPointsByIntegerDivision(t *testing.T) {
	questions := []Question{
		{ID: 1, Type: FillBlank, CorrectAnswer: "a;b;c", Points: 10},
	}
	answers := []Answer{
		{QuestionID: 1, UserAnswer: "a", SubQuestionIndex: idx(0)},
		{QuestionID: 1, UserAnswer: "b", SubQuestionIndex: idx(1)},
		{QuestionID: 1, UserAnswer: "c", SubQuestionIndex: idx(2)},
	}

	res := EvaluateSubmission(answers, questions)

	require.Len(t, res.Answers, 3)
	for _, a := range res.Answers {
		assert.True(t, a.IsCorrect)
		assert.Equal(t, 3, a.PointsAwarded, "floor(10/3), remainder not redistributed")
		assert.Equal(t, 3, a.MaxPoints)
	}
	assert.Equal(t, 9, res.TotalScore)
	assert.Equal(t, 10, res.MaxPossibleScore)
	assert.Equal(t, 90, res.Percentage)
}

func TestEvaluateSubmissionPositionalIndexFallback(t *testing.T) {
	questions := []Question{
		{ID: 7, Type: FillBlank, CorrectAnswer: "a;b", Points: 4},
	}
	// No explicit sub-question indexes: the position within the group is used, and the
	// third answer wraps back to segment 0.
	answers := []Answer{
		{QuestionID: 7, UserAnswer: "a"},
		{QuestionID: 7, UserAnswer: "b"},
		{QuestionID: 7, UserAnswer: "a"},
	}

	res := EvaluateSubmission(answers, questions)

	// The wrapped answer keeps index 0, so the final (questionId, subQuestionIndex)
	// ordering puts both segment-0 records before the segment-1 one.
	require.Len(t, res.Answers, 3)
	assert.Equal(t, 0, res.Answers[0].SubQuestionIndex)
	assert.Equal(t, 0, res.Answers[1].SubQuestionIndex)
	assert.Equal(t, 1, res.Answers[2].SubQuestionIndex)
	assert.Equal(t, "b", res.Answers[2].UserAnswer)
	for _, a := range res.Answers {
		assert.True(t, a.IsCorrect)
		assert.Equal(t, 2, a.PointsAwarded)
	}
}

func TestEvaluateSubmissionUnknownQuestion(t *testing.T) {
	questions := []Question{
		{ID: 1, Type: Rearrange, CorrectAnswer: "私は学生です", Points: 5},
	}
	answers := []Answer{
		{QuestionID: 1, UserAnswer: "私は学生です"},
		{QuestionID: 99, UserAnswer: "anything"},
	}

	res := EvaluateSubmission(answers, questions)

	require.Len(t, res.Answers, 2)
	missing := res.Answers[1]
	assert.Equal(t, uint(99), missing.QuestionID)
	assert.False(t, missing.IsCorrect)
	assert.Equal(t, 0, missing.PointsAwarded)
	assert.Equal(t, explanationQuestionNotFound, missing.Explanation)

	// The known question is still scored; the batch is not aborted.
	assert.Equal(t, 5, res.TotalScore)
	assert.Equal(t, 5, res.MaxPossibleScore)
	assert.Equal(t, 100, res.Percentage)
}

func TestEvaluateSubmissionZeroMaxScore(t *testing.T) {
	res := EvaluateSubmission([]Answer{{QuestionID: 3, UserAnswer: "x"}}, nil)

	assert.Equal(t, 0, res.MaxPossibleScore)
	assert.Equal(t, 0, res.Percentage, "no division by zero")
}

func TestEvaluateSubmissionUnansweredQuestionsCountTowardMax(t *testing.T) {
	questions := []Question{
		{ID: 1, Type: MultipleChoice, CorrectAnswer: "x", Points: 5},
		{ID: 2, Type: MultipleChoice, CorrectAnswer: "y", Points: 5},
	}
	answers := []Answer{{QuestionID: 1, UserAnswer: "x"}}

	res := EvaluateSubmission(answers, questions)

	assert.Equal(t, 5, res.TotalScore)
	assert.Equal(t, 10, res.MaxPossibleScore)
	assert.Equal(t, 50, res.Percentage)
}

func TestEvaluateSubmissionOrdering(t *testing.T) {
	questions := []Question{
		{ID: 2, Type: FillBlank, CorrectAnswer: "a;b", Points: 4},
		{ID: 1, Type: MultipleChoice, CorrectAnswer: "x", Points: 2},
	}
	answers := []Answer{
		{QuestionID: 2, UserAnswer: "b", SubQuestionIndex: idx(1)},
		{QuestionID: 1, UserAnswer: "x"},
		{QuestionID: 2, UserAnswer: "a", SubQuestionIndex: idx(0)},
	}

	res := EvaluateSubmission(answers, questions)

	require.Len(t, res.Answers, 3)
	assert.Equal(t, uint(1), res.Answers[0].QuestionID)
	assert.Equal(t, uint(2), res.Answers[1].QuestionID)
	assert.Equal(t, 0, res.Answers[1].SubQuestionIndex)
	assert.Equal(t, 1, res.Answers[2].SubQuestionIndex)
}

func TestEvaluateSubmissionAppliedCorrectAnswer(t *testing.T) {
	questions := []Question{
		{ID: 1, Type: FillBlank, CorrectAnswer: "a|b;c", Points: 10, Explanation: "particle usage"},
	}
	answers := []Answer{
		{QuestionID: 1, UserAnswer: "c", SubQuestionIndex: idx(1)},
	}

	res := EvaluateSubmission(answers, questions)

	require.Len(t, res.Answers, 1)
	assert.Equal(t, "c", res.Answers[0].CorrectAnswer, "only the applied segment is reported")
	assert.Equal(t, "particle usage", res.Answers[0].Explanation)
}

func TestLevelForPoints(t *testing.T) {
	assert.Equal(t, 1, LevelForPoints(0))
	assert.Equal(t, 1, LevelForPoints(99))
	assert.Equal(t, 2, LevelForPoints(100))
	assert.Equal(t, 1, LevelForPoints(-50), "negative points clamp to zero")
	assert.Equal(t, maxLevel, LevelForPoints(1_000_000))

	assert.Equal(t, 100, PointsForNextLevel(0))
	assert.Equal(t, 1, PointsForNextLevel(99))
	assert.Equal(t, 0, PointsForNextLevel(1_000_000))
}
