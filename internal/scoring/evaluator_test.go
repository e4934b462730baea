package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillBlankQ(answer string) Question {
	return Question{ID: 1, Type: FillBlank, CorrectAnswer: answer, Points: 10}
}

func TestEvaluateFillBlank(t *testing.T) {
	q := fillBlankQ("a|b;c")

	assert.True(t, Evaluate("a", q, 0))
	assert.True(t, Evaluate("b", q, 0))
	assert.True(t, Evaluate("A", q, 0), "matching is case-insensitive")
	assert.True(t, Evaluate("  b  ", q, 0), "answers are trimmed")
	assert.False(t, Evaluate("d", q, 0))
	assert.True(t, Evaluate("c", q, 1))
	assert.False(t, Evaluate("a", q, 1))
}

func TestEvaluateFillBlankSubstringLeniency(t *testing.T) {
	q := fillBlankQ("たべます")

	// Containment in either direction counts as a match.
	assert.True(t, Evaluate("たべ", q, 0))
	assert.True(t, Evaluate("たべますよ", q, 0))
	assert.False(t, Evaluate("のみます", q, 0))
}

func TestEvaluateFillBlankIndexWrapsAround(t *testing.T) {
	q := fillBlankQ("a;b")

	// Index 2 wraps to segment 0, index 3 to segment 1.
	assert.True(t, Evaluate("a", q, 2))
	assert.True(t, Evaluate("b", q, 3))
	assert.False(t, Evaluate("b", q, 2))
}

func TestEvaluateMultipleChoice(t *testing.T) {
	q := Question{ID: 2, Type: MultipleChoice, CorrectAnswer: "x;y", Points: 5}

	assert.True(t, Evaluate("x", q, 0))
	assert.True(t, Evaluate("y", q, 0))
	assert.True(t, Evaluate("X", q, 0))
	assert.False(t, Evaluate("xy", q, 0), "no substring leniency for multiple choice")
	assert.False(t, Evaluate("z", q, 0))
}

func TestEvaluateRearrange(t *testing.T) {
	q := Question{ID: 3, Type: Rearrange, CorrectAnswer: "私は学生です", Points: 5}

	assert.True(t, Evaluate("私は学生です", q, 0))
	assert.True(t, Evaluate(" 私は学生です ", q, 0))
	assert.False(t, Evaluate("私は学生", q, 0), "substrings do not match for rearrange")
	assert.False(t, Evaluate("学生です私は", q, 0))
}

func TestEvaluateUnknownTypeFallsBackToEquality(t *testing.T) {
	q := Question{ID: 4, Type: "listening", CorrectAnswer: "はい", Points: 1}

	assert.True(t, Evaluate("はい", q, 0))
	assert.False(t, Evaluate("は", q, 0))
}

func TestEvaluateEmptyAnswerNeverMatches(t *testing.T) {
	for _, typ := range []QuestionType{FillBlank, MultipleChoice, Rearrange} {
		q := Question{ID: 5, Type: typ, CorrectAnswer: "a", Points: 1}
		assert.False(t, Evaluate("", q, 0))
		assert.False(t, Evaluate("   ", q, 0))
	}
}

func TestSegmentCount(t *testing.T) {
	assert.Equal(t, 3, fillBlankQ("a;b;c").SegmentCount())
	assert.Equal(t, 1, fillBlankQ("a").SegmentCount())
	assert.Equal(t, 1, fillBlankQ("").SegmentCount(), "empty answer still yields one segment")
}
