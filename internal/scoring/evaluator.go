package scoring

import "strings"

// QuestionType identifies how a question's correct answer is encoded and compared.
type QuestionType string

const (
	FillBlank      QuestionType = "fill_blank"
	MultipleChoice QuestionType = "multiple_choice"
	Rearrange      QuestionType = "rearrange"
)

// Question is the read-only view of a question the evaluator needs.
// CorrectAnswer encoding: fill_blank and multiple_choice hold a `;`-separated ordered
// list, one segment per sub-blank/sub-choice; within a fill_blank segment `|` separates
// acceptable alternatives. rearrange holds the single exact expected string.
type Question struct {
	ID            uint
	LessonID      uint
	Type          QuestionType
	Text          string
	CorrectAnswer string
	Points        int
	Explanation   string
}

// SegmentCount returns the number of `;`-separated sub-answers, never below 1.
func (q Question) SegmentCount() int {
	n := len(strings.Split(q.CorrectAnswer, ";"))
	if n == 0 {
		return 1
	}
	return n
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Evaluate reports whether userAnswer matches the correct answer for the given
// sub-question. It never errors; malformed input is simply not a match.
func Evaluate(userAnswer string, q Question, subQuestionIndex int) bool {
	user := normalize(userAnswer)
	if user == "" {
		return false
	}

	switch q.Type {
	case FillBlank:
		segments := strings.Split(q.CorrectAnswer, ";")
		if len(segments) == 0 {
			return false
		}
		idx := subQuestionIndex
		if idx < 0 {
			idx = 0
		}
		// Out-of-range indexes wrap around instead of failing.
		idx = idx % len(segments)
		for _, alt := range strings.Split(segments[idx], "|") {
			expected := normalize(alt)
			if expected == "" {
				continue
			}
			// Deliberately loose: substring containment in either direction counts.
			if user == expected || strings.Contains(expected, user) || strings.Contains(user, expected) {
				return true
			}
		}
		return false

	case MultipleChoice:
		for _, seg := range strings.Split(q.CorrectAnswer, ";") {
			if user == normalize(seg) {
				return true
			}
		}
		return false

	case Rearrange:
		return user == normalize(q.CorrectAnswer)

	default:
		return user == normalize(q.CorrectAnswer)
	}
}
