package trivia

import "strings"

// QuestionResult is the verdict for one question of the bank.
type QuestionResult struct {
	QuestionID    int    `json:"questionId"`
	Correct       bool   `json:"correct"`
	UserAnswer    Answer `json:"userAnswer"`
	CorrectAnswer Answer `json:"correctAnswer"`
}

// GradeResult is the outcome of grading one set of answers against a bank.
type GradeResult struct {
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Results        []QuestionResult `json:"results"`
}

// Grade scores answers against questions in bank order. It never fails: missing,
// mistyped or malformed answers are simply incorrect, and answers for ids outside
// the bank are ignored.
func Grade(questions []Question, answers Answers) GradeResult {
	result := GradeResult{
		TotalQuestions: len(questions),
		Results:        make([]QuestionResult, 0, len(questions)),
	}

	for _, q := range questions {
		answer := answers[q.ID]
		correct := q.Accepts(answer)
		if correct {
			result.Score += q.Points
		}
		result.Results = append(result.Results, QuestionResult{
			QuestionID:    q.ID,
			Correct:       correct,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	return result
}

// Accepts reports whether answer is correct for q.
func (q Question) Accepts(answer Answer) bool {
	switch q.Kind {
	case KindMultipleChoice:
		got, ok := answer.Choice()
		want, _ := q.CorrectAnswer.Choice()
		return ok && got == want
	case KindFreeText:
		return normalize(answer.String()) == normalize(q.CorrectAnswer.String())
	default:
		return false
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
