package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/birthday-wall/internal/trivia"
	"gorm.io/datatypes"
)

// TriviaSubmission is one graded quiz attempt. Rows are inserted once and never
// updated or deleted.
type TriviaSubmission struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Name           string         `gorm:"type:text;not null;check:chk_trivia_submissions_name,name <> ''" json:"name"`
	Score          int            `gorm:"not null;index:idx_trivia_submissions_rank,priority:1" json:"score"`
	TotalQuestions int            `gorm:"not null" json:"total_questions"`
	Answers        datatypes.JSON `gorm:"not null" json:"-"`
	SubmittedAt    time.Time      `gorm:"not null;index:idx_trivia_submissions_rank,priority:2" json:"submitted_at"`
}

// SubmissionAnswers is the audit payload stored in the answers column.
type SubmissionAnswers struct {
	UserAnswers trivia.Answers          `json:"userAnswers"`
	Results     []trivia.QuestionResult `json:"results"`
}

// EncodeAnswers serializes the raw answers together with their grading.
func EncodeAnswers(answers trivia.Answers, results []trivia.QuestionResult) (datatypes.JSON, error) {
	payload, err := json.Marshal(SubmissionAnswers{UserAnswers: answers, Results: results})
	if err != nil {
		return nil, fmt.Errorf("encode submission answers: %w", err)
	}
	return datatypes.JSON(payload), nil
}

// DecodeAnswers is the inverse of EncodeAnswers.
func (s *TriviaSubmission) DecodeAnswers() (SubmissionAnswers, error) {
	var out SubmissionAnswers
	if err := json.Unmarshal(s.Answers, &out); err != nil {
		return SubmissionAnswers{}, fmt.Errorf("decode answers of submission %d: %w", s.ID, err)
	}
	return out, nil
}
