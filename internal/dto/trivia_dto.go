package dto

import (
	"time"

	"github.com/lshigami/birthday-wall/internal/trivia"
)

// TriviaSubmitDTO is the body of POST /trivia. Answers maps question id to an option
// index (number) or free text (string).
type TriviaSubmitDTO struct {
	Name    string         `json:"name" binding:"required"`
	Answers trivia.Answers `json:"answers" binding:"required"`
}

// TriviaSubmissionDTO is a persisted submission as returned to clients.
type TriviaSubmissionDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// TriviaSubmitResponse is returned by POST /trivia.
type TriviaSubmitResponse struct {
	Success    bool                `json:"success"`
	Submission TriviaSubmissionDTO `json:"submission"`
	Results    trivia.GradeResult  `json:"results"`
}

// LeaderboardResponse is returned by GET /trivia/leaderboard.
type LeaderboardResponse struct {
	Success     bool                  `json:"success"`
	Submissions []TriviaSubmissionDTO `json:"submissions"`
}

// TriviaQuestionDTO is the public view of a question: no correct answer.
type TriviaQuestionDTO struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"prompt"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
	Points  int      `json:"points"`
}

type TriviaQuestionsResponse struct {
	Success   bool                `json:"success"`
	Questions []TriviaQuestionDTO `json:"questions"`
}
