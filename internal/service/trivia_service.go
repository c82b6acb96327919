package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/birthday-wall/internal/dto"
	"github.com/lshigami/birthday-wall/internal/model"
	"github.com/lshigami/birthday-wall/internal/repository"
	"github.com/lshigami/birthday-wall/internal/trivia"
	"github.com/rs/zerolog/log"
)

// Clock supplies server-side timestamps.
type Clock func() time.Time

func NewClock() Clock { return time.Now }

// TriviaService grades quiz attempts and keeps the leaderboard.
//
// A submission returned by RecordSubmission is committed: any ListSubmissions call
// made after it returns, through this service or another one sharing the same
// database, includes it.
type TriviaService interface {
	Questions() []dto.TriviaQuestionDTO
	RecordSubmission(ctx context.Context, name string, answers trivia.Answers) (*dto.TriviaSubmissionDTO, *trivia.GradeResult, error)
	ListSubmissions(ctx context.Context) ([]dto.TriviaSubmissionDTO, error)
}

type triviaService struct {
	bank      *trivia.Bank
	questions []dto.TriviaQuestionDTO
	repo      repository.TriviaSubmissionRepository
	now       Clock
}

// NewTriviaService creates a new instance of TriviaService.
func NewTriviaService(bank *trivia.Bank, repo repository.TriviaSubmissionRepository, now Clock) (TriviaService, error) {
	var questions []dto.TriviaQuestionDTO
	if err := copier.Copy(&questions, bank.Questions()); err != nil {
		return nil, fmt.Errorf("map question bank: %w", err)
	}
	if questions == nil {
		questions = []dto.TriviaQuestionDTO{}
	}
	return &triviaService{
		bank:      bank,
		questions: questions,
		repo:      repo,
		now:       now,
	}, nil
}

func (s *triviaService) Questions() []dto.TriviaQuestionDTO {
	out := make([]dto.TriviaQuestionDTO, len(s.questions))
	copy(out, s.questions)
	return out
}

// RecordSubmission validates, grades and stores one attempt. The returned
// submission carries the id and submitted_at exactly as persisted.
func (s *triviaService) RecordSubmission(ctx context.Context, name string, answers trivia.Answers) (*dto.TriviaSubmissionDTO, *trivia.GradeResult, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(answers) == 0 {
		return nil, nil, validationError("Name and answers are required")
	}

	result := s.bank.Grade(answers)
	payload, err := model.EncodeAnswers(answers, result.Results)
	if err != nil {
		return nil, nil, err
	}

	submission := model.TriviaSubmission{
		Name:           name,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Answers:        payload,
		// postgres keeps microseconds; truncating here makes the returned value
		// identical to what a later read yields.
		SubmittedAt: s.now().UTC().Truncate(time.Microsecond),
	}
	if err := s.repo.Create(ctx, &submission); err != nil {
		log.Error().Err(err).Str("name", name).Msg("RecordSubmission: insert failed")
		return nil, nil, storeError("record trivia submission", err)
	}

	log.Info().
		Uint("submissionID", submission.ID).
		Str("name", name).
		Int("score", result.Score).
		Int("totalQuestions", result.TotalQuestions).
		Msg("Trivia submission stored")

	var out dto.TriviaSubmissionDTO
	if err := copier.Copy(&out, &submission); err != nil {
		return nil, nil, fmt.Errorf("map submission %d: %w", submission.ID, err)
	}
	return &out, &result, nil
}

// ListSubmissions returns the whole leaderboard.
func (s *triviaService) ListSubmissions(ctx context.Context) ([]dto.TriviaSubmissionDTO, error) {
	submissions, err := s.repo.FindAllRanked(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListSubmissions: query failed")
		return nil, storeError("list trivia submissions", err)
	}

	out := make([]dto.TriviaSubmissionDTO, 0, len(submissions))
	if err := copier.Copy(&out, &submissions); err != nil {
		return nil, fmt.Errorf("map leaderboard: %w", err)
	}
	if out == nil {
		out = []dto.TriviaSubmissionDTO{}
	}
	return out, nil
}
