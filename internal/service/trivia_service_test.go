package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/birthday-wall/internal/dbtest"
	"github.com/lshigami/birthday-wall/internal/model"
	"github.com/lshigami/birthday-wall/internal/repository"
	"github.com/lshigami/birthday-wall/internal/service"
	"github.com/lshigami/birthday-wall/internal/trivia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stepClock returns start, start+step, start+2*step, ...
func stepClock(start time.Time, step time.Duration) service.Clock {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

func testBank(t *testing.T) *trivia.Bank {
	t.Helper()
	bank, err := trivia.NewBank([]trivia.Question{
		{ID: 1, Prompt: "Favorite color?", Kind: trivia.KindFreeText, CorrectAnswer: trivia.Text("green"), Points: 3},
		{ID: 2, Prompt: "Favorite band?", Kind: trivia.KindMultipleChoice, Options: []string{"A", "B", "C"}, CorrectAnswer: trivia.Choice(1), Points: 2},
	})
	require.NoError(t, err)
	return bank
}

func newTriviaService(t *testing.T, db *gorm.DB, clock service.Clock) service.TriviaService {
	t.Helper()
	svc, err := service.NewTriviaService(testBank(t), repository.NewTriviaSubmissionRepository(db), clock)
	require.NoError(t, err)
	return svc
}

var start = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRecordSubmission_ReadAfterWrite(t *testing.T) {
	svc := newTriviaService(t, dbtest.Open(t), stepClock(start, time.Second))
	ctx := context.Background()

	created, result, err := svc.RecordSubmission(ctx, "Pat", trivia.Answers{1: trivia.Text(" Green "), 2: trivia.Choice(0)})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 3, created.Score)
	assert.Equal(t, 2, created.TotalQuestions)

	board, err := svc.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, created.ID, board[0].ID)
	assert.Equal(t, "Pat", board[0].Name)
	assert.True(t, created.SubmittedAt.Equal(board[0].SubmittedAt),
		"write returned %s, read returned %s", created.SubmittedAt, board[0].SubmittedAt)
}

func TestRecordSubmission_VisibleThroughAnotherService(t *testing.T) {
	db := dbtest.Open(t)
	writer := newTriviaService(t, db, stepClock(start, time.Second))
	reader := newTriviaService(t, db, stepClock(start, time.Second))
	ctx := context.Background()

	created, _, err := writer.RecordSubmission(ctx, "Pat", trivia.Answers{2: trivia.Choice(1)})
	require.NoError(t, err)

	board, err := reader.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, created.ID, board[0].ID)
}

func TestRecordSubmission_SubSecondTimestampSurvives(t *testing.T) {
	clock := func() time.Time { return start.Add(123456789 * time.Nanosecond) }
	svc := newTriviaService(t, dbtest.Open(t), clock)

	created, _, err := svc.RecordSubmission(context.Background(), "Pat", trivia.Answers{1: trivia.Text("green")})
	require.NoError(t, err)
	assert.Equal(t, start.Add(123456*time.Microsecond), created.SubmittedAt)

	board, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.True(t, created.SubmittedAt.Equal(board[0].SubmittedAt))
}

func TestRecordSubmission_Validation(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		answers trivia.Answers
	}{
		{name: "empty name", user: "", answers: trivia.Answers{1: trivia.Choice(1)}},
		{name: "blank name", user: "   ", answers: trivia.Answers{1: trivia.Choice(1)}},
		{name: "nil answers", user: "Pat", answers: nil},
		{name: "empty answers", user: "Pat", answers: trivia.Answers{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := dbtest.Open(t)
			svc := newTriviaService(t, db, stepClock(start, time.Second))

			_, _, err := svc.RecordSubmission(context.Background(), tt.user, tt.answers)
			require.Error(t, err)
			assert.True(t, errors.Is(err, service.ErrValidation))
			assert.Equal(t, "Name and answers are required", err.Error())

			board, err := svc.ListSubmissions(context.Background())
			require.NoError(t, err)
			assert.Empty(t, board)
		})
	}
}

func TestRecordSubmission_TrimsName(t *testing.T) {
	svc := newTriviaService(t, dbtest.Open(t), stepClock(start, time.Second))

	created, _, err := svc.RecordSubmission(context.Background(), "  Pat  ", trivia.Answers{1: trivia.Text("blue")})
	require.NoError(t, err)
	assert.Equal(t, "Pat", created.Name)
	assert.Equal(t, 0, created.Score)
}

func TestRecordSubmission_StoresAnswersAndResults(t *testing.T) {
	db := dbtest.Open(t)
	svc := newTriviaService(t, db, stepClock(start, time.Second))

	answers := trivia.Answers{1: trivia.Text("GREEN"), 2: trivia.Choice(2), 99: trivia.Choice(0)}
	created, _, err := svc.RecordSubmission(context.Background(), "Pat", answers)
	require.NoError(t, err)

	var row model.TriviaSubmission
	require.NoError(t, db.First(&row, created.ID).Error)

	stored, err := row.DecodeAnswers()
	require.NoError(t, err)
	assert.Equal(t, answers, stored.UserAnswers)
	require.Len(t, stored.Results, 2)
	assert.True(t, stored.Results[0].Correct)
	assert.False(t, stored.Results[1].Correct)
}

func TestListSubmissions_Ranked(t *testing.T) {
	svc := newTriviaService(t, dbtest.Open(t), stepClock(start, time.Second))
	ctx := context.Background()

	_, _, err := svc.RecordSubmission(ctx, "low", trivia.Answers{2: trivia.Choice(1)})
	require.NoError(t, err)
	_, _, err = svc.RecordSubmission(ctx, "top-early", trivia.Answers{1: trivia.Text("green"), 2: trivia.Choice(1)})
	require.NoError(t, err)
	_, _, err = svc.RecordSubmission(ctx, "top-late", trivia.Answers{1: trivia.Text("green"), 2: trivia.Choice(1)})
	require.NoError(t, err)

	board, err := svc.ListSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "top-early", board[0].Name)
	assert.Equal(t, "top-late", board[1].Name)
	assert.Equal(t, "low", board[2].Name)
	assert.Equal(t, 5, board[0].Score)
}

func TestListSubmissions_EmptyIsNotNil(t *testing.T) {
	svc := newTriviaService(t, dbtest.Open(t), stepClock(start, time.Second))

	board, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, board)
	assert.Empty(t, board)
}

func TestTriviaService_StoreUnavailable(t *testing.T) {
	db := dbtest.Open(t)
	svc := newTriviaService(t, db, stepClock(start, time.Second))
	dbtest.Close(t, db)

	_, _, err := svc.RecordSubmission(context.Background(), "Pat", trivia.Answers{1: trivia.Text("green")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, service.ErrValidation))

	_, err = svc.ListSubmissions(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrStoreUnavailable))
}

func TestTriviaService_QuestionsHideAnswers(t *testing.T) {
	svc := newTriviaService(t, dbtest.Open(t), service.NewClock())

	questions := svc.Questions()
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, "free_text", questions[0].Kind)
	assert.Empty(t, questions[0].Options)
	assert.Equal(t, "multiple_choice", questions[1].Kind)
	assert.Equal(t, []string{"A", "B", "C"}, questions[1].Options)
	assert.Equal(t, 2, questions[1].Points)

	questions[0].Prompt = "changed"
	assert.Equal(t, "Favorite color?", svc.Questions()[0].Prompt)
}
