package trivia

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBank(t *testing.T) *Bank {
	t.Helper()
	bank, err := NewBank([]Question{
		{ID: 1, Prompt: "Pick B", Kind: KindMultipleChoice, Options: []string{"A", "B"}, CorrectAnswer: Choice(1), Points: 2},
		{ID: 2, Prompt: "Favorite color?", Kind: KindFreeText, CorrectAnswer: Text("green"), Points: 3},
	})
	require.NoError(t, err)
	return bank
}

func decodeAnswers(t *testing.T, raw string) Answers {
	t.Helper()
	var answers Answers
	require.NoError(t, json.Unmarshal([]byte(raw), &answers))
	return answers
}

func TestGrade_AllCorrect(t *testing.T) {
	bank := sampleBank(t)

	result := bank.Grade(decodeAnswers(t, `{"1": 1, "2": "GREEN"}`))

	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 2, result.TotalQuestions)
	require.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].Correct)
	assert.True(t, result.Results[1].Correct)
}

func TestGrade_MissingAnswer(t *testing.T) {
	bank := sampleBank(t)

	result := bank.Grade(decodeAnswers(t, `{"1": 0}`))

	assert.Equal(t, 0, result.Score)
	require.Len(t, result.Results, 2)
	assert.False(t, result.Results[0].Correct)
	assert.False(t, result.Results[1].Correct)
	assert.True(t, result.Results[1].UserAnswer.IsAbsent())

	payload, err := json.Marshal(result.Results[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"questionId":2,"correct":false,"userAnswer":"","correctAnswer":"green"}`, string(payload))
}

func TestGrade_MultipleChoiceIsStrict(t *testing.T) {
	bank := sampleBank(t)

	testCases := []struct {
		name    string
		answers string
		correct bool
	}{
		{name: "integer index", answers: `{"1": 1}`, correct: true},
		{name: "stringified index", answers: `{"1": "1"}`, correct: false},
		{name: "wrong index", answers: `{"1": 0}`, correct: false},
		{name: "float index", answers: `{"1": 1.0}`, correct: false},
		{name: "boolean", answers: `{"1": true}`, correct: false},
		{name: "null", answers: `{"1": null}`, correct: false},
		{name: "out of range", answers: `{"1": 7}`, correct: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := bank.Grade(decodeAnswers(t, tc.answers))
			assert.Equal(t, tc.correct, result.Results[0].Correct)
		})
	}
}

func TestGrade_FreeTextNormalization(t *testing.T) {
	bank := sampleBank(t)

	testCases := []struct {
		name    string
		answers string
		correct bool
	}{
		{name: "padded mixed case", answers: `{"2": " Green "}`, correct: true},
		{name: "exact", answers: `{"2": "green"}`, correct: true},
		{name: "tabs and newlines", answers: `{"2": "\tGREEN\n"}`, correct: true},
		{name: "different word", answers: `{"2": "blue"}`, correct: false},
		{name: "empty", answers: `{"2": ""}`, correct: false},
		{name: "whitespace only", answers: `{"2": "   "}`, correct: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := bank.Grade(decodeAnswers(t, tc.answers))
			assert.Equal(t, tc.correct, result.Results[1].Correct)
		})
	}
}

func TestGrade_FreeTextAcceptsNumericAnswer(t *testing.T) {
	bank, err := NewBank([]Question{
		{ID: 4, Prompt: "How many siblings?", Kind: KindFreeText, CorrectAnswer: Text("6"), Points: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, bank.Grade(Answers{4: Choice(6)}).Score)
	assert.Equal(t, 2, bank.Grade(Answers{4: Text(" 6")}).Score)
}

func TestGrade_EmptyAnswers(t *testing.T) {
	bank := sampleBank(t)

	result := bank.Grade(Answers{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, bank.Len(), result.TotalQuestions)
	assert.Len(t, result.Results, bank.Len())
}

func TestGrade_TotalQuestionsIgnoresAnswerCount(t *testing.T) {
	bank := sampleBank(t)

	result := bank.Grade(Answers{1: Choice(1), 2: Text("green"), 99: Text("extra"), -3: Choice(0)})

	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 5, result.Score)
	assert.Len(t, result.Results, 2)
}

func TestGrade_EmptyBank(t *testing.T) {
	result := Grade(nil, Answers{1: Choice(1)})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 0, result.TotalQuestions)
	assert.NotNil(t, result.Results)
	assert.Empty(t, result.Results)

	payload, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score":0,"totalQuestions":0,"results":[]}`, string(payload))
}

func TestGrade_Deterministic(t *testing.T) {
	bank := sampleBank(t)
	answers := decodeAnswers(t, `{"1": 0, "2": "Green"}`)

	first := bank.Grade(answers)
	second := bank.Grade(answers)

	assert.Equal(t, first, second)
}

func TestGrade_ResultsFollowBankOrder(t *testing.T) {
	bank, err := NewBank([]Question{
		{ID: 9, Prompt: "nine", Kind: KindFreeText, CorrectAnswer: Text("a"), Points: 1},
		{ID: 3, Prompt: "three", Kind: KindFreeText, CorrectAnswer: Text("b"), Points: 1},
		{ID: 5, Prompt: "five", Kind: KindFreeText, CorrectAnswer: Text("c"), Points: 1},
	})
	require.NoError(t, err)

	result := bank.Grade(Answers{5: Text("c")})

	ids := make([]int, 0, len(result.Results))
	for _, r := range result.Results {
		ids = append(ids, r.QuestionID)
	}
	assert.Equal(t, []int{9, 3, 5}, ids)
	assert.Equal(t, 1, result.Score)
}
