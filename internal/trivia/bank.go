package trivia

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed questions.json
var defaultBankJSON []byte

// Bank is the validated, read-only question set the process grades against.
type Bank struct {
	questions []Question
}

// NewBank validates questions and takes a private copy of them.
func NewBank(questions []Question) (*Bank, error) {
	seen := make(map[int]struct{}, len(questions))
	for _, q := range questions {
		if err := q.validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %d", ErrInvalidBank, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return &Bank{questions: cloneQuestions(questions)}, nil
}

// ParseBank decodes a JSON array of questions.
func ParseBank(data []byte) (*Bank, error) {
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBank, err)
	}
	return NewBank(questions)
}

// DefaultBank returns the bundled birthday trivia.
func DefaultBank() (*Bank, error) {
	return ParseBank(defaultBankJSON)
}

// LoadBank reads a bank from path, or the bundled one when path is empty.
func LoadBank(path string) (*Bank, error) {
	if path == "" {
		return DefaultBank()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", path, err)
	}
	return ParseBank(data)
}

// Questions returns a copy of the bank in order.
func (b *Bank) Questions() []Question {
	return cloneQuestions(b.questions)
}

func (b *Bank) Len() int { return len(b.questions) }

// Grade scores answers against this bank.
func (b *Bank) Grade(answers Answers) GradeResult {
	return Grade(b.questions, answers)
}

func cloneQuestions(in []Question) []Question {
	out := make([]Question, len(in))
	for i, q := range in {
		if q.Options != nil {
			q.Options = append([]string(nil), q.Options...)
		}
		out[i] = q
	}
	return out
}
