package trivia

import (
	"errors"
	"fmt"
)

// Kind is the question type.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindFreeText       Kind = "free_text"
)

var ErrInvalidBank = errors.New("invalid question bank")

// Question is one immutable trivia item. CorrectAnswer holds an option index for
// multiple-choice questions and the canonical text for free-text ones.
type Question struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"prompt"`
	Kind          Kind     `json:"kind"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer Answer   `json:"correctAnswer"`
	Points        int      `json:"points"`
}

func (q Question) validate() error {
	if q.ID <= 0 {
		return fmt.Errorf("%w: question id %d must be positive", ErrInvalidBank, q.ID)
	}
	if q.Points <= 0 {
		return fmt.Errorf("%w: question %d must be worth at least one point", ErrInvalidBank, q.ID)
	}

	switch q.Kind {
	case KindMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: question %d needs at least two options", ErrInvalidBank, q.ID)
		}
		idx, ok := q.CorrectAnswer.Choice()
		if !ok {
			return fmt.Errorf("%w: question %d correct answer must be an option index", ErrInvalidBank, q.ID)
		}
		if idx < 0 || idx >= len(q.Options) {
			return fmt.Errorf("%w: question %d correct index %d is out of range", ErrInvalidBank, q.ID, idx)
		}
	case KindFreeText:
		if len(q.Options) > 0 {
			return fmt.Errorf("%w: free-text question %d must not have options", ErrInvalidBank, q.ID)
		}
		text, ok := q.CorrectAnswer.Text()
		if !ok {
			return fmt.Errorf("%w: question %d correct answer must be text", ErrInvalidBank, q.ID)
		}
		// An empty canonical answer would accept a missing answer.
		if normalize(text) == "" {
			return fmt.Errorf("%w: question %d correct answer is empty", ErrInvalidBank, q.ID)
		}
	default:
		return fmt.Errorf("%w: question %d has unknown kind %q", ErrInvalidBank, q.ID, q.Kind)
	}

	return nil
}
