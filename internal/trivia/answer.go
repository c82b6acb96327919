package trivia

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// AnswerKind tags which variant an Answer holds.
type AnswerKind uint8

const (
	AnswerAbsent  AnswerKind = iota // nothing submitted
	AnswerChoice                    // zero-based option index (JSON integer)
	AnswerText                      // free text (JSON string)
	AnswerInvalid                   // any other JSON value, kept verbatim for audit
)

// Answer is a participant's raw answer to one question. Multiple-choice keys are
// integers and free-text keys are strings; the variant is decided by the JSON type
// the client sent, never by coercion.
type Answer struct {
	kind   AnswerKind
	choice int
	text   string
	raw    json.RawMessage
}

// Choice builds an option-index answer.
func Choice(index int) Answer {
	return Answer{kind: AnswerChoice, choice: index}
}

// Text builds a free-text answer.
func Text(s string) Answer {
	return Answer{kind: AnswerText, text: s}
}

func (a Answer) Kind() AnswerKind { return a.kind }

func (a Answer) IsAbsent() bool { return a.kind == AnswerAbsent }

// Choice returns the option index and whether the answer is an index at all.
func (a Answer) Choice() (int, bool) {
	return a.choice, a.kind == AnswerChoice
}

// Text returns the text and whether the answer is a string at all.
func (a Answer) Text() (string, bool) {
	return a.text, a.kind == AnswerText
}

// String renders the answer the way free-text grading sees it: indexes in decimal,
// absent and invalid values as "".
func (a Answer) String() string {
	switch a.kind {
	case AnswerChoice:
		return strconv.Itoa(a.choice)
	case AnswerText:
		return a.text
	default:
		return ""
	}
}

// Equal reports whether both answers hold the same variant and value.
func (a Answer) Equal(b Answer) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case AnswerChoice:
		return a.choice == b.choice
	case AnswerText:
		return a.text == b.text
	case AnswerInvalid:
		return bytes.Equal(a.raw, b.raw)
	default:
		return true
	}
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Answer{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Text(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if n, ok := v.(json.Number); ok {
		// 1.0 and 1e0 are not option indexes.
		if i, err := strconv.Atoi(n.String()); err == nil {
			*a = Choice(i)
			return nil
		}
	}

	*a = Answer{kind: AnswerInvalid, raw: append(json.RawMessage(nil), data...)}
	return nil
}

// MarshalJSON writes absent answers as "" so result payloads always carry a value.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AnswerChoice:
		return []byte(strconv.Itoa(a.choice)), nil
	case AnswerText:
		return json.Marshal(a.text)
	case AnswerInvalid:
		return a.raw, nil
	default:
		return []byte(`""`), nil
	}
}

// Answers maps question id to the participant's answer.
type Answers map[int]Answer

// UnmarshalJSON accepts an object keyed by question id. Keys that are not integers
// in canonical decimal form ("1", not "01" or "+1") are dropped, like unknown ids,
// so each question is answered by at most one key.
func (as *Answers) UnmarshalJSON(data []byte) error {
	var byKey map[string]Answer
	if err := json.Unmarshal(data, &byKey); err != nil {
		return err
	}
	if byKey == nil {
		*as = nil
		return nil
	}

	out := make(Answers, len(byKey))
	for key, answer := range byKey {
		id, err := strconv.Atoi(key)
		if err != nil || strconv.Itoa(id) != key {
			continue
		}
		out[id] = answer
	}
	*as = out
	return nil
}
