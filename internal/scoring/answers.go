package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// Answer is a submitted answer value.
type Answer string

const (
	AnswerYes           Answer = "yes"
	AnswerNo            Answer = "no"
	AnswerNotApplicable Answer = "not-applicable"
	AnswerA             Answer = "a"
	AnswerB             Answer = "b"
	AnswerC             Answer = "c"
)

// ParseAnswer normalizes the spellings used by the question-bank and the
// field forms (Spanish and English) into an Answer.
func ParseAnswer(s string) (Answer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "si", "sí", "y", "s":
		return AnswerYes, nil
	case "no", "n":
		return AnswerNo, nil
	case "not-applicable", "na", "n/a", "no aplica", "no_aplica", "no-aplica":
		return AnswerNotApplicable, nil
	case "a":
		return AnswerA, nil
	case "b":
		return AnswerB, nil
	case "c":
		return AnswerC, nil
	}
	return "", fmt.Errorf("unknown answer %q", s)
}

// AnswerKey addresses one question of one role's evaluation.
// Section and Question are zero-based indices.
type AnswerKey struct {
	Role     string `json:"role"`
	Section  int    `json:"section"`
	Question int    `json:"question"`
}

func (k AnswerKey) String() string {
	return fmt.Sprintf("%s/%d/%d", k.Role, k.Section, k.Question)
}

// AnswerMap accumulates answers as the user progresses.
type AnswerMap map[AnswerKey]Answer

// Set records an answer, overwriting any previous answer for the same key.
func (m AnswerMap) Set(key AnswerKey, a Answer) {
	m[key] = a
}

// Keys returns the keys in role, section, question order.
func (m AnswerMap) Keys() []AnswerKey {
	keys := make([]AnswerKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.Role != b.Role {
			return a.Role < b.Role
		}
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		return a.Question < b.Question
	})
	return keys
}

// SkipReason explains why an answer was ignored.
type SkipReason string

const (
	SkipUnknownRole     SkipReason = "unknown-role"
	SkipUnknownSection  SkipReason = "unknown-section"
	SkipUnknownQuestion SkipReason = "unknown-question"
	SkipInvalidAnswer   SkipReason = "invalid-answer"
)

// SkippedAnswer is an answer-map entry that did not resolve against the
// evaluation.
type SkippedAnswer struct {
	Key    AnswerKey  `json:"key"`
	Answer Answer     `json:"answer"`
	Reason SkipReason `json:"reason"`
}

// Validate returns every entry of answers that scoring will ignore.
// The result is ordered by key.
func Validate(eval *Evaluation, answers AnswerMap) []SkippedAnswer {
	var skipped []SkippedAnswer
	for _, k := range answers.Keys() {
		a := answers[k]
		if reason, ok := resolve(eval, k, a); !ok {
			skipped = append(skipped, SkippedAnswer{Key: k, Answer: a, Reason: reason})
		}
	}
	return skipped
}

func resolve(eval *Evaluation, k AnswerKey, a Answer) (SkipReason, bool) {
	if k.Role != eval.Role {
		return SkipUnknownRole, false
	}
	if k.Section < 0 || k.Section >= len(eval.Sections) {
		return SkipUnknownSection, false
	}
	qs := eval.Sections[k.Section].Questions
	if k.Question < 0 || k.Question >= len(qs) {
		return SkipUnknownQuestion, false
	}
	if !qs[k.Question].Accepts(a) {
		return SkipInvalidAnswer, false
	}
	return "", true
}

// lookup returns the answer for a question only when it is legal for that
// question's kind.
func lookup(eval *Evaluation, answers AnswerMap, section, question int) (Answer, bool) {
	a, ok := answers[AnswerKey{Role: eval.Role, Section: section, Question: question}]
	if !ok {
		return "", false
	}
	if !eval.Sections[section].Questions[question].Accepts(a) {
		return "", false
	}
	return a, true
}
