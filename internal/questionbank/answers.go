package questionbank

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/plantcheck/internal/scoring"
)

// AnswerEntry is one line of an answer sheet, in the field form's wire shape.
type AnswerEntry struct {
	Rol       string `json:"rol,omitempty"`
	Seccion   int    `json:"seccion"`
	Pregunta  int    `json:"pregunta"`
	Respuesta string `json:"respuesta"`
}

type answerSheet struct {
	Rol        string        `json:"rol"`
	Respuestas []AnswerEntry `json:"respuestas"`
}

// Sheet is a parsed answer sheet.
type Sheet struct {
	Role    string
	Answers scoring.AnswerMap
}

// LoadAnswers reads and parses the answer sheet at path.
func LoadAnswers(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answer sheet: %w", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers validates data against AnswerSheetSchema and builds the
// answer map. Entries without a role inherit the sheet's role. Later
// entries overwrite earlier ones for the same key. Unrecognized answer
// values are kept verbatim so scoring reports them as skipped instead of
// the whole sheet being rejected.
func ParseAnswers(data []byte) (*Sheet, error) {
	if err := validate(AnswerSheetSchema, data); err != nil {
		return nil, &ErrInvalidBank{Source: "answer sheet", Err: err}
	}

	var as answerSheet
	if err := json.Unmarshal(data, &as); err != nil {
		return nil, &ErrInvalidBank{Source: "answer sheet", Err: err}
	}

	sheet := &Sheet{
		Role:    strings.TrimSpace(as.Rol),
		Answers: make(scoring.AnswerMap, len(as.Respuestas)),
	}
	for _, e := range as.Respuestas {
		role := strings.TrimSpace(e.Rol)
		if role == "" {
			role = sheet.Role
		}
		a, err := scoring.ParseAnswer(e.Respuesta)
		if err != nil {
			a = scoring.Answer(strings.ToLower(strings.TrimSpace(e.Respuesta)))
		}
		sheet.Answers.Set(scoring.AnswerKey{Role: role, Section: e.Seccion, Question: e.Pregunta}, a)
	}
	return sheet, nil
}

// Entries converts an answer map back to wire entries, ordered by key.
func Entries(answers scoring.AnswerMap) []AnswerEntry {
	keys := answers.Keys()
	out := make([]AnswerEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, AnswerEntry{
			Rol:       k.Role,
			Seccion:   k.Section,
			Pregunta:  k.Question,
			Respuesta: string(answers[k]),
		})
	}
	return out
}
