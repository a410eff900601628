// Package questionbank reads the question-bank provider's payloads and the
// field answer sheets into scoring types.
package questionbank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/plantcheck/internal/scoring"
)

type bankFile struct {
	Tipo      string        `json:"tipo"`
	Rol       string        `json:"rol"`
	Secciones []bankSection `json:"secciones"`
}

type bankSection struct {
	ID          flexString     `json:"id"`
	Nombre      string         `json:"nombre"`
	Ponderacion *flexFloat     `json:"ponderacion"`
	Preguntas   []bankQuestion `json:"preguntas"`
}

type bankQuestion struct {
	ID                flexString `json:"id"`
	Pregunta          string     `json:"pregunta"`
	TipoPregunta      string     `json:"tipo_pregunta"`
	EsTrampa          flexBool   `json:"es_trampa"`
	OpcionA           string     `json:"opcion_a"`
	OpcionB           string     `json:"opcion_b"`
	OpcionC           string     `json:"opcion_c"`
	RespuestaCorrecta string     `json:"respuesta_correcta"`
}

// LoadBank reads and parses the question bank at path.
func LoadBank(path string) (*scoring.Evaluation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBank(data)
}

// ParseBank validates data against BankSchema and converts it into an
// Evaluation. Structural problems are reported together.
func ParseBank(data []byte) (*scoring.Evaluation, error) {
	if err := validate(BankSchema, data); err != nil {
		return nil, &ErrInvalidBank{Source: "question bank", Err: err}
	}

	var bf bankFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, &ErrInvalidBank{Source: "question bank", Err: err}
	}

	var errs []string

	kind, err := ParseKind(bf.Tipo)
	if err != nil {
		errs = append(errs, err.Error())
	}

	eval := &scoring.Evaluation{
		Kind:     kind,
		Role:     strings.TrimSpace(bf.Rol),
		Sections: make([]scoring.Section, 0, len(bf.Secciones)),
	}

	for si, bs := range bf.Secciones {
		sec := scoring.Section{
			ID:        string(bs.ID),
			Name:      bs.Nombre,
			Questions: make([]scoring.Question, 0, len(bs.Preguntas)),
		}
		if sec.ID == "" {
			sec.ID = strconv.Itoa(si)
		}
		if bs.Ponderacion != nil {
			sec.Weight = float64(*bs.Ponderacion)
			sec.HasWeight = true
			if sec.Weight < 0 {
				errs = append(errs, fmt.Sprintf("section %q has negative weight %v", sec.Name, sec.Weight))
			}
		}

		for qi, bq := range bs.Preguntas {
			q, err := convertQuestion(bq)
			if err != nil {
				errs = append(errs, fmt.Sprintf("section %q question %d: %v", sec.Name, qi, err))
				continue
			}
			if q.ID == "" {
				q.ID = strconv.Itoa(qi)
			}
			sec.Questions = append(sec.Questions, q)
		}
		eval.Sections = append(eval.Sections, sec)
	}

	if len(errs) > 0 {
		return nil, &ErrInvalidBank{Source: "question bank", Err: errors.New(strings.Join(errs, "; "))}
	}
	return eval, nil
}

func convertQuestion(bq bankQuestion) (scoring.Question, error) {
	kind, err := ParseQuestionKind(bq.TipoPregunta)
	if err != nil {
		return scoring.Question{}, err
	}

	q := scoring.Question{
		ID:     string(bq.ID),
		Text:   bq.Pregunta,
		Kind:   kind,
		IsTrap: bool(bq.EsTrampa),
	}

	if kind == scoring.QuestionMultipleChoice {
		q.Options = [3]string{bq.OpcionA, bq.OpcionB, bq.OpcionC}
		correct, err := scoring.ParseAnswer(bq.RespuestaCorrecta)
		if err != nil || !q.Accepts(correct) {
			return scoring.Question{}, fmt.Errorf("multiple-choice correct option must be a, b or c, got %q", bq.RespuestaCorrecta)
		}
		q.Correct = correct
	}
	return q, nil
}

// ParseKind maps the provider's evaluation type to an EvaluationKind.
func ParseKind(s string) (scoring.EvaluationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "personal", "personnel":
		return scoring.KindPersonnel, nil
	case "equipo", "equipment":
		return scoring.KindEquipment, nil
	case "operacion", "operación", "operation":
		return scoring.KindOperation, nil
	}
	return "", fmt.Errorf("unknown evaluation type %q", s)
}

// ParseQuestionKind maps the provider's question type. An empty type is an
// open question.
func ParseQuestionKind(s string) (scoring.QuestionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "abierta", "open":
		return scoring.QuestionOpen, nil
	case "seleccion_multiple", "selección_multiple", "opcion_multiple", "multiple", "multiple-choice":
		return scoring.QuestionMultipleChoice, nil
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

// flexFloat accepts a JSON number or a numeric string ("25", "25.5").
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("weight %q is not a number", s)
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexBool accepts true/false, 0/1 and "0"/"1".
type flexBool bool

func (f *flexBool) UnmarshalJSON(b []byte) error {
	switch strings.ToLower(strings.Trim(string(bytes.TrimSpace(b)), `"`)) {
	case "true", "1", "si", "sí":
		*f = true
	case "false", "0", "no", "", "null":
		*f = false
	default:
		return fmt.Errorf("invalid boolean %s", b)
	}
	return nil
}
