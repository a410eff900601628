package questionbank

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/plantcheck/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAnswers(t *testing.T) {
	sheet, err := LoadAnswers(filepath.Join("testdata", "operador_respuestas.json"))
	require.NoError(t, err)

	assert.Equal(t, "operador", sheet.Role)
	// Seven entries, one overwrite.
	assert.Len(t, sheet.Answers, 6)

	key := func(s, q int) scoring.AnswerKey {
		return scoring.AnswerKey{Role: "operador", Section: s, Question: q}
	}
	assert.Equal(t, scoring.AnswerYes, sheet.Answers[key(0, 0)])
	assert.Equal(t, scoring.AnswerYes, sheet.Answers[key(0, 1)], "later entry wins")
	assert.Equal(t, scoring.AnswerB, sheet.Answers[key(1, 0)])
	assert.Equal(t, scoring.AnswerNotApplicable, sheet.Answers[key(1, 1)])
}

func TestParseAnswers_EntryRoleOverridesSheetRole(t *testing.T) {
	data := []byte(`{"rol":"operador","respuestas":[
		{"seccion":0,"pregunta":0,"respuesta":"si"},
		{"rol":"chofer","seccion":0,"pregunta":0,"respuesta":"no"}
	]}`)
	sheet, err := ParseAnswers(data)
	require.NoError(t, err)

	assert.Equal(t, scoring.AnswerYes, sheet.Answers[scoring.AnswerKey{Role: "operador"}])
	assert.Equal(t, scoring.AnswerNo, sheet.Answers[scoring.AnswerKey{Role: "chofer"}])
}

func TestParseAnswers_UnknownValueKeptForDiagnostics(t *testing.T) {
	data := []byte(`{"rol":"operador","respuestas":[{"seccion":0,"pregunta":0,"respuesta":"Tal Vez"}]}`)
	sheet, err := ParseAnswers(data)
	require.NoError(t, err)

	eval := &scoring.Evaluation{
		Kind: scoring.KindPersonnel,
		Role: "operador",
		Sections: []scoring.Section{{
			Name:      "A",
			Questions: []scoring.Question{{Kind: scoring.QuestionOpen}},
		}},
	}
	skipped := scoring.Validate(eval, sheet.Answers)
	require.Len(t, skipped, 1)
	assert.Equal(t, scoring.SkipInvalidAnswer, skipped[0].Reason)
	assert.Equal(t, scoring.Answer("tal vez"), skipped[0].Answer)
}

func TestParseAnswers_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `[`},
		{"missing respuestas", `{"rol":"operador"}`},
		{"section not integer", `{"respuestas":[{"seccion":"uno","pregunta":0,"respuesta":"si"}]}`},
		{"missing answer", `{"respuestas":[{"seccion":0,"pregunta":0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAnswers([]byte(tt.data))
			require.Error(t, err)
			var invalid *ErrInvalidBank
			assert.True(t, errors.As(err, &invalid))
			assert.Contains(t, err.Error(), "answer sheet")
		})
	}
}

func TestEntries(t *testing.T) {
	m := scoring.AnswerMap{}
	m.Set(scoring.AnswerKey{Role: "operador", Section: 1, Question: 0}, scoring.AnswerB)
	m.Set(scoring.AnswerKey{Role: "operador", Section: 0, Question: 2}, scoring.AnswerNotApplicable)

	got := Entries(m)
	want := []AnswerEntry{
		{Rol: "operador", Seccion: 0, Pregunta: 2, Respuesta: "not-applicable"},
		{Rol: "operador", Seccion: 1, Pregunta: 0, Respuesta: "b"},
	}
	assert.Equal(t, want, got)
}

func TestFixtureScoresEndToEnd(t *testing.T) {
	eval, err := LoadBank(filepath.Join("testdata", "operador.json"))
	require.NoError(t, err)
	sheet, err := LoadAnswers(filepath.Join("testdata", "operador_respuestas.json"))
	require.NoError(t, err)

	res := scoring.New(scoring.DefaultConfig()).ScoreEvaluation(eval, sheet.Answers)
	assert.Equal(t, 100, res.OverallScore)
	assert.Equal(t, 1, res.TotalWrongTraps)
	assert.False(t, res.TrapPenaltyTriggered)
	assert.True(t, res.Passed)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, scoring.SkipUnknownSection, res.Skipped[0].Reason)
	assert.Equal(t, 1, res.SectionScores[1].NotApplicable)
	assert.Equal(t, 1, res.SectionScores[1].TotalCount)
}
