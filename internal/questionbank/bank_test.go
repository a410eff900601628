package questionbank

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhisek/plantcheck/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBank(t *testing.T) {
	eval, err := LoadBank(filepath.Join("testdata", "operador.json"))
	require.NoError(t, err)

	assert.Equal(t, scoring.KindPersonnel, eval.Kind)
	assert.Equal(t, "operador", eval.Role)
	require.Len(t, eval.Sections, 2)

	seg := eval.Sections[0]
	assert.Equal(t, "1", seg.ID)
	assert.Equal(t, "Seguridad", seg.Name)
	assert.True(t, seg.HasWeight)
	assert.Equal(t, 60.0, seg.Weight)
	require.Len(t, seg.Questions, 3)
	assert.Equal(t, "11", seg.Questions[0].ID)
	assert.Equal(t, scoring.QuestionOpen, seg.Questions[0].Kind)
	assert.False(t, seg.Questions[0].IsTrap)
	assert.True(t, seg.Questions[2].IsTrap)
	assert.Equal(t, 2, seg.ScoredQuestions())

	dos := eval.Sections[1]
	assert.Equal(t, "2", dos.ID)
	assert.Equal(t, 40.0, dos.Weight)
	mc := dos.Questions[0]
	assert.Equal(t, scoring.QuestionMultipleChoice, mc.Kind)
	assert.Equal(t, scoring.AnswerB, mc.Correct)
	assert.Equal(t, [3]string{"0.30", "0.55", "0.90"}, mc.Options)
	assert.False(t, dos.Questions[1].IsTrap)
}

func TestLoadBank_MissingFile(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseBank_MissingWeightClearsHasWeight(t *testing.T) {
	data := []byte(`{"tipo":"equipo","rol":"revolvedora","secciones":[
		{"nombre":"Motor","ponderacion":null,"preguntas":[{"pregunta":"¿Sin fugas de aceite?"}]},
		{"nombre":"Tambor","preguntas":[{"pregunta":"¿Aspas completas?"}]}
	]}`)

	eval, err := ParseBank(data)
	require.NoError(t, err)
	assert.Equal(t, scoring.KindEquipment, eval.Kind)
	for _, s := range eval.Sections {
		assert.False(t, s.HasWeight, s.Name)
	}
	assert.Equal(t, "0", eval.Sections[0].ID)
	assert.Equal(t, "0", eval.Sections[0].Questions[0].ID)
	assert.Equal(t, scoring.QuestionOpen, eval.Sections[0].Questions[0].Kind)
}

func TestParseBank_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"tipo":`},
		{"missing secciones", `{"tipo":"personal"}`},
		{"missing tipo", `{"secciones":[]}`},
		{"section without name", `{"tipo":"personal","secciones":[{"preguntas":[]}]}`},
		{"question without prompt", `{"tipo":"personal","secciones":[{"nombre":"A","preguntas":[{}]}]}`},
		{"unknown tipo", `{"tipo":"vehiculo","secciones":[]}`},
		{"unknown question type", `{"tipo":"personal","secciones":[{"nombre":"A","preguntas":[{"pregunta":"x","tipo_pregunta":"escala"}]}]}`},
		{"mc without correct option", `{"tipo":"personal","secciones":[{"nombre":"A","preguntas":[{"pregunta":"x","tipo_pregunta":"seleccion_multiple"}]}]}`},
		{"mc with correct option d", `{"tipo":"personal","secciones":[{"nombre":"A","preguntas":[{"pregunta":"x","tipo_pregunta":"seleccion_multiple","respuesta_correcta":"d"}]}]}`},
		{"negative weight", `{"tipo":"personal","secciones":[{"nombre":"A","ponderacion":-5,"preguntas":[]}]}`},
		{"weight not numeric", `{"tipo":"personal","secciones":[{"nombre":"A","ponderacion":"mucho","preguntas":[]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.data))
			require.Error(t, err)
			var invalid *ErrInvalidBank
			assert.True(t, errors.As(err, &invalid), "want *ErrInvalidBank, got %T", err)
		})
	}
}

func TestParseBank_CollectsAllProblems(t *testing.T) {
	data := []byte(`{"tipo":"vehiculo","secciones":[{"nombre":"A","preguntas":[
		{"pregunta":"x","tipo_pregunta":"escala"},
		{"pregunta":"y","tipo_pregunta":"seleccion_multiple","respuesta_correcta":"z"}
	]}]}`)

	_, err := ParseBank(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown evaluation type")
	assert.Contains(t, err.Error(), "unknown question type")
	assert.Contains(t, err.Error(), "correct option")
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want scoring.EvaluationKind
	}{
		{"personal", scoring.KindPersonnel},
		{"Equipo", scoring.KindEquipment},
		{"operación", scoring.KindOperation},
		{"operation", scoring.KindOperation},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("")
	assert.Error(t, err)
}

func TestFlexBool(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{`true`, true, false},
		{`1`, true, false},
		{`"1"`, true, false},
		{`false`, false, false},
		{`0`, false, false},
		{`"0"`, false, false},
		{`null`, false, false},
		{`"quizas"`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var b flexBool
			err := b.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bool(b))
		})
	}
}
