package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompiledSchemaCached(t *testing.T) {
	first, err := compiledSchema(AnswerSheetSchema)
	require.NoError(t, err)
	second, err := compiledSchema(AnswerSheetSchema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"valid", `{"respuestas": [{"seccion": 0, "pregunta": 1, "respuesta": "yes"}]}`, ""},
		{"not json", `{"respuestas": [`, "invalid JSON"},
		{"missing answers", `{"rol": "operador"}`, "schema validation failed"},
		{"fractional index", `{"respuestas": [{"seccion": 0.5, "pregunta": 1, "respuesta": "yes"}]}`, "schema validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(AnswerSheetSchema, []byte(tt.raw))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
