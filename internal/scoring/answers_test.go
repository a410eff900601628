package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in      string
		want    Answer
		wantErr bool
	}{
		{"si", AnswerYes, false},
		{"Sí", AnswerYes, false},
		{"YES", AnswerYes, false},
		{" no ", AnswerNo, false},
		{"NA", AnswerNotApplicable, false},
		{"n/a", AnswerNotApplicable, false},
		{"No Aplica", AnswerNotApplicable, false},
		{"not-applicable", AnswerNotApplicable, false},
		{"a", AnswerA, false},
		{"B", AnswerB, false},
		{"c", AnswerC, false},
		{"d", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnswer(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerMap_SetOverwrites(t *testing.T) {
	m := AnswerMap{}
	k := AnswerKey{Role: testRole, Section: 0, Question: 2}
	m.Set(k, AnswerNo)
	m.Set(k, AnswerYes)

	assert.Len(t, m, 1)
	assert.Equal(t, AnswerYes, m[k])
}

func TestAnswerMap_KeysOrdered(t *testing.T) {
	m := AnswerMap{}
	m.Set(AnswerKey{Role: "b", Section: 0, Question: 0}, AnswerYes)
	m.Set(AnswerKey{Role: "a", Section: 1, Question: 0}, AnswerYes)
	m.Set(AnswerKey{Role: "a", Section: 0, Question: 3}, AnswerYes)
	m.Set(AnswerKey{Role: "a", Section: 0, Question: 1}, AnswerYes)

	got := m.Keys()
	want := []AnswerKey{
		{Role: "a", Section: 0, Question: 1},
		{Role: "a", Section: 0, Question: 3},
		{Role: "a", Section: 1, Question: 0},
		{Role: "b", Section: 0, Question: 0},
	}
	assert.Equal(t, want, got)
}

func TestAnswerKey_String(t *testing.T) {
	k := AnswerKey{Role: "operador", Section: 2, Question: 5}
	assert.Equal(t, "operador/2/5", k.String())
}

func TestValidate(t *testing.T) {
	eval := newEval(KindPersonnel, section("A", 100, openQ("q1"), mcQ("q2", AnswerA)))
	m := AnswerMap{}
	m.Set(AnswerKey{Role: testRole, Section: 0, Question: 0}, AnswerYes)
	m.Set(AnswerKey{Role: testRole, Section: 0, Question: 1}, AnswerNotApplicable)
	m.Set(AnswerKey{Role: testRole, Section: -1, Question: 0}, AnswerYes)
	m.Set(AnswerKey{Role: testRole, Section: 0, Question: 5}, AnswerYes)

	skipped := Validate(eval, m)
	require.Len(t, skipped, 3)
	assert.Equal(t, SkipUnknownSection, skipped[0].Reason)
	assert.Equal(t, SkipInvalidAnswer, skipped[1].Reason)
	assert.Equal(t, SkipUnknownQuestion, skipped[2].Reason)
}

func TestValidate_Clean(t *testing.T) {
	eval := newEval(KindEquipment, section("A", 100, openQ("q1")))
	m := AnswerMap{}
	m.Set(AnswerKey{Role: testRole, Section: 0, Question: 0}, AnswerNotApplicable)
	assert.Empty(t, Validate(eval, m))
}
