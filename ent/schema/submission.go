package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/abhisek/plantcheck/internal/questionbank"
	"github.com/abhisek/plantcheck/internal/scoring"
)

// Submission holds one scored evaluation. The headline columns are
// denormalized from the result so history queries can filter without
// decoding JSON.
type Submission struct {
	ent.Schema
}

func (Submission) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("UUID of the submission"),
		field.String("kind").
			NotEmpty().
			Comment("personnel, equipment or operation"),
		field.String("role").
			Comment("Role the questionnaire was answered for"),
		field.Int("overall_score").
			Comment("Weighted score, 0-100"),
		field.Bool("passed").
			Comment("Binary verdict; false for operation evaluations"),
		field.String("status").
			Comment("Four-tier label for operation evaluations, empty otherwise"),
		field.JSON("result", scoring.EvaluationResult{}).
			Comment("Full scoring result"),
		field.JSON("answers", []questionbank.AnswerEntry{}).
			Optional().
			Comment("Answers the result was computed from"),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "sequence"),
	}
}
