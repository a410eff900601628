package scoring

import "fmt"

// Defaults used for the personnel and equipment questionnaires.
const (
	DefaultPassThreshold    = 70
	DefaultTrapFailureLimit = 2
)

// NotApplicablePolicy controls how a not-applicable answer to an open
// question is scored.
type NotApplicablePolicy string

const (
	// NAExclude drops the question from both numerator and denominator.
	NAExclude NotApplicablePolicy = "exclude"
	// NACorrect counts the answer as correct, same as yes.
	NACorrect NotApplicablePolicy = "correct"
)

// Weighting selects how section percentages combine into the overall score.
type Weighting string

const (
	// WeightAuto uses declared weights when every section declares one,
	// otherwise falls back to question counts.
	WeightAuto          Weighting = "auto"
	WeightDeclared      Weighting = "declared"
	WeightQuestionCount Weighting = "question-count"
)

// Config holds scoring policy. It is immutable once passed to New.
type Config struct {
	PassThreshold    int
	TrapFailureLimit int
	Weighting        Weighting
	NotApplicable    map[EvaluationKind]NotApplicablePolicy
}

// DefaultConfig returns the policy used in the field questionnaires.
func DefaultConfig() Config {
	return Config{
		PassThreshold:    DefaultPassThreshold,
		TrapFailureLimit: DefaultTrapFailureLimit,
		Weighting:        WeightAuto,
		NotApplicable: map[EvaluationKind]NotApplicablePolicy{
			KindPersonnel: NAExclude,
			KindEquipment: NACorrect,
			KindOperation: NACorrect,
		},
	}
}

// NotApplicableFor returns the policy for kind. Unlisted kinds exclude.
func (c Config) NotApplicableFor(kind EvaluationKind) NotApplicablePolicy {
	if p, ok := c.NotApplicable[kind]; ok {
		return p
	}
	return NAExclude
}

// Validate checks the config for values the engine cannot honor. A pass
// threshold of 0 is rejected because New reads a zero field as "use the
// default".
func (c Config) Validate() error {
	if c.PassThreshold < 1 || c.PassThreshold > 100 {
		return fmt.Errorf("pass threshold %d out of range 1-100", c.PassThreshold)
	}
	if c.TrapFailureLimit < 1 {
		return fmt.Errorf("trap failure limit must be at least 1, got %d", c.TrapFailureLimit)
	}
	switch c.Weighting {
	case WeightAuto, WeightDeclared, WeightQuestionCount:
	default:
		return fmt.Errorf("unknown weighting %q", c.Weighting)
	}
	for kind, p := range c.NotApplicable {
		if p != NAExclude && p != NACorrect {
			return fmt.Errorf("unknown not-applicable policy %q for %s", p, kind)
		}
	}
	return nil
}
