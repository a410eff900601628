// Package scoring turns questionnaire answers into section percentages, an
// overall weighted score and a verdict. Everything here is pure: no I/O, no
// logging, no shared state beyond the immutable Config.
package scoring

import "math"

// Mode selects the denominator used for a section percentage.
type Mode int

const (
	// Final divides by every scored question in the section.
	Final Mode = iota
	// Live divides by the scored questions answered so far.
	Live
)

// Engine scores evaluations under a fixed policy.
type Engine struct {
	cfg Config
}

// New creates an Engine. Zero-valued fields of cfg fall back to defaults.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.PassThreshold == 0 {
		cfg.PassThreshold = def.PassThreshold
	}
	if cfg.TrapFailureLimit == 0 {
		cfg.TrapFailureLimit = def.TrapFailureLimit
	}
	if cfg.Weighting == "" {
		cfg.Weighting = def.Weighting
	}
	if cfg.NotApplicable == nil {
		cfg.NotApplicable = def.NotApplicable
	}
	return &Engine{cfg: cfg}
}

// Config returns the effective policy.
func (e *Engine) Config() Config {
	return e.cfg
}

// ScoreSection computes the normal score of eval.Sections[index].
// Trap questions are ignored here; see ScoreTrapQuestions. An index outside
// eval.Sections yields the zero SectionScore.
func (e *Engine) ScoreSection(eval *Evaluation, index int, answers AnswerMap, mode Mode) SectionScore {
	if index < 0 || index >= len(eval.Sections) {
		return SectionScore{}
	}
	sec := eval.Sections[index]
	naPolicy := e.cfg.NotApplicableFor(eval.Kind)

	score := SectionScore{Name: sec.Name, Weight: sec.Weight}
	answered := 0
	scored := 0

	for qi, q := range sec.Questions {
		if q.IsTrap {
			continue
		}
		scored++

		a, ok := lookup(eval, answers, index, qi)
		if !ok {
			continue
		}
		answered++

		switch q.Kind {
		case QuestionOpen:
			switch a {
			case AnswerYes:
				score.CorrectCount++
			case AnswerNotApplicable:
				score.NotApplicable++
				if naPolicy == NACorrect {
					score.CorrectCount++
				}
			}
		case QuestionMultipleChoice:
			if a == q.Correct {
				score.CorrectCount++
			}
		}
	}

	excluded := 0
	if naPolicy == NAExclude {
		excluded = score.NotApplicable
	}

	if mode == Live {
		score.TotalCount = answered - excluded
	} else {
		score.TotalCount = scored - excluded
	}

	if score.TotalCount > 0 {
		score.Percentage = float64(score.CorrectCount) / float64(score.TotalCount) * 100
	}
	return score
}

// ScoreTrapQuestions counts the trap questions of eval.Sections[index]
// answered incorrectly. Unanswered traps do not count, and an index outside
// eval.Sections yields 0.
func (e *Engine) ScoreTrapQuestions(eval *Evaluation, index int, answers AnswerMap) int {
	if index < 0 || index >= len(eval.Sections) {
		return 0
	}
	wrong := 0
	for qi, q := range eval.Sections[index].Questions {
		if !q.IsTrap {
			continue
		}
		a, ok := lookup(eval, answers, index, qi)
		if !ok {
			continue
		}
		switch q.Kind {
		case QuestionOpen:
			if a == AnswerNo {
				wrong++
			}
		case QuestionMultipleChoice:
			if a != q.Correct {
				wrong++
			}
		}
	}
	return wrong
}

// ScoreEvaluation scores every section in Final mode and derives the
// overall score and verdict. Calling it twice with the same inputs yields
// identical results.
//
// A section with nothing scorable (TotalCount 0, for example every answer
// not applicable under the exclude policy) carries no weight. For operation
// evaluations Status is the verdict and Passed stays false.
func (e *Engine) ScoreEvaluation(eval *Evaluation, answers AnswerMap) *EvaluationResult {
	res := &EvaluationResult{
		Kind:          eval.Kind,
		SectionScores: make([]SectionScore, 0, len(eval.Sections)),
		Skipped:       Validate(eval, answers),
	}

	declared := e.useDeclaredWeights(eval)

	var weighted, totalWeight float64
	for i := range eval.Sections {
		s := e.ScoreSection(eval, i, answers, Final)
		s.WrongTraps = e.ScoreTrapQuestions(eval, i, answers)

		switch {
		case s.TotalCount == 0:
			s.Weight = 0
		case declared:
			s.Weight = math.Max(eval.Sections[i].Weight, 0)
		default:
			s.Weight = float64(s.TotalCount)
		}

		weighted += s.Percentage * s.Weight
		totalWeight += s.Weight
		res.TotalWrongTraps += s.WrongTraps
		res.SectionScores = append(res.SectionScores, s)
	}

	if totalWeight > 0 {
		res.OverallScore = clampPercent(int(math.Round(weighted / totalWeight)))
	}

	res.TrapPenaltyTriggered = res.TotalWrongTraps >= e.cfg.TrapFailureLimit

	if eval.Kind == KindOperation {
		res.Status = StatusFor(res.OverallScore)
		return res
	}
	res.Passed = !res.TrapPenaltyTriggered && res.OverallScore >= e.cfg.PassThreshold
	return res
}

// Progress reports how many questions of eval have a valid answer.
func Progress(eval *Evaluation, answers AnswerMap) (answered, total int) {
	for si, sec := range eval.Sections {
		for qi := range sec.Questions {
			total++
			if _, ok := lookup(eval, answers, si, qi); ok {
				answered++
			}
		}
	}
	return answered, total
}

func (e *Engine) useDeclaredWeights(eval *Evaluation) bool {
	switch e.cfg.Weighting {
	case WeightDeclared:
		return true
	case WeightQuestionCount:
		return false
	}
	if len(eval.Sections) == 0 {
		return false
	}
	for _, s := range eval.Sections {
		if !s.HasWeight {
			return false
		}
	}
	return true
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
