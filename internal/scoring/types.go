package scoring

// EvaluationKind identifies which inspection questionnaire is being scored.
type EvaluationKind string

const (
	KindPersonnel EvaluationKind = "personnel"
	KindEquipment EvaluationKind = "equipment"
	KindOperation EvaluationKind = "operation"
)

// AllKinds returns all evaluation kinds in display order.
func AllKinds() []EvaluationKind {
	return []EvaluationKind{KindPersonnel, KindEquipment, KindOperation}
}

// DisplayName returns a human-readable label for the kind.
func (k EvaluationKind) DisplayName() string {
	switch k {
	case KindPersonnel:
		return "Personnel"
	case KindEquipment:
		return "Equipment"
	case KindOperation:
		return "Plant operation"
	default:
		return string(k)
	}
}

// Valid reports whether k is a known kind.
func (k EvaluationKind) Valid() bool {
	switch k {
	case KindPersonnel, KindEquipment, KindOperation:
		return true
	}
	return false
}

// QuestionKind determines the accepted answers for a question.
type QuestionKind string

const (
	QuestionOpen           QuestionKind = "open"
	QuestionMultipleChoice QuestionKind = "multiple-choice"
)

// Question is a single prompt within a section.
type Question struct {
	ID      string
	Text    string
	Kind    QuestionKind
	IsTrap  bool
	Options [3]string // option text for a, b, c (multiple-choice only)
	Correct Answer    // designated option (multiple-choice only)
}

// Accepts reports whether a is a legal answer for the question's kind.
func (q Question) Accepts(a Answer) bool {
	switch q.Kind {
	case QuestionOpen:
		return a == AnswerYes || a == AnswerNo || a == AnswerNotApplicable
	case QuestionMultipleChoice:
		return a == AnswerA || a == AnswerB || a == AnswerC
	}
	return false
}

// Section is a weighted group of questions.
type Section struct {
	ID        string
	Name      string
	Weight    float64
	HasWeight bool
	Questions []Question
}

// ScoredQuestions returns the number of non-trap questions.
func (s Section) ScoredQuestions() int {
	n := 0
	for _, q := range s.Questions {
		if !q.IsTrap {
			n++
		}
	}
	return n
}

// Evaluation is an immutable section/question tree for one role.
type Evaluation struct {
	Kind     EvaluationKind
	Role     string
	Sections []Section
}

// SectionScore is the normal (non-trap) score of one section.
type SectionScore struct {
	Name          string  `json:"name"`
	Percentage    float64 `json:"percentage"`
	CorrectCount  int     `json:"correct_count"`
	TotalCount    int     `json:"total_count"`
	Weight        float64 `json:"weight"`
	WrongTraps    int     `json:"wrong_traps"`
	NotApplicable int     `json:"not_applicable"`
}

// EvaluationResult is produced once per completed evaluation. Passed is the
// verdict for personnel and equipment; operation results leave it false and
// carry Status instead.
type EvaluationResult struct {
	Kind                 EvaluationKind  `json:"kind"`
	OverallScore         int             `json:"overall_score"`
	SectionScores        []SectionScore  `json:"section_scores"`
	TotalWrongTraps      int             `json:"total_wrong_traps"`
	TrapPenaltyTriggered bool            `json:"trap_penalty_triggered"`
	Passed               bool            `json:"passed"`
	Status               StatusLabel     `json:"status,omitempty"`
	Skipped              []SkippedAnswer `json:"skipped,omitempty"`
}
