package scoring

// StatusLabel is the four-tier rating used for plant operation evaluations
// instead of a pass/fail verdict.
type StatusLabel string

const (
	StatusExcellent StatusLabel = "EXCELENTE"
	StatusGood      StatusLabel = "BUENO"
	StatusRegular   StatusLabel = "REGULAR"
	StatusDeficient StatusLabel = "DEFICIENTE"
)

// AllStatusLabels returns all labels from highest to lowest.
func AllStatusLabels() []StatusLabel {
	return []StatusLabel{StatusExcellent, StatusGood, StatusRegular, StatusDeficient}
}

// StatusFor returns the label for an overall score.
func StatusFor(score int) StatusLabel {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusRegular
	default:
		return StatusDeficient
	}
}

// DisplayName returns a human-readable label.
func (s StatusLabel) DisplayName() string {
	switch s {
	case StatusExcellent:
		return "Excellent"
	case StatusGood:
		return "Good"
	case StatusRegular:
		return "Regular"
	case StatusDeficient:
		return "Deficient"
	default:
		return string(s)
	}
}
