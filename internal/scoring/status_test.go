package scoring

import "testing"

func TestStatusFor(t *testing.T) {
	tests := []struct {
		score int
		want  StatusLabel
	}{
		{0, StatusDeficient},
		{39, StatusDeficient},
		{40, StatusRegular},
		{59, StatusRegular},
		{60, StatusGood},
		{70, StatusGood},
		{79, StatusGood},
		{80, StatusExcellent},
		{85, StatusExcellent},
		{100, StatusExcellent},
	}

	for _, tt := range tests {
		got := StatusFor(tt.score)
		if got != tt.want {
			t.Errorf("StatusFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestStatusLabel_DisplayName(t *testing.T) {
	tests := []struct {
		label StatusLabel
		want  string
	}{
		{StatusExcellent, "Excellent"},
		{StatusGood, "Good"},
		{StatusRegular, "Regular"},
		{StatusDeficient, "Deficient"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		got := tt.label.DisplayName()
		if got != tt.want {
			t.Errorf("StatusLabel(%q).DisplayName() = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestAllStatusLabels(t *testing.T) {
	labels := AllStatusLabels()
	if len(labels) != 4 {
		t.Errorf("expected 4 labels, got %d", len(labels))
	}
	if labels[0] != StatusExcellent || labels[3] != StatusDeficient {
		t.Errorf("unexpected order: %v", labels)
	}
}

// Operation evaluations are judged by their label alone; the pass threshold
// does not apply to them.
func TestStatusIndependentOfPassThreshold(t *testing.T) {
	eval := newEval(KindOperation, section("Planta", 100, openQ("q1"), openQ("q2"), openQ("q3")))
	answers := AnswerMap{}
	answerAll(answers, 0, AnswerYes, AnswerYes, AnswerNo)

	res := New(DefaultConfig()).ScoreEvaluation(eval, answers)
	if res.OverallScore != 67 {
		t.Fatalf("overall = %d, want 67", res.OverallScore)
	}
	if res.Status != StatusGood {
		t.Errorf("status = %q, want BUENO", res.Status)
	}
	if res.Passed {
		t.Error("operation results never set Passed")
	}

	// Raising or lowering the threshold leaves the label untouched.
	low := New(Config{PassThreshold: 50}).ScoreEvaluation(eval, answers)
	if low.Status != StatusGood || low.Passed {
		t.Errorf("threshold 50: status = %q passed = %v", low.Status, low.Passed)
	}
}
