// Package report renders scored submissions for the terminal and as the
// JSON payload consumed by the reporting backend.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/plantcheck/internal/scoring"
	"github.com/abhisek/plantcheck/internal/store"
)

const (
	nameWidth   = 28
	scoreWidth  = 9
	countWidth  = 9
	weightWidth = 8
)

// Options tunes the text report.
type Options struct {
	PassThreshold    int
	TrapFailureLimit int
}

// Text renders sub as a human-readable summary.
func Text(sub *store.Submission, opts Options) string {
	res := sub.Result
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s evaluation · %s", sub.Kind.DisplayName(), sub.Role)))
	b.WriteString("\n")
	if sub.ID != "" {
		b.WriteString(field("ID", sub.ID))
	}
	if !sub.CreatedAt.IsZero() {
		b.WriteString(field("Date", sub.CreatedAt.Local().Format("2006-01-02 15:04")))
	}

	b.WriteString(field("Overall", fmt.Sprintf("%d%%  %s", res.OverallScore, verdict(&res, opts))))

	traps := fmt.Sprintf("%d wrong", res.TotalWrongTraps)
	if opts.TrapFailureLimit > 0 {
		traps += fmt.Sprintf(" (limit %d)", opts.TrapFailureLimit)
	}
	if res.TrapPenaltyTriggered {
		traps = failStyle.Render(traps + " · penalty applied")
	}
	b.WriteString(field("Traps", traps))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(
		pad("Section", nameWidth) + pad("Score", scoreWidth) + pad("Correct", countWidth) + pad("Weight", weightWidth) + "Traps"))
	b.WriteString("\n")
	for _, s := range res.SectionScores {
		b.WriteString(pad(s.Name, nameWidth))
		b.WriteString(pad(fmt.Sprintf("%.1f%%", s.Percentage), scoreWidth))
		b.WriteString(pad(fmt.Sprintf("%d/%d", s.CorrectCount, s.TotalCount), countWidth))
		b.WriteString(pad(formatWeight(s.Weight), weightWidth))
		b.WriteString(fmt.Sprintf("%d", s.WrongTraps))
		if s.NotApplicable > 0 {
			b.WriteString(labelStyle.Render(fmt.Sprintf("  (%d n/a)", s.NotApplicable)))
		}
		b.WriteString("\n")
	}

	if len(res.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d answer(s) ignored:", len(res.Skipped))))
		b.WriteString("\n")
		for _, sk := range res.Skipped {
			b.WriteString(fmt.Sprintf("  %s = %q (%s)\n", sk.Key, sk.Answer, sk.Reason))
		}
	}
	return b.String()
}

// Line renders sub as a single history row.
func Line(sub *store.Submission) string {
	res := sub.Result
	v := "FAIL"
	style := failStyle
	if res.Passed {
		v, style = "PASS", passStyle
	}
	if res.Status != "" {
		v, style = string(res.Status), statusStyle(string(res.Status))
	}
	return fmt.Sprintf("%s  %s  %-10s %-16s %3d%%  %s",
		labelStyle.Render(sub.CreatedAt.Local().Format("2006-01-02 15:04")),
		sub.ID,
		sub.Kind,
		sub.Role,
		res.OverallScore,
		style.Render(v),
	)
}

// JSON writes sub as indented JSON.
func JSON(w io.Writer, sub *store.Submission) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sub); err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	return nil
}

// verdict is the status label for operation results and PASSED or FAILED
// for the rest.
func verdict(res *scoring.EvaluationResult, opts Options) string {
	if res.Status != "" {
		return statusStyle(string(res.Status)).Render(string(res.Status))
	}
	if res.Passed {
		return passStyle.Render("PASSED")
	}
	reason := "below threshold"
	if opts.PassThreshold > 0 {
		reason = fmt.Sprintf("below %d%%", opts.PassThreshold)
	}
	if res.TrapPenaltyTriggered {
		reason = "trap penalty"
	}
	return failStyle.Render("FAILED") + labelStyle.Render(" ("+reason+")")
}

func field(label, value string) string {
	return labelStyle.Render(pad(label, 10)) + value + "\n"
}

// pad right-pads s to width display cells, truncating when too long.
func pad(s string, width int) string {
	if lipgloss.Width(s) >= width {
		r := []rune(s)
		for len(r) > 0 && lipgloss.Width(string(r)) >= width {
			r = r[:len(r)-1]
		}
		s = string(r)
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

func formatWeight(w float64) string {
	if w == float64(int64(w)) {
		return fmt.Sprintf("%d", int64(w))
	}
	return fmt.Sprintf("%.1f", w)
}
