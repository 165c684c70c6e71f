// Package report formats scoring results for humans. It is a read-only
// consumer of the result types; nothing here feeds back into scoring.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

var (
	headline = color.New(color.Bold, color.FgCyan)
	good     = color.New(color.FgGreen)
	warn     = color.New(color.FgYellow)
	bad      = color.New(color.FgRed)
	faint    = color.New(color.Faint)
)

func severityColor(s types.Severity) *color.Color {
	switch s {
	case types.SeverityCritical, types.SeverityHigh:
		return bad
	case types.SeverityMedium:
		return warn
	default:
		return faint
	}
}

func priorityColor(p types.Priority) *color.Color {
	switch p {
	case types.PriorityCritical:
		return bad
	case types.PriorityHigh:
		return warn
	default:
		return faint
	}
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 75:
		return good
	case score >= 50:
		return warn
	default:
		return bad
	}
}

// RenderText writes a terminal report for a questionnaire evaluation
func RenderText(w io.Writer, result *model.Result) {
	headline.Fprintln(w, "Amendment 13 Compliance Assessment")
	faint.Fprintln(w, "Heuristic estimate only; not a legal determination")
	fmt.Fprintln(w)

	scoreColor(result.Score).Fprintf(w, "Compliance score: %d/100\n", result.Score)
	fmt.Fprintf(w, "Risk level: %s (%s)\n", result.Classification.Label, result.Classification.ActionWindow)
	fmt.Fprintf(w, "Questions answered: %d of %d\n", result.AnsweredCount, result.QuestionCount)
	fmt.Fprintln(w)

	if len(result.Violations) > 0 {
		headline.Fprintln(w, "Violations")
		for _, v := range result.Violations {
			severityColor(v.Severity).Fprintf(w, "  [%s] %s\n", v.Severity, v.Description)
			fmt.Fprintf(w, "      Estimated fine: ₪%s\n", formatAmount(v.Fine))
			faint.Fprintf(w, "      %s\n", v.Citation)
		}
		bad.Fprintf(w, "  Total fine exposure: ₪%s\n", formatAmount(result.TotalFine))
		fmt.Fprintln(w)
	}

	headline.Fprintln(w, "Compliance matrix")
	for _, entry := range result.Matrix {
		mark, c := "✗", bad
		if entry.Compliant {
			mark, c = "✓", good
		}
		c.Fprintf(w, "  %s %-14s %s\n", mark, entry.Category, entry.Status)
	}
	fmt.Fprintln(w)

	if len(result.Recommendations) > 0 {
		headline.Fprintln(w, "Recommendations")
		for _, rec := range result.Recommendations {
			priorityColor(rec.Priority).Fprintf(w, "  [%s] %s\n", rec.Priority, rec.Action)
			faint.Fprintf(w, "      Timeline: %s\n", rec.Timeline)
		}
	}
}

// RenderScanText writes a terminal report for a website scan
func RenderScanText(w io.Writer, result *model.WebScanResult) {
	headline.Fprintf(w, "Website scan: %s\n", result.URL)
	faint.Fprintln(w, "Heuristic estimate only; not a legal determination")
	fmt.Fprintln(w)

	if result.Failed {
		bad.Fprintf(w, "Scan failed: %s\n", result.Error)
		return
	}

	scoreColor(result.Score).Fprintf(w, "Compliance score: %d/100\n", result.Score)
	fmt.Fprintln(w)

	headline.Fprintln(w, "Checks")
	for _, check := range result.Checks {
		var c *color.Color
		switch check.Status {
		case types.CheckStatusCompliant:
			c = good
		case types.CheckStatusPartial:
			c = warn
		default:
			c = bad
		}
		c.Fprintf(w, "  %-24s %-14s", check.Name, check.Status)
		faint.Fprintf(w, " %s\n", check.Detail)
	}
	fmt.Fprintln(w)

	if len(result.Violations) > 0 {
		headline.Fprintln(w, "Potential violations")
		for _, v := range result.Violations {
			severityColor(v.Severity).Fprintf(w, "  [%s] %s\n", v.Severity, v.Description)
			fmt.Fprintf(w, "      Estimated fine range: ₪%s - ₪%s\n", formatAmount(v.FineMin), formatAmount(v.FineMax))
			faint.Fprintf(w, "      %s\n", v.Citation)
		}
		fmt.Fprintln(w)
	}

	if len(result.Recommendations) > 0 {
		headline.Fprintln(w, "Recommendations")
		for _, rec := range result.Recommendations {
			priorityColor(rec.Priority).Fprintf(w, "  [%s] %s\n", rec.Priority, rec.Action)
		}
	}
}

// formatAmount renders an integer amount with thousands separators
func formatAmount(v int64) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
