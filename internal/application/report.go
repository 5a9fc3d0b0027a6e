package application

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ahrav/go-revsent/internal/domain"
)

// Report is the result of one run. Which sections are populated depends
// on Mode.
type Report struct {
	RunID string `json:"run_id"`
	Mode  string `json:"mode"`
	Input string `json:"input,omitempty"`

	// Compare mode.
	Groups      []GroupSummary     `json:"groups,omitempty"`
	Comparison  *domain.Preference `json:"comparison,omitempty"`
	SkippedRows int                `json:"skipped_rows,omitempty"`

	// Lines mode.
	Reviews []LineScore   `json:"reviews,omitempty"`
	Summary *LinesSummary `json:"summary,omitempty"`

	// File mode.
	Document *DocumentSummary `json:"document,omitempty"`

	// Template mode.
	Generated string `json:"generated,omitempty"`
}

// GroupSummary is one group's aggregate in a comparison.
type GroupSummary struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
	// Average is nil when the group has no reviews.
	Average *float64 `json:"average,omitempty"`
}

// LineScore is the score of one review in lines mode. Index is 1-based
// and counts non-blank lines only.
type LineScore struct {
	Index int `json:"index"`
	domain.DocumentScore
}

// LinesSummary aggregates all reviews of a lines-mode run.
type LinesSummary struct {
	Count   int      `json:"count"`
	Total   float64  `json:"total"`
	Average *float64 `json:"average,omitempty"`
	// StdDev is the sample standard deviation of the review scores and is
	// nil for fewer than two reviews.
	StdDev *float64 `json:"std_dev,omitempty"`
}

// DocumentSummary is the file-mode result.
type DocumentSummary struct {
	domain.DocumentScore
	Stars int `json:"stars"`
}

const (
	resultsBanner   = "===== Sentiment Analysis Results ====="
	resultSeparator = "--------------------------------------"
)

// RenderText writes report in the console format.
func RenderText(w io.Writer, report *Report) error {
	var b strings.Builder

	switch report.Mode {
	case ModeCompare:
		b.WriteString(resultsBanner + "\n")
		for _, g := range report.Groups {
			if g.Average == nil {
				fmt.Fprintf(&b, "No %s reviews found.\n", g.Name)
				continue
			}
			fmt.Fprintf(&b, "%s: %d reviews, Avg sentiment = %s\n", g.Name, g.Count, FormatScore(*g.Average))
		}
		if line := verdictLine(report); line != "" {
			b.WriteString(resultSeparator + "\n")
			b.WriteString(line + "\n")
		}

	case ModeLines:
		for _, r := range report.Reviews {
			fmt.Fprintf(&b, "Review %d sentiment: %s\n", r.Index, FormatScore(r.Total))
		}
		if s := report.Summary; s != nil && s.Average != nil {
			fmt.Fprintf(&b, "Average sentiment for %d reviews: %s\n", s.Count, FormatScore(*s.Average))
		} else {
			b.WriteString("No reviews to process.\n")
		}

	case ModeFile:
		if d := report.Document; d != nil {
			fmt.Fprintf(&b, "Total sentiment: %s\n", FormatScore(d.Total))
			fmt.Fprintf(&b, "Star rating: %d\n", d.Stars)
		}

	case ModeTemplate:
		b.WriteString(report.Generated + "\n")

	default:
		return fmt.Errorf("cannot render report for mode %q", report.Mode)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// verdictLine returns the comparison sentence, or "" when the comparison
// was inconclusive.
func verdictLine(report *Report) string {
	if report.Comparison == nil || len(report.Groups) < 2 {
		return ""
	}
	switch *report.Comparison {
	case domain.PreferFirst:
		return fmt.Sprintf("People seem to prefer %s!", report.Groups[0].Name)
	case domain.PreferSecond:
		return fmt.Sprintf("People seem to prefer %s!", report.Groups[1].Name)
	case domain.EquallyLiked:
		return "Both are about equally liked."
	default:
		return ""
	}
}

// RenderJSON writes report as indented JSON.
func RenderJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// Render writes report in the given format.
func Render(w io.Writer, format string, report *Report) error {
	switch format {
	case FormatJSON:
		return RenderJSON(w, report)
	case FormatText, "":
		return RenderText(w, report)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// FormatScore formats v for console output: the shortest decimal that
// round-trips, with at least one fractional digit ("2.0", "-0.25"). Values
// outside [1e-3, 1e7) use scientific notation ("1.0E-4", "1.5E7").
func FormatScore(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	if abs := math.Abs(v); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mant, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if neg {
		exp = "-" + exp
	}
	return mant + "E" + exp
}

// summarizeGroup converts a named aggregate into its report form.
func summarizeGroup(name string, g domain.GroupAggregate) GroupSummary {
	return GroupSummary{Name: name, Count: g.Count, Total: g.Total, Average: averagePtr(g)}
}

// averagePtr returns the aggregate's average, or nil when it has no data.
func averagePtr(g domain.GroupAggregate) *float64 {
	avg, ok := g.Average()
	if !ok {
		return nil
	}
	return &avg
}
