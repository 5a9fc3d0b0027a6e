package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/stat"

	"github.com/ahrav/go-revsent/internal/domain"
	"github.com/ahrav/go-revsent/internal/ports"
)

// Column positions in the review CSV.
const (
	groupColumn  = 0
	reviewColumn = 3
	minColumns   = 4
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Analyzer runs the batch scoring modes against a fixed set of Resources.
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	res     *Resources
	logger  *slog.Logger
	metrics ports.MetricsCollector
	tracer  trace.Tracer
}

// NewAnalyzer creates an Analyzer. A nil logger discards diagnostics and a
// nil metrics collector disables metric recording.
func NewAnalyzer(res *Resources, logger *slog.Logger, metrics ports.MetricsCollector) *Analyzer {
	if res == nil {
		res = &Resources{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Analyzer{
		res:     res,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer("review-analyzer"),
	}
}

// Run opens cfg.InputPath and executes the mode cfg selects. gen is only
// used in template mode. A missing or unreadable input is returned as a
// *ports.ResourceError wrapping ports.ErrResourceNotFound.
func (a *Analyzer) Run(ctx context.Context, cfg RunConfig, gen ports.ReviewGenerator) (*Report, error) {
	f, err := os.Open(filepath.Clean(cfg.InputPath))
	if err != nil {
		cause := ports.ErrResourceNotFound
		if !errors.Is(err, fs.ErrNotExist) {
			cause = fmt.Errorf("%w: %v", ports.ErrResourceNotFound, err)
		}
		return nil, ports.NewResourceError(cfg.InputPath, 0, cause)
	}
	defer f.Close()

	start := time.Now()
	var report *Report
	switch cfg.Mode {
	case ModeCompare:
		report, err = a.CompareGroups(ctx, f, cfg.Groups.First, cfg.Groups.Second)
	case ModeLines:
		report, err = a.ScoreLines(ctx, f)
	case ModeFile:
		report, err = a.ScoreFile(ctx, f)
	case ModeTemplate:
		report, err = a.GenerateReview(ctx, f, gen, domain.Tone(cfg.Template.Tone))
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if a.metrics != nil {
		a.metrics.RecordLatency("run", time.Since(start), map[string]string{"mode": cfg.Mode})
	}
	if err != nil {
		return nil, fmt.Errorf("%s mode on %s: %w", cfg.Mode, cfg.InputPath, err)
	}

	report.Input = cfg.InputPath
	return report, nil
}

// CompareGroups scores the review CSV read from r and compares the average
// sentiment of two groups. The first line is a header and is discarded.
// Rows with fewer than four fields, and rows whose group matches neither
// name, are skipped.
func (a *Analyzer) CompareGroups(ctx context.Context, r io.Reader, first, second string) (*Report, error) {
	ctx, span := a.startSpan(ctx, "Analyzer.CompareGroups", ModeCompare)
	defer span.End()

	tally, err := domain.NewTally(first, second)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	names := tally.Names()

	scanner := newLineScanner(r)
	if !scanner.Scan() {
		err := scanner.Err()
		if err == nil {
			err = ports.ErrMissingHeader
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	line, rows, skipped := 1, 0, 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		rows++

		fields := SplitRecord(scanner.Text())
		if len(fields) < minColumns {
			skipped++
			a.countSkip("short_row")
			continue
		}

		raw := strings.TrimSpace(fields[groupColumn])
		group, ok := tally.Match(raw)
		if !ok {
			skipped++
			a.countSkip("unknown_group")
			if a.logger.Enabled(ctx, slog.LevelDebug) {
				nearest, dist := nearestGroup(raw, names)
				a.logger.DebugContext(ctx, "row matches no group",
					"line", line, "group", raw, "nearest", nearest, "distance", dist)
			}
			continue
		}

		text := strings.TrimSpace(strings.ReplaceAll(fields[reviewColumn], `"`, ""))
		doc := domain.ScoreDocument(text, a.res.Lexicon)
		if err := tally.Accumulate(group, doc.Total); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		a.recordDocument(ModeCompare, group, doc)
	}
	if err := scanner.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("reading line %d: %w", line+1, err)
	}

	report := &Report{RunID: uuid.NewString(), Mode: ModeCompare, SkippedRows: skipped}
	firstAgg, _ := tally.Group(names[0])
	secondAgg, _ := tally.Group(names[1])
	for i, agg := range []domain.GroupAggregate{firstAgg, secondAgg} {
		report.Groups = append(report.Groups, summarizeGroup(names[i], agg))
		if avg, ok := agg.Average(); ok && a.metrics != nil {
			a.metrics.RecordGauge(ports.MetricGroupAverage, avg, map[string]string{"group": names[i]})
		}
	}
	verdict := domain.Compare(firstAgg, secondAgg)
	report.Comparison = &verdict

	span.SetAttributes(
		attribute.Int("rows", rows),
		attribute.Int("rows.skipped", skipped),
		attribute.String("verdict", verdict.String()),
	)
	span.SetStatus(codes.Ok, "comparison completed")
	a.logger.InfoContext(ctx, "groups compared",
		"run_id", report.RunID, "rows", rows, "skipped", skipped, "verdict", verdict.String())
	return report, nil
}

// ScoreLines scores every non-blank line read from r as its own review and
// summarizes them. Lines are trimmed before scoring.
func (a *Analyzer) ScoreLines(ctx context.Context, r io.Reader) (*Report, error) {
	ctx, span := a.startSpan(ctx, "Analyzer.ScoreLines", ModeLines)
	defer span.End()

	report := &Report{RunID: uuid.NewString(), Mode: ModeLines}
	var (
		agg    domain.GroupAggregate
		scores []float64
		line   int
	)

	scanner := newLineScanner(r)
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		doc := domain.ScoreDocument(text, a.res.Lexicon)
		agg.Accumulate(doc.Total)
		scores = append(scores, doc.Total)
		report.Reviews = append(report.Reviews, LineScore{Index: agg.Count, DocumentScore: doc})
		a.recordDocument(ModeLines, "", doc)
	}
	if err := scanner.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("reading line %d: %w", line+1, err)
	}

	summary := &LinesSummary{Count: agg.Count, Total: agg.Total, Average: averagePtr(agg)}
	if len(scores) >= 2 {
		sd := stat.StdDev(scores, nil)
		summary.StdDev = &sd
	}
	report.Summary = summary

	span.SetAttributes(attribute.Int("reviews", agg.Count))
	span.SetStatus(codes.Ok, "lines scored")
	a.logger.InfoContext(ctx, "lines scored", "run_id", report.RunID, "reviews", agg.Count)
	return report, nil
}

// ScoreFile scores everything read from r as a single review and maps its
// total onto a star rating.
func (a *Analyzer) ScoreFile(ctx context.Context, r io.Reader) (*Report, error) {
	ctx, span := a.startSpan(ctx, "Analyzer.ScoreFile", ModeFile)
	defer span.End()

	data, err := io.ReadAll(r)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	doc := domain.ScoreDocument(string(data), a.res.Lexicon)
	a.recordDocument(ModeFile, "", doc)

	report := &Report{
		RunID:    uuid.NewString(),
		Mode:     ModeFile,
		Document: &DocumentSummary{DocumentScore: doc, Stars: domain.StarRating(doc.Total)},
	}
	span.SetAttributes(
		attribute.Float64("sentiment.total", doc.Total),
		attribute.Int("stars", report.Document.Stars),
	)
	span.SetStatus(codes.Ok, "file scored")
	a.logger.InfoContext(ctx, "file scored", "run_id", report.RunID, "total", doc.Total, "stars", report.Document.Stars)
	return report, nil
}

// GenerateReview reads a review template from r and fills its adjective
// slots with gen.
func (a *Analyzer) GenerateReview(ctx context.Context, r io.Reader, gen ports.ReviewGenerator, tone domain.Tone) (*Report, error) {
	ctx, span := a.startSpan(ctx, "Analyzer.GenerateReview", ModeTemplate,
		attribute.String("tone", string(tone)))
	defer span.End()

	if gen == nil {
		err := errors.New("review generator is required in template mode")
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out, err := gen.Generate(string(data), tone)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to generate review: %w", err)
	}

	report := &Report{RunID: uuid.NewString(), Mode: ModeTemplate, Generated: out}
	span.SetStatus(codes.Ok, "review generated")
	a.logger.InfoContext(ctx, "review generated", "run_id", report.RunID, "tone", string(tone))
	return report, nil
}

// startSpan creates a new OpenTelemetry span with common attributes.
func (a *Analyzer) startSpan(ctx context.Context, name, mode string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := a.tracer.Start(ctx, name)
	span.SetAttributes(
		attribute.String("run.mode", mode),
		attribute.Int("lexicon.entries", a.res.Lexicon.Len()),
	)
	span.SetAttributes(attrs...)
	return ctx, span
}

func (a *Analyzer) recordDocument(mode, group string, doc domain.DocumentScore) {
	if a.metrics == nil {
		return
	}
	if group == "" {
		group = "all"
	}
	a.metrics.RecordCounter(ports.MetricDocumentsScored, 1, map[string]string{"mode": mode, "group": group})
	a.metrics.RecordCounter(ports.MetricTokensScored, float64(doc.Matched), map[string]string{"mode": mode, "outcome": "matched"})
	a.metrics.RecordCounter(ports.MetricTokensScored, float64(doc.Tokens-doc.Matched), map[string]string{"mode": mode, "outcome": "neutral"})
	a.metrics.RecordHistogram(ports.MetricDocumentSentiment, doc.Total, map[string]string{"mode": mode})
}

func (a *Analyzer) countSkip(reason string) {
	if a.metrics != nil {
		a.metrics.RecordCounter(ports.MetricRowsSkipped, 1, map[string]string{"reason": reason})
	}
}

// nearestGroup returns the configured name closest to raw by Levenshtein
// distance over lowercased text.
func nearestGroup(raw string, names []string) (string, int) {
	best, bestDist := "", -1
	lowered := strings.ToLower(raw)
	for _, name := range names {
		d := levenshtein.ComputeDistance(lowered, strings.ToLower(name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	return best, bestDist
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return s
}
