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
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-revsent/internal/domain"
	"github.com/ahrav/go-revsent/internal/ports"
)

// Resources holds the static word data every scoring operation reads.
// It is built once by Loader.Load and never mutated afterwards.
type Resources struct {
	Lexicon    *domain.Lexicon
	Adjectives domain.AdjectiveLists
}

// LoadLexicon parses "word,score" lines from r. Fields after the score are
// ignored and blank lines are skipped. Words are stored lowercased.
//
// The first line without a score field, or whose score does not parse as a
// number, stops the load: the entries read before it are returned together
// with a *ports.ResourceError wrapping ports.ErrMalformedRecord.
func LoadLexicon(name string, r io.Reader) (*domain.Lexicon, error) {
	b := domain.NewLexiconBuilder()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		word, rest, ok := strings.Cut(text, ",")
		if !ok {
			return b.Build(), ports.NewResourceError(name, line,
				fmt.Errorf("%w: no score field", ports.ErrMalformedRecord))
		}
		raw, _, _ := strings.Cut(rest, ",")
		score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return b.Build(), ports.NewResourceError(name, line,
				fmt.Errorf("%w: score %q: %v", ports.ErrMalformedRecord, raw, err))
		}
		b.Add(strings.TrimSpace(word), score)
	}
	if err := scanner.Err(); err != nil {
		return b.Build(), ports.NewResourceError(name, line+1, err)
	}

	return b.Build(), nil
}

// LoadAdjectives reads one adjective per line from r, trimming surrounding
// whitespace. Order is preserved. Lines that are empty after trimming are
// kept as empty entries.
func LoadAdjectives(name string, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return words, ports.NewResourceError(name, len(words)+1, err)
	}
	return words, nil
}

// Loader builds Resources from the files named in a ResourcesConfig.
type Loader struct {
	logger  *slog.Logger
	metrics ports.MetricsCollector
}

// NewLoader creates a Loader. A nil logger discards diagnostics and a nil
// metrics collector disables metric recording.
func NewLoader(logger *slog.Logger, metrics ports.MetricsCollector) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger, metrics: metrics}
}

// Load reads the lexicon and both adjective lists. It never fails: a
// source that cannot be opened or parsed is reported through the logger
// and leaves an empty or partial structure in its place.
func (l *Loader) Load(ctx context.Context, cfg ResourcesConfig) *Resources {
	tracer := otel.Tracer("resource-loader")
	ctx, span := tracer.Start(ctx, "Loader.Load")
	defer span.End()

	start := time.Now()
	res := &Resources{}

	lex, err := loadFile(ctx, cfg.LexiconPath, LoadLexicon)
	l.report(ctx, span, cfg.LexiconPath, lex.Len(), err)
	if lex == nil {
		lex = domain.NewLexicon(nil)
	}
	res.Lexicon = lex

	pos, err := loadFile(ctx, cfg.PositiveAdjectivesPath, LoadAdjectives)
	l.report(ctx, span, cfg.PositiveAdjectivesPath, len(pos), err)
	res.Adjectives.Positive = pos

	neg, err := loadFile(ctx, cfg.NegativeAdjectivesPath, LoadAdjectives)
	l.report(ctx, span, cfg.NegativeAdjectivesPath, len(neg), err)
	res.Adjectives.Negative = neg

	if l.metrics != nil {
		l.metrics.RecordLatency("load_resources", time.Since(start), nil)
	}
	span.SetAttributes(
		attribute.Int("lexicon.entries", res.Lexicon.Len()),
		attribute.Int("adjectives.positive", len(pos)),
		attribute.Int("adjectives.negative", len(neg)),
	)
	return res
}

// report logs and records the outcome of loading one resource.
func (l *Loader) report(ctx context.Context, span trace.Span, resource string, entries int, err error) {
	if l.metrics != nil {
		l.metrics.RecordGauge(ports.MetricResourceEntries, float64(entries),
			map[string]string{"resource": resource})
	}
	if err == nil {
		l.logger.DebugContext(ctx, "resource loaded", "resource", resource, "entries", entries)
		return
	}

	span.AddEvent("resource.failed", trace.WithAttributes(
		attribute.String("resource", resource),
		attribute.String("error", err.Error()),
	))
	span.SetStatus(codes.Error, "resource load incomplete")
	if l.metrics != nil {
		l.metrics.RecordCounter(ports.MetricResourceFailures, 1,
			map[string]string{"resource": resource})
	}

	if errors.Is(err, ports.ErrResourceNotFound) {
		l.logger.ErrorContext(ctx, "unable to open resource", "resource", resource, "error", err)
		return
	}
	l.logger.WarnContext(ctx, "error reading or parsing resource, continuing with partial data",
		"resource", resource, "entries", entries, "error", err)
}

// loadFile opens path and hands it to parse, closing the file on every
// path. A missing or unreadable file becomes a ResourceError wrapping
// ports.ErrResourceNotFound, and parse receives nothing.
func loadFile[T any](ctx context.Context, path string, parse func(string, io.Reader) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, ports.NewResourceError(path, 0, err)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		cause := ports.ErrResourceNotFound
		if !errors.Is(err, fs.ErrNotExist) {
			cause = fmt.Errorf("%w: %v", ports.ErrResourceNotFound, err)
		}
		return zero, ports.NewResourceError(path, 0, cause)
	}
	defer f.Close()

	return parse(path, f)
}
