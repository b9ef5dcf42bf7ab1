// Package scan ties the pieces together: it hands an uploaded card image to
// an OCR engine, routes the transcription through the pedigree pipeline, and
// renders both output surfaces. One Scanner serves one host; each Scan call
// allocates its own buffers and shares no state with other calls.
package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShowTails/ShowTailsOCR/observability"
	"github.com/ShowTails/ShowTailsOCR/ocr"
	"github.com/ShowTails/ShowTailsOCR/pedigree"
	"github.com/ShowTails/ShowTailsOCR/report"
	"github.com/ShowTails/ShowTailsOCR/scripting"
)

// ErrNoImage reports that a scan was requested without an image. The
// pipeline does not start in this case.
var ErrNoImage = errors.New("no image supplied")

// Scanner runs the full card recognition pipeline.
type Scanner struct {
	engine    ocr.Engine
	logger    observability.Logger
	tracer    observability.Tracer
	rules     scripting.Engine
	languages []string
	dpi       int
	metadata  map[string]string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithEngine sets the OCR engine; the default engine registry is used
// otherwise.
func WithEngine(engine ocr.Engine) Option {
	return func(s *Scanner) { s.engine = engine }
}

// WithLogger sets the logger.
func WithLogger(logger observability.Logger) Option {
	return func(s *Scanner) { s.logger = logger }
}

// WithTracer sets the tracer.
func WithTracer(tracer observability.Tracer) Option {
	return func(s *Scanner) { s.tracer = tracer }
}

// WithRules attaches loaded cleanup rules that rewrite the transcription
// before the pipeline runs. A rule failure is logged and skipped, never
// fatal.
func WithRules(rules scripting.Engine) Option {
	return func(s *Scanner) { s.rules = rules }
}

// WithLanguages sets the OCR language hints.
func WithLanguages(langs ...string) Option {
	return func(s *Scanner) { s.languages = append([]string(nil), langs...) }
}

// WithDPI sets the assumed image DPI passed to the engine.
func WithDPI(dpi int) Option {
	return func(s *Scanner) { s.dpi = dpi }
}

// WithMetadata passes engine-specific knobs through to every scan.
func WithMetadata(metadata map[string]string) Option {
	return func(s *Scanner) {
		if len(metadata) == 0 {
			return
		}
		if s.metadata == nil {
			s.metadata = make(map[string]string, len(metadata))
		}
		for k, v := range metadata {
			s.metadata[k] = v
		}
	}
}

// New constructs a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		logger: observability.NopLogger{},
		tracer: observability.NopTracer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = ocr.DefaultEngine()
	}
	return s
}

// Request is one scan invocation.
type Request struct {
	// ID identifies the request in results and logs; optional.
	ID string
	// Image is the encoded card photo.
	Image []byte
	// Format declares the image content type.
	Format ocr.ImageFormat
	// Progress, when non-nil, receives OCR status events as they arrive.
	Progress ocr.ProgressFunc
}

// Outcome carries everything a host renders for one scan.
type Outcome struct {
	// RawText is the engine transcription before any cleanup.
	RawText string
	// CleanText is the normalized (and rule-rewritten) pipeline input.
	CleanText string
	// Records are the extracted animals in role order.
	Records []pedigree.Record
	// Report is the human-readable, markup-safe rendering.
	Report string
	// TSV is the tab-separated table with header row.
	TSV string
	// Confidence is the engine's mean word confidence, zero when unknown.
	Confidence float64
}

// Scan recognizes one card image and extracts its records. Only a missing
// image or an engine failure produce errors; every stage after OCR degrades
// to empty fields instead of failing.
func (s *Scanner) Scan(ctx context.Context, req Request) (Outcome, error) {
	if len(req.Image) == 0 {
		return Outcome{}, ErrNoImage
	}

	image, format := req.Image, req.Format
	if prepared, err := PrepareImage(req.Image); err != nil {
		// The engine may still accept what we could not decode.
		s.logger.Warn("image preparation skipped", observability.Error("err", err))
	} else {
		image, format = prepared, ocr.ImageFormatPNG
	}

	ctx, span := s.tracer.StartSpan(ctx, "scan.ocr")
	started := time.Now()
	result, err := s.engine.Recognize(ctx, ocr.Input{
		ID:        req.ID,
		Image:     image,
		Format:    format,
		DPI:       s.dpi,
		Languages: s.languages,
		Metadata:  s.metadata,
		Progress:  req.Progress,
	})
	if err != nil {
		span.SetError(err)
		span.Finish()
		return Outcome{}, fmt.Errorf("ocr %s: %w", s.engine.Name(), err)
	}
	span.Finish()
	s.logger.Debug("ocr complete",
		observability.String("engine", s.engine.Name()),
		observability.Int(observability.MetricOCRTime, int(time.Since(started).Milliseconds())),
		observability.Float64(observability.MetricConfidence, result.Confidence))

	text := result.PlainText
	if s.rules != nil {
		if rewritten, err := s.rules.Clean(ctx, text); err != nil {
			s.logger.Warn("cleanup rules skipped", observability.Error("err", err))
		} else {
			text = rewritten
		}
	}

	clean := pedigree.Normalize(text)
	records := make([]pedigree.Record, 0, 4)
	blocks := pedigree.Segment(clean)
	for _, b := range blocks {
		records = append(records, pedigree.Extract(b))
	}
	s.logger.Info("scan complete",
		observability.String("id", req.ID),
		observability.Int(observability.MetricBlockCount, len(blocks)),
		observability.Int(observability.MetricRecordCount, len(records)))

	return Outcome{
		RawText:    result.PlainText,
		CleanText:  clean,
		Records:    records,
		Report:     report.Readable(records),
		TSV:        report.TSV(records),
		Confidence: result.Confidence,
	}, nil
}
