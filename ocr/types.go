package ocr

import "context"

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatTIFF ImageFormat = "image/tiff"
)

// State labels a phase of a recognition run.
type State string

const (
	StateInitializing State = "initializing"
	StateRecognizing  State = "recognizing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)

// Status reports incremental progress during recognition. Progress is a
// fraction in [0,1]. Engines forward what the underlying provider reports;
// monotonicity is not enforced by this layer.
type Status struct {
	State    State
	Message  string
	Progress float64
}

// ProgressFunc receives progress events during a recognition call. It is
// invoked synchronously from the engine; implementations should return
// quickly.
type ProgressFunc func(Status)

// Input encapsulates a single image submitted for OCR.
type Input struct {
	// ID is an optional caller-provided identifier that is echoed back in
	// the corresponding Result.
	ID string
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/png).
	Format ImageFormat
	// DPI carries the effective dots-per-inch for the image. Providers such
	// as Tesseract use this for scaling and layout heuristics; zero means
	// unknown.
	DPI int
	// Languages is a list of language hints (e.g., "eng") that providers can
	// use to select trained data.
	Languages []string
	// Metadata allows callers to pass through engine-specific knobs (e.g.,
	// "tessedit_pageseg_mode" for Tesseract) without hard-coding them into
	// the API surface.
	Metadata map[string]string
	// Progress, when non-nil, receives status events during recognition.
	Progress ProgressFunc
}

// Report forwards a progress event if a callback is set.
func (in Input) Report(s Status) {
	if in.Progress != nil {
		in.Progress(s)
	}
}

// Word represents a single recognized token with its confidence.
type Word struct {
	Text       string
	Confidence float64
}

// Result captures OCR output for a single input image.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string
	// PlainText contains the engine's best-effort transcription.
	PlainText string
	// Words carries per-token confidence where the provider reports it.
	Words []Word
	// Confidence is the mean word confidence in [0,1], zero when unknown.
	Confidence float64
	// Language indicates the dominant language used, if known.
	Language string
}

// Engine is the OCR provider contract: one image in, one transcription out.
// Recognize blocks until the provider finishes or fails; there is no
// mid-recognition cancellation beyond the context checks an engine performs
// between its own steps.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}
