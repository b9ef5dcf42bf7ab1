package ocr

import (
	"context"
	"fmt"
)

var defaultEngine Engine = &noopEngine{}

// DefaultEngine returns the library's default OCR engine. Importing the
// tesseract subpackage installs the Tesseract engine here; without it the
// default is a noop that returns empty transcriptions.
func DefaultEngine() Engine {
	return defaultEngine
}

// SetDefaultEngine sets the library's default OCR engine.
func SetDefaultEngine(engine Engine) {
	defaultEngine = engine
}

// Recognize runs a single image through the given engine, applying options
// to the constructed input.
func Recognize(ctx context.Context, engine Engine, id string, image []byte, format ImageFormat, opts ...InputOption) (Result, error) {
	in := NewInput(id, image, format, opts...)
	res, err := engine.Recognize(ctx, in)
	if err != nil {
		return Result{}, fmt.Errorf("recognize %s: %w", in.ID, err)
	}
	return res, nil
}

type noopEngine struct{}

func (n noopEngine) Name() string {
	return "noop"
}

func (n noopEngine) Recognize(ctx context.Context, input Input) (Result, error) {
	input.Report(Status{State: StateDone, Message: "noop engine", Progress: 1})
	return Result{InputID: input.ID}, nil
}
