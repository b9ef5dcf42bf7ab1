// Package tesseract provides the default, gosseract-backed OCR engine.
// Importing it installs the engine as the ocr package default. It requires
// the Tesseract library and trained data to be installed on the host.
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/ShowTails/ShowTailsOCR/ocr"
)

func init() {
	ocr.SetDefaultEngine(NewEngine())
}

// Engine implements ocr.Engine using the gosseract client.
type Engine struct {
	clientFactory func() *gosseract.Client
}

// NewEngine constructs a Tesseract-backed OCR engine.
func NewEngine() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

func (e *Engine) Name() string { return "tesseract" }

// Recognize performs OCR on a single image input. The underlying client is
// released on every path, including failures, so repeated scans do not leak
// native resources.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (res ocr.Result, err error) {
	defer func() {
		if err != nil {
			in.Report(ocr.Status{State: ocr.StateFailed, Message: err.Error()})
		}
	}()

	c := e.clientFactory()
	defer c.Close()

	in.Report(ocr.Status{State: ocr.StateInitializing, Message: "loading engine"})
	if err := ctx.Err(); err != nil {
		return ocr.Result{}, err
	}
	if err := c.SetImageFromBytes(in.Image); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return ocr.Result{}, fmt.Errorf("set languages: %w", err)
		}
	}
	if in.DPI > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(in.DPI)); err != nil {
			return ocr.Result{}, fmt.Errorf("set dpi: %w", err)
		}
	}
	for k, v := range in.Metadata {
		if err := c.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return ocr.Result{}, fmt.Errorf("set variable %s: %w", k, err)
		}
	}

	in.Report(ocr.Status{State: ocr.StateRecognizing, Message: "recognizing text", Progress: 0.5})
	if err := ctx.Err(); err != nil {
		return ocr.Result{}, err
	}
	text, err := c.Text()
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize text: %w", err)
	}

	words, avgConf := extractWords(c)
	in.Report(ocr.Status{State: ocr.StateDone, Message: "recognition complete", Progress: 1})
	return ocr.Result{
		InputID:    in.ID,
		PlainText:  text,
		Words:      words,
		Confidence: avgConf,
		Language:   firstLanguage(in.Languages),
	}, nil
}

func extractWords(c *gosseract.Client) ([]ocr.Word, float64) {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return nil, 0
	}
	words := make([]ocr.Word, 0, len(boxes))
	var sum float64
	for _, b := range boxes {
		conf := b.Confidence / 100.0
		sum += conf
		words = append(words, ocr.Word{Text: b.Word, Confidence: conf})
	}
	return words, sum / float64(len(words))
}

func firstLanguage(langs []string) string {
	if len(langs) == 0 {
		return ""
	}
	return langs[0]
}
