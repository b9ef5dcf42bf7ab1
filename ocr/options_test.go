package ocr

import (
	"context"
	"reflect"
	"testing"
)

func TestNewInputAppliesOptions(t *testing.T) {
	meta := map[string]string{"tessedit_pageseg_mode": "6"}
	in := NewInput("card-1", []byte{1, 2, 3}, ImageFormatPNG,
		WithLanguages("eng"),
		WithDPI(300),
		WithMetadata(meta),
	)
	if in.ID != "card-1" || in.Format != ImageFormatPNG {
		t.Fatalf("unexpected input identity: %+v", in)
	}
	if !reflect.DeepEqual(in.Languages, []string{"eng"}) {
		t.Fatalf("unexpected languages: %+v", in.Languages)
	}
	if in.DPI != 300 {
		t.Fatalf("unexpected dpi: %d", in.DPI)
	}
	meta["tessedit_pageseg_mode"] = "7"
	if in.Metadata["tessedit_pageseg_mode"] != "6" {
		t.Fatalf("metadata was not copied: %+v", in.Metadata)
	}
}

func TestTesseractOptionsFillMetadata(t *testing.T) {
	var in Input
	WithTesseractPSM(6)(&in)
	WithTesseractWhitelist("0123456789")(&in)
	if in.Metadata["tessedit_pageseg_mode"] != "6" {
		t.Fatalf("psm not set: %+v", in.Metadata)
	}
	if in.Metadata["tessedit_char_whitelist"] != "0123456789" {
		t.Fatalf("whitelist not set: %+v", in.Metadata)
	}
}

func TestNoopEngineReportsProgress(t *testing.T) {
	var events []Status
	in := NewInput("card-2", nil, ImageFormatPNG, WithProgress(func(s Status) {
		events = append(events, s)
	}))
	res, err := DefaultEngine().Recognize(context.Background(), in)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if res.InputID != "card-2" {
		t.Fatalf("unexpected input id: %s", res.InputID)
	}
	if len(events) != 1 || events[0].State != StateDone || events[0].Progress != 1 {
		t.Fatalf("unexpected progress events: %+v", events)
	}
}
