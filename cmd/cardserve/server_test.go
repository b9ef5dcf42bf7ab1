package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/ShowTails/ShowTailsOCR/config"
	"github.com/ShowTails/ShowTailsOCR/ocr"
	"github.com/ShowTails/ShowTailsOCR/scan"
)

type stubEngine struct {
	text string
	err  error
}

func (e stubEngine) Name() string { return "stub" }

func (e stubEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if e.err != nil {
		return ocr.Result{}, e.err
	}
	return ocr.Result{InputID: in.ID, PlainText: e.text, Confidence: 0.8}, nil
}

func testRouter(engine ocr.Engine) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scanner := scan.New(scan.WithEngine(engine))
	return newRouter(config.Default(), scanner, logger)
}

func uploadRequest(t *testing.T, payload []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "card.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(payload); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/scan", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestIndexPageIsServable(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(stubEngine{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, err := html.Parse(rec.Body); err != nil {
		t.Fatalf("index page is not parseable HTML: %v", err)
	}
}

func TestScanEndpoint(t *testing.T) {
	router := testRouter(stubEngine{text: "Name: Thumper Variety: Dutch\nSire: Big Chief Ear: AB-12"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, []byte{0x1}))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp scanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Records) != 2 {
		t.Fatalf("expected 2 records, got %+v", resp.Records)
	}
	if resp.Records[0].Role != "Subject" || resp.Records[0].Name != "Thumper" {
		t.Fatalf("unexpected subject: %+v", resp.Records[0])
	}
	if !strings.HasPrefix(resp.TSV, "Index\tRole\t") {
		t.Fatalf("unexpected tsv: %q", resp.TSV)
	}
	if !strings.Contains(resp.ReportHTML, "Thumper") {
		t.Fatalf("report html missing content: %q", resp.ReportHTML)
	}
}

func TestScanEndpointWithoutFile(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader(""))
	testRouter(stubEngine{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestScanEndpointEngineFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	router := testRouter(stubEngine{err: errors.New("tessdata missing")})
	router.ServeHTTP(rec, uploadRequest(t, []byte{0x1}))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "recognition failed") {
		t.Fatalf("error message missing: %s", rec.Body.String())
	}
}
