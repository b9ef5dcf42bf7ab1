package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ShowTails/ShowTailsOCR/config"
	"github.com/ShowTails/ShowTailsOCR/pedigree"
	"github.com/ShowTails/ShowTailsOCR/report"
	"github.com/ShowTails/ShowTailsOCR/scan"
)

type server struct {
	cfg     config.Config
	scanner *scan.Scanner
	logger  *slog.Logger
}

func newRouter(cfg config.Config, scanner *scan.Scanner, logger *slog.Logger) http.Handler {
	s := &server{cfg: cfg, scanner: scanner, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Post("/scan", s.handleScan)
	return r
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexPage)
}

// recordJSON mirrors pedigree.Record for the scan response.
type recordJSON struct {
	Role    string `json:"role"`
	Name    string `json:"name,omitempty"`
	Ear     string `json:"ear,omitempty"`
	Reg     string `json:"reg,omitempty"`
	GC      string `json:"gc,omitempty"`
	Variety string `json:"variety,omitempty"`
	Weight  string `json:"weight,omitempty"`
	Legs    string `json:"legs,omitempty"`
	Born    string `json:"born,omitempty"`
}

type scanResponse struct {
	Report     string       `json:"report"`
	ReportHTML string       `json:"reportHtml"`
	TSV        string       `json:"tsv"`
	Confidence float64      `json:"confidence"`
	Records    []recordJSON `json:"records"`
}

func (s *server) handleScan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	file, _, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "no card image supplied")
		return
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	out, err := s.scanner.Scan(r.Context(), scan.Request{
		ID:    middleware.GetReqID(r.Context()),
		Image: image,
	})
	if errors.Is(err, scan.ErrNoImage) {
		s.writeError(w, http.StatusBadRequest, "no card image supplied")
		return
	}
	if err != nil {
		s.logger.Error("scan failed", "err", err)
		s.writeError(w, http.StatusBadGateway, "recognition failed: "+err.Error())
		return
	}

	html, err := report.HTML(out.Records)
	if err != nil {
		s.logger.Error("report render failed", "err", err)
		html = ""
	}

	resp := scanResponse{
		Report:     out.Report,
		ReportHTML: html,
		TSV:        out.TSV,
		Confidence: out.Confidence,
		Records:    make([]recordJSON, 0, len(out.Records)),
	}
	for _, rec := range out.Records {
		if rec.IsEmpty() {
			continue
		}
		resp.Records = append(resp.Records, toJSON(rec))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func toJSON(rec pedigree.Record) recordJSON {
	return recordJSON{
		Role:    rec.Role.String(),
		Name:    rec.Name,
		Ear:     rec.Ear,
		Reg:     rec.Reg,
		GC:      rec.GC,
		Variety: rec.Variety,
		Weight:  rec.Weight,
		Legs:    rec.Legs,
		Born:    rec.Born,
	}
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
