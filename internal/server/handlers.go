package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/documents"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.spec)
}

func (s *Server) handleResource(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.ResourceAs(chi.URLParam(r, "filename"), r.URL.Query().Get("format"))
	s.respond(w, r, doc, err)
}

func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.Receipt(chi.URLParam(r, "filename"))
	s.respond(w, r, doc, err)
}

func (s *Server) handlePDFTest(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.SamplePDF()
	s.respond(w, r, doc, err)
}

func (s *Server) handleDirectPDF(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.DirectPDF()
	s.respond(w, r, doc, err)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	report, err := s.docs.Preview(chi.URLParam(r, "docType"))
	s.respondJSON(w, r, report, err)
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	report, err := s.docs.Extract(chi.URLParam(r, "docType"))
	s.respondJSON(w, r, report, err)
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	report, err := s.docs.Inspect(chi.URLParam(r, "docType"))
	s.respondJSON(w, r, report, err)
}

// respond sends doc as a download.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, doc documents.Document, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Body)
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrUnsupportedFormat) {
		status = http.StatusBadRequest
	}

	s.log.Errorf("[%s] %s %s: %v", RequestID(r.Context()), r.Method, r.URL.Path, err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
