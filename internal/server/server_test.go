package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/config"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/documents"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.November, 2, 14, 30, 5, 0, time.UTC)
}

func newTestServer(t *testing.T, debug bool) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Server.DebugRoutes = debug

	log := logger.NewConsoleLogger(io.Discard)
	docs := documents.New(&cfg, log, documents.WithClock(fixedClock))

	ts := httptest.NewServer(New(cfg.Server, docs, log).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func fetch(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestDocumentRoutes(t *testing.T) {
	ts := newTestServer(t, true)

	tests := []struct {
		path        string
		contentType string
		filename    string
	}{
		{"/resources/food-safety-guide.pdf", "application/pdf", "food-safety-guide.pdf"},
		{"/resources/donation-checklist.pdf", "application/pdf", "donation-checklist.pdf"},
		{"/resources/anything.pdf", "application/pdf", "anything.pdf"},
		{"/resources/food-safety-guide.pdf?format=docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "food-safety-guide.docx"},
		{"/resources/food-safety-guide.pdf?format=json", "application/json", "food-safety-guide.json"},
		{"/receipts/acme-donor-2023.pdf", "application/pdf", "acme-donor-2023.pdf"},
		{"/debug/pdf-test", "application/pdf", "test.pdf"},
		{"/debug/test-direct-pdf", "application/pdf", "test-direct.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := fetch(t, ts, tt.path)

			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
			assert.Equal(t, "attachment; filename="+tt.filename, resp.Header.Get("Content-Disposition"))
			assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
			assert.NotEmpty(t, body)

			if tt.contentType == "application/pdf" {
				assert.True(t, strings.HasPrefix(string(body), "%PDF-"))
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	ts := newTestServer(t, true)

	resp, body := fetch(t, ts, "/resources/food-safety-guide.pdf?format=rtf")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e errorResponse
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Contains(t, e.Error, "unsupported format")
}

func TestDebugReports(t *testing.T) {
	ts := newTestServer(t, true)

	resp, body := fetch(t, ts, "/debug/extract-content/food")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var extraction documents.ExtractionReport
	require.NoError(t, json.Unmarshal(body, &extraction))
	assert.Equal(t, "Food Safety Guidelines", extraction.Lines[0].Text)
	assert.Contains(t, string(body), `"isSectionHeading"`)

	resp, body = fetch(t, ts, "/debug/pdf-raw/checklist")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var preview documents.PreviewReport
	require.NoError(t, json.Unmarshal(body, &preview))
	assert.Equal(t, "Donation Best Practices Checklist", preview.FirstPageLines[0].Text)
	assert.Contains(t, string(body), `"pagesExpected"`)

	resp, body = fetch(t, ts, "/debug/pdf-content/tax")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var inspect documents.InspectReport
	require.NoError(t, json.Unmarshal(body, &inspect))
	assert.True(t, strings.HasPrefix(inspect.PDFHeader, "%PDF-"))
	assert.Contains(t, string(body), `"first10Lines"`)
}

func TestDebugRoutesDisabled(t *testing.T) {
	ts := newTestServer(t, false)

	resp, _ := fetch(t, ts, "/debug/pdf-test")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = fetch(t, ts, "/resources/food-safety-guide.pdf")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthAndRequestID(t *testing.T) {
	ts := newTestServer(t, true)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "req-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))

	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health["status"])
}

func TestOpenAPIDocumentValidates(t *testing.T) {
	ts := newTestServer(t, true)

	resp, body := fetch(t, ts, "/openapi.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := openapi3.NewLoader().LoadFromData(body)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	assert.Equal(t, apiTitle, doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/receipts/{filename}"))
	assert.NotNil(t, doc.Paths.Find("/debug/pdf-raw/{docType}"))
}

func TestSpecWithoutDebugRoutes(t *testing.T) {
	spec := Spec(false, []string{"pdf"})

	require.NoError(t, spec.Validate(context.Background()))
	assert.Nil(t, spec.Paths.Find("/debug/pdf-test"))
	assert.NotNil(t, spec.Paths.Find("/resources/{filename}"))
}

func TestRequestIDInContext(t *testing.T) {
	var seen string
	h := RequestLogger(logger.NewConsoleLogger(io.Discard))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}
