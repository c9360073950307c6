package server

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/csvgrid/pkg/buildinfo"
	"github.com/matzehuels/csvgrid/pkg/errors"
	"github.com/matzehuels/csvgrid/pkg/grid"
	"github.com/matzehuels/csvgrid/pkg/observability"
	"github.com/matzehuels/csvgrid/pkg/pipeline"
)

// maxBodyBytes bounds POST /api/grid bodies. 100 values fit with room to spare.
const maxBodyBytes = 64 << 10

// =============================================================================
// Pages
// =============================================================================

type indexData struct {
	Values   string
	Columns  string
	Fill     string
	Output   template.HTML
	Accepted bool
	Version  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	opts, err := s.optionsFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{pipeline.FormatHTML}

	data := indexData{
		Values:  opts.Values,
		Columns: opts.Columns,
		Fill:    opts.Fill.String(),
		Version: buildinfo.Version,
	}

	// A first visit has nothing to show until values are submitted.
	if r.URL.Query().Has("values") {
		res, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		// The HTML sink escapes every value.
		data.Output = template.HTML(res.Artifacts[pipeline.FormatHTML])
		data.Accepted = res.Accepted()
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render page"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// =============================================================================
// API
// =============================================================================

func (s *Server) handleGridQuery(w http.ResponseWriter, r *http.Request) {
	opts, err := s.optionsFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serveFormat(w, r, opts, pipeline.FormatJSON)
}

// gridRequest is the POST /api/grid body. Columns may be a JSON number or a
// string; either way it reaches the validator as text.
type gridRequest struct {
	Values  string      `json:"values"`
	Columns *columnText `json:"columns,omitempty"`
	Fill    *grid.Fill  `json:"fill,omitempty"`
}

type columnText string

func (c *columnText) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = columnText(s)
		return nil
	}
	*c = columnText(strings.TrimSpace(string(data)))
	return nil
}

func (s *Server) handleGridBody(w http.ResponseWriter, r *http.Request) {
	var req gridRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeErrorStatus(w, r, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body: %v", err))
		return
	}

	opts := s.baseOptions()
	opts.Values = req.Values
	if req.Columns != nil {
		opts.Columns = string(*req.Columns)
	}
	if req.Fill != nil {
		opts.Fill = *req.Fill
	}
	s.serveFormat(w, r, opts, pipeline.FormatJSON)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.optionsFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serveFormat(w, r, opts, format)
}

// serveFormat runs the pipeline for one format and writes the artifact,
// with 422 when the input was rejected.
func (s *Server) serveFormat(w http.ResponseWriter, r *http.Request, opts pipeline.Options, format string) {
	opts.Formats = []string{format}
	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if !res.Accepted() {
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.WriteHeader(status)
	_, _ = w.Write(res.Artifacts[format])
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

// =============================================================================
// Helpers
// =============================================================================

func (s *Server) baseOptions() pipeline.Options {
	return pipeline.Options{
		Columns: s.cfg.Columns,
		Fill:    s.cfg.Fill,
		Border:  s.cfg.Border,
	}
}

func (s *Server) optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := s.baseOptions()
	opts.Values = q.Get("values")
	if q.Has("columns") {
		opts.Columns = q.Get("columns")
	}
	if v := q.Get("fill"); v != "" {
		fill, err := grid.ParseFill(v)
		if err != nil {
			return opts, err
		}
		opts.Fill = fill
	}
	if v := q.Get("border"); v != "" {
		opts.Border = v
	}
	return opts, nil
}

type errorResponse struct {
	Error     string      `json:"error"`
	Code      errors.Code `json:"code,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch code := errors.GetCode(err); {
	case code == errors.ErrCodeInvalidInput, code == errors.ErrCodeTooManyValues, code == errors.ErrCodeInvalidColumns:
		return http.StatusUnprocessableEntity
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case code == errors.ErrCodeNotFound, code == errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case code == errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case code == errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeErrorStatus(w, r, statusFor(err), err)
}

func (s *Server) writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", RequestID(r.Context()))
	}
	writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      errors.GetCode(err),
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
