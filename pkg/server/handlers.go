package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/buildinfo"
	apperrors "github.com/Ak-sara/aksara-writer-sub001/pkg/errors"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/pipeline"
	"github.com/Ak-sara/aksara-writer-sub001/pkg/store"
)

// contentTypes maps output formats to their response content type.
var contentTypes = map[string]string{
	pipeline.FormatSVG:      "image/svg+xml",
	pipeline.FormatGraphviz: "image/svg+xml",
	pipeline.FormatDOT:      "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatPNG:      "image/png",
	pipeline.FormatJSON:     "application/json; charset=utf-8",
}

// renderResponse is the multi-format render envelope. Artifact bytes
// serialize as base64.
type renderResponse struct {
	DiagramHash string            `json:"diagramHash"`
	Artifacts   map[string][]byte `json:"artifacts"`
	Stats       renderStats       `json:"stats"`
	Cache       renderCache       `json:"cache"`
}

type renderStats struct {
	NodeCount int     `json:"nodeCount"`
	EdgeCount int     `json:"edgeCount"`
	ParseMs   float64 `json:"parseMs"`
	LayoutMs  float64 `json:"layoutMs"`
	RenderMs  float64 `json:"renderMs"`
}

type renderCache struct {
	Parse  bool `json:"parse"`
	Layout bool `json:"layout"`
	Render bool `json:"render"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// handleRender executes the full pipeline. The body is a
// [pipeline.Options] document. A request for a single format answers
// with the raw artifact and its content type; multiple formats get a
// JSON envelope.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("X-Diagram-Hash", result.DiagramHash)

	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{pipeline.FormatSVG}
	}
	if len(formats) == 1 {
		w.Header().Set("Content-Type", contentTypes[formats[0]])
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(result.Artifacts[formats[0]]); err != nil {
			s.logger.Error("write artifact", "err", err)
		}
		return
	}

	s.respondJSON(w, http.StatusOK, renderResponse{
		DiagramHash: result.DiagramHash,
		Artifacts:   result.Artifacts,
		Stats: renderStats{
			NodeCount: result.Stats.NodeCount,
			EdgeCount: result.Stats.EdgeCount,
			ParseMs:   millis(result.Stats.ParseTime),
			LayoutMs:  millis(result.Stats.LayoutTime),
			RenderMs:  millis(result.Stats.RenderTime),
		},
		Cache: renderCache{
			Parse:  result.CacheInfo.ParseHit,
			Layout: result.CacheInfo.LayoutHit,
			Render: result.CacheInfo.RenderHit,
		},
	})
}

// handleParse parses source text and answers with the diagram model
// before layout.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	d, err := s.runner.Parse(r.Context(), opts)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.respondJSON(w, http.StatusOK, d)
}

type saveDiagramRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Kind   string `json:"kind,omitempty"`
}

func (s *Server) handleSaveDiagram(w http.ResponseWriter, r *http.Request) {
	var req saveDiagramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if req.Name == "" {
		s.respondError(w, r, apperrors.New(apperrors.ErrCodeInvalidName, "name is required"))
		return
	}
	if req.Source == "" {
		s.respondError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "source is required"))
		return
	}

	// Parse before saving so broken sources are rejected, and store
	// the parsed model alongside the source.
	d, err := s.runner.Parse(r.Context(), pipeline.Options{Text: req.Source, Kind: req.Kind})
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	rec := &store.Record{
		Name:    req.Name,
		Source:  req.Source,
		Kind:    req.Kind,
		Diagram: d,
	}
	if err := s.store.Save(r.Context(), rec); err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "save diagram"))
		return
	}

	s.respondJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.List(r.Context())
	if err != nil {
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "list diagrams"))
		return
	}
	if records == nil {
		records = []*store.Record{}
	}
	s.respondJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.respondError(w, r, apperrors.New(apperrors.ErrCodeDiagramNotFound, "diagram %s not found", id))
			return
		}
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "load diagram %s", id))
		return
	}
	s.respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.respondError(w, r, apperrors.New(apperrors.ErrCodeDiagramNotFound, "diagram %s not found", id))
			return
		}
		s.respondError(w, r, apperrors.Wrap(apperrors.ErrCodeStore, err, "delete diagram %s", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

// storeRequired guards the saved-diagram routes when no store is
// configured.
func (s *Server) storeRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.store == nil {
			s.respondJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "no diagram store configured"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"err", err,
			"request_id", RequestID(r.Context()))
	}
	s.respondJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  string(apperrors.GetCode(err)),
	})
}

// statusFor maps an error to an HTTP status via its error code.
// Uncoded errors are treated as internal.
func statusFor(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidSyntax,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidOptions,
		apperrors.ErrCodeInvalidShape, apperrors.ErrCodeInvalidAlgorithm,
		apperrors.ErrCodeInvalidName, apperrors.ErrCodeInvalidPath,
		apperrors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeDiagramNotFound,
		apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
