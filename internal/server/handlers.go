package server

import (
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/buildinfo"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/constraints"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	mosaicio "github.com/mhuggins102-sudo/Estimate-Game/pkg/io"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

type styleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// generateRequest is the body of POST /boards. Every field is optional; a
// missing seed is drawn at random.
type generateRequest struct {
	Seed        *uint64                  `json:"seed,omitempty"`
	Style       string                   `json:"style,omitempty"`
	Selection   string                   `json:"selection,omitempty"`
	Resolution  int                      `json:"resolution,omitempty"`
	Constraints *constraints.Constraints `json:"constraints,omitempty"`
	Format      string                   `json:"format,omitempty"`
	Size        int                      `json:"size,omitempty"`
	Refresh     bool                     `json:"refresh,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleStyles(w http.ResponseWriter, _ *http.Request) {
	all := layout.All()
	out := make([]styleInfo, len(all))
	for i, st := range all {
		out[i] = styleInfo{Name: st.Name, Description: st.Description}
	}
	writeJSON(w, http.StatusOK, out)
}

// handleBoard serves GET /boards/{seed}?style=&selection=&resolution=&format=&size=.
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	seed, err := strconv.ParseUint(chi.URLParam(r, "seed"), 10, 64)
	if err != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput,
			"invalid seed: %q", chi.URLParam(r, "seed")))
		return
	}

	q := r.URL.Query()
	opts := s.baseOptions()
	opts.Seed = seed
	opts.Style = q.Get("style")
	opts.Selection = q.Get("selection")
	opts.Refresh = q.Get("refresh") == "true"
	if err := queryInt(q, "resolution", &opts.Resolution); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := queryInt(q, "size", &opts.Size); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.generate(w, r, opts, q.Get("format"))
}

// handleGenerate serves POST /boards.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && err != io.EOF {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}

	opts := s.baseOptions()
	opts.Seed = rand.Uint64()
	if req.Seed != nil {
		opts.Seed = *req.Seed
	}
	opts.Style = req.Style
	opts.Selection = req.Selection
	opts.Refresh = req.Refresh
	opts.Size = req.Size
	if req.Resolution != 0 {
		opts.Resolution = req.Resolution
	}
	if req.Constraints != nil {
		opts.Constraints = req.Constraints
	}

	s.generate(w, r, opts, req.Format)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, opts pipeline.Options, format string) {
	format = formatOrDefault(format)
	opts.Formats = []string{format}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("X-Mosaic-Seed", strconv.FormatUint(result.Seed, 10))
	h.Set("X-Mosaic-Style", result.Board.Style)
	h.Set("X-Mosaic-Attempts", strconv.Itoa(result.Attempts))
	if result.Exhausted {
		h.Set("X-Mosaic-Exhausted", "true")
	}
	writeArtifact(w, format, result.Artifacts[format])
}

// handleMeasure serves POST /measure?resolution=&format=&size=. The body is
// a board in the format written by `mosaic generate -f json`.
func (s *Server) handleMeasure(w http.ResponseWriter, r *http.Request) {
	b, err := mosaicio.ReadJSON(r.Body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	opts := s.baseOptions()
	opts.Refresh = q.Get("refresh") == "true"
	if err := queryInt(q, "resolution", &opts.Resolution); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := queryInt(q, "size", &opts.Size); err != nil {
		s.writeError(w, r, err)
		return
	}
	format := formatOrDefault(q.Get("format"))
	opts.Formats = []string{format}
	if err := opts.ValidateForRender(); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Measure(r.Context(), b, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	artifacts, err := s.runner.Render(r.Context(), result, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, format, artifacts[format])
}

func formatOrDefault(format string) string {
	if format == "" {
		return pipeline.FormatJSON
	}
	return format
}

// queryInt parses an optional integer query parameter into dst.
func queryInt(q url.Values, name string, dst *int) error {
	v := q.Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, v)
	}
	*dst = n
	return nil
}

func writeArtifact(w http.ResponseWriter, format string, data []byte) {
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
