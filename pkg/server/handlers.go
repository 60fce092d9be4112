package server

import (
	"encoding/json"
	"net/http"

	"github.com/navstack-dev/navstack/pkg/nav"
	"github.com/navstack-dev/navstack/pkg/routepath"
)

// segmentJSON is the wire shape of one navigation segment.
type segmentJSON struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	View    string            `json:"view,omitempty"`
	Data    map[string]string `json:"data,omitempty"`
	Matched bool              `json:"matched"`
}

// pathJSON is the wire shape of a parsed navigation path.
type pathJSON struct {
	Path      []segmentJSON `json:"path"`
	Canonical string        `json:"canonical"`
}

// toSegmentJSON converts a segment, resolving the view token to its
// configured identifier.
func (s *Server) toSegmentJSON(seg nav.Segment) segmentJSON {
	return segmentJSON{
		ID:      seg.ID,
		Name:    seg.Name,
		View:    s.views.Name(seg.View),
		Data:    seg.Data,
		Matched: seg.Matched(),
	}
}

func (s *Server) toPathJSON(path nav.Path) pathJSON {
	out := pathJSON{
		Path:      make([]segmentJSON, len(path)),
		Canonical: nav.Serialize(path),
	}
	for i, seg := range path {
		out.Path[i] = s.toSegmentJSON(seg)
	}
	return out
}

// writeJSON writes a JSON response body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode error", "error", err)
	}
}

// writeError writes a JSON error body.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// handleParse parses ?path= into a navigation path.
//
//	GET /api/parse?path=/users/42/profile
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("path")
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, "missing path parameter")
		return
	}
	s.writeJSON(w, http.StatusOK, s.toPathJSON(s.matcher.Parse(raw)))
}

// serializeRequest is the body of POST /api/serialize.
type serializeRequest struct {
	Path []segmentJSON `json:"path"`
}

// handleSerialize joins segment IDs into a canonical path string.
//
//	POST /api/serialize {"path": [{"id": "users/42"}, {"id": "about"}]}
func (s *Server) handleSerialize(w http.ResponseWriter, r *http.Request) {
	var req serializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	path := make(nav.Path, len(req.Path))
	for i, seg := range req.Path {
		path[i] = nav.Segment{ID: seg.ID, Name: seg.Name, Data: seg.Data}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"canonical": s.matcher.Serialize(path),
	})
}

// handleHref builds the canonical path for one named route. Data
// values come from the remaining query parameters.
//
//	GET /api/href?name=users/:id&id=42
func (s *Server) handleHref(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		s.writeError(w, http.StatusBadRequest, "missing name parameter")
		return
	}

	var data map[string]string
	for key, values := range q {
		if key == "name" || len(values) == 0 {
			continue
		}
		if data == nil {
			data = make(map[string]string)
		}
		data[key] = values[0]
	}

	href, ok := s.matcher.Href(name, data)
	if !ok {
		s.writeError(w, http.StatusNotFound, "unknown route name")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"href": href})
}

// routeJSON is the wire shape of one normalized route template.
type routeJSON struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	View        string `json:"view,omitempty"`
	StaticParts int    `json:"staticParts"`
	DataParts   int    `json:"dataParts"`
}

// handleRoutes dumps the sorted route table.
func (s *Server) handleRoutes(w http.ResponseWriter, _ *http.Request) {
	table := s.matcher.Table()
	routes := make([]routeJSON, table.Len())
	for i := 0; i < table.Len(); i++ {
		tmpl := table.At(i)
		routes[i] = routeJSON{
			Name:        tmpl.Name(),
			Pattern:     tmpl.Pattern(),
			View:        s.views.Name(tmpl.View()),
			StaticParts: tmpl.StaticParts(),
			DataParts:   tmpl.DataParts(),
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"routes": routes})
}

// handleSlug formats free-form text as a URL-safe path part.
//
//	GET /api/slug?text=Hello,%20World!!
func (s *Server) handleSlug(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	s.writeJSON(w, http.StatusOK, map[string]string{
		"slug": routepath.FormatURLPart(text),
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
