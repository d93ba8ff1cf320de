// Package server serves the playground over HTTP.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gogpu/geonym"
	"github.com/gogpu/geonym/internal/imagecache"
	"github.com/gogpu/geonym/internal/playground"
)

// Server handles playground requests.
type Server struct {
	pg      *playground.Playground
	log     *slog.Logger
	metrics http.Handler
	images  *imagecache.Cache
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithCache keeps encoded images of seeded requests in c.
func WithCache(c *imagecache.Cache) Option {
	return func(s *Server) { s.images = c }
}

// NewHandler creates the HTTP handler for pg.
//
// Routes:
//
//	GET /                              redirect to the first space
//	GET /spaces                        JSON list of descriptors
//	GET /spaces/{id}                   HTML page for a fresh scene
//	GET /spaces/{id}/image.png         rendered scene
//	GET /spaces/{id}/image.svg         rendered scene as SVG
//	GET /spaces/{id}/structure.json    generated tree
//	GET /metrics                       Prometheus metrics, when enabled
//
// Scene routes accept a seed query parameter; every other query parameter is
// passed to the space as a generation parameter. Images requested with a seed
// are served from the image cache when one is configured.
func NewHandler(pg *playground.Playground, opts ...Option) http.Handler {
	s := &Server{pg: pg, log: geonym.Logger()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.index)
	r.Get("/spaces", s.listSpaces)
	r.Route("/spaces/{id}", func(r chi.Router) {
		r.Get("/", s.page)
		r.Get("/image.png", s.png)
		r.Get("/image.svg", s.svg)
		r.Get("/structure.json", s.structure)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	all := s.pg.Registry().Spaces()
	if len(all) == 0 {
		http.Error(w, "no spaces registered", http.StatusNotFound)
		return
	}
	http.Redirect(w, r, "/spaces/"+all[0].Descriptor().ID, http.StatusFound)
}

type spaceView struct {
	geonym.Descriptor
	Active bool `json:"active"`
}

func (s *Server) views() []spaceView {
	reg := s.pg.Registry()
	all := reg.Spaces()
	out := make([]spaceView, 0, len(all))
	for _, sp := range all {
		d := sp.Descriptor()
		out = append(out, spaceView{Descriptor: d, Active: reg.IsActive(d.ID)})
	}
	return out
}

func (s *Server) listSpaces(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.views())
}

// scene composes a scene from the request, writing an error response and
// returning nil on failure.
func (s *Server) scene(w http.ResponseWriter, r *http.Request) *geonym.Scene {
	id := chi.URLParam(r, "id")
	var seed uint64
	params := geonym.Params{}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		if key == "seed" {
			v, err := strconv.ParseUint(values[0], 10, 64)
			if err != nil {
				http.Error(w, fmt.Sprintf("invalid seed %q", values[0]), http.StatusBadRequest)
				return nil
			}
			seed = v
			continue
		}
		params[key] = values[0]
	}

	scene, err := s.pg.Show(id, seed, params)
	if err != nil {
		s.fail(w, err)
		return nil
	}
	return scene
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, geonym.ErrUnknownSpace):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, geonym.ErrInvalidParams),
		errors.Is(err, geonym.ErrNegativeDepth),
		errors.Is(err, geonym.ErrDepthLimit):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.log.Error("request failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) png(w http.ResponseWriter, r *http.Request) {
	s.image(w, r, "png", "image/png", s.pg.PNG)
}

func (s *Server) svg(w http.ResponseWriter, r *http.Request) {
	s.image(w, r, "svg", "image/svg+xml", s.pg.SVG)
}

func (s *Server) image(w http.ResponseWriter, r *http.Request, format, contentType string,
	encode func(io.Writer, *geonym.Scene) error) {
	scene := s.scene(w, r)
	if scene == nil {
		return
	}

	var key imagecache.Key
	cacheable := s.images != nil && r.URL.Query().Has("seed")
	if cacheable {
		key = imagecache.NewKey(scene.Space.Descriptor().ID, format, scene.Seed, scene.Params)
		if data, ok := s.images.Get(key); ok {
			w.Header().Set("Content-Type", contentType)
			w.Header().Set("X-Cache", "hit")
			w.Write(data)
			return
		}
	}

	var buf bytes.Buffer
	if err := encode(&buf, scene); err != nil {
		s.fail(w, err)
		return
	}
	if cacheable {
		s.images.Set(key, buf.Bytes())
		w.Header().Set("X-Cache", "miss")
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(buf.Bytes())
}

func (s *Server) structure(w http.ResponseWriter, r *http.Request) {
	scene := s.scene(w, r)
	if scene == nil {
		return
	}
	writeJSON(w, scene.Tree)
}

type pageData struct {
	Spaces    []spaceView
	Space     geonym.Descriptor
	Seed      uint64
	Query     template.URL
	Structure string
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	scene := s.scene(w, r)
	if scene == nil {
		return
	}
	structure, err := scene.Tree.MarshalIndent()
	if err != nil {
		s.fail(w, err)
		return
	}

	q := r.URL.Query()
	q.Set("seed", strconv.FormatUint(scene.Seed, 10))
	data := pageData{
		Spaces:    s.views(),
		Space:     scene.Space.Descriptor(),
		Seed:      scene.Seed,
		Query:     template.URL(q.Encode()),
		Structure: string(structure),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
