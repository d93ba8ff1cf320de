// Package playground drives the generate and render cycle for the outer
// surfaces: it switches the active space, composes scenes and paints them.
package playground

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"maps"
	"math/rand/v2"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/geonym"
	"github.com/gogpu/geonym/canvas"
	"github.com/gogpu/geonym/internal/config"
	"github.com/gogpu/geonym/internal/metrics"
	"github.com/gogpu/geonym/svg"
)

// Playground owns a registry and knows how to present its spaces.
type Playground struct {
	reg        *geonym.Registry
	cfg        config.Config
	background gg.RGBA
	metrics    *metrics.Collector
	log        *slog.Logger
	seeds      func() uint64
}

// Option configures a Playground.
type Option func(*Playground)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.Config) Option {
	return func(p *Playground) { p.cfg = cfg }
}

// WithMetrics records activity on m.
func WithMetrics(m *metrics.Collector) Option {
	return func(p *Playground) { p.metrics = m }
}

// WithLogger sets the driver logger. The default is geonym.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(p *Playground) { p.log = l }
}

// WithSeedSource sets the function used to pick seeds when neither the
// caller nor the configuration fixes one.
func WithSeedSource(f func() uint64) Option {
	return func(p *Playground) { p.seeds = f }
}

// New creates a playground over reg.
func New(reg *geonym.Registry, opts ...Option) *Playground {
	p := &Playground{
		reg:   reg,
		cfg:   config.Default(),
		log:   geonym.Logger(),
		seeds: randomSeed,
	}
	for _, opt := range opts {
		opt(p)
	}
	bg, err := geonym.ParseColor(p.cfg.Canvas.Background)
	if err != nil {
		p.log.Warn("falling back to white background", "err", err)
		bg = gg.White
	}
	p.background = bg
	return p
}

func randomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// Registry returns the registry the playground presents.
func (p *Playground) Registry() *geonym.Registry { return p.reg }

// Config returns the playground configuration.
func (p *Playground) Config() config.Config { return p.cfg }

// Show activates the space registered under id and composes a fresh scene
// for it. A zero seed selects the configured seed, or a random one when the
// configuration leaves it at zero. A missing "depth" parameter is filled in
// from the configuration.
func (p *Playground) Show(id string, seed uint64, params geonym.Params) (*geonym.Scene, error) {
	sp, err := p.reg.Activate(id)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = p.cfg.Generate.Seed
	}
	if seed == 0 {
		seed = p.seeds()
	}

	merged := geonym.Params{"depth": p.cfg.Generate.Depth}
	maps.Copy(merged, params)

	scene, err := geonym.Compose(sp, seed, merged)
	if err != nil {
		p.metrics.Failed(id, "generate")
		return nil, err
	}
	p.metrics.Composed(scene)
	p.log.Debug("showing space", "space", id, "seed", seed)
	return scene, nil
}

// Express shows the first registered space, as the playground does on
// startup.
func (p *Playground) Express() (*geonym.Scene, error) {
	all := p.reg.Spaces()
	if len(all) == 0 {
		return nil, fmt.Errorf("express: %w", geonym.ErrUnknownSpace)
	}
	return p.Show(all[0].Descriptor().ID, 0, nil)
}

// Paint clears dc and draws scene onto it, adding the caption when the
// configuration asks for one and dc supports it. kind names the surface in
// metrics.
func (p *Playground) Paint(scene *geonym.Scene, dc geonym.Surface, kind string) error {
	id := scene.Space.Descriptor().ID
	start := time.Now()

	dc.Clear()
	counted := &countingSurface{Surface: dc}
	if err := scene.Draw(counted); err != nil {
		p.metrics.Failed(id, "render")
		return err
	}
	if cp, ok := dc.(geonym.Captioner); ok && p.cfg.Canvas.Caption {
		if err := cp.Caption(scene.Space.Descriptor().Title); err != nil {
			p.log.Warn("caption failed", "space", id, "err", err)
		}
	}

	p.metrics.Rendered(id, kind, counted.shapes, time.Since(start))
	return nil
}

// Canvas paints scene onto a new raster canvas sized by the configuration.
// The caller owns the returned canvas and must Close it.
func (p *Playground) Canvas(scene *geonym.Scene) (*canvas.Canvas, error) {
	c := canvas.New(p.cfg.Canvas.Size, canvas.WithBackground(p.background))
	if err := p.Paint(scene, c, "png"); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Image paints scene and returns the rendered image.
func (p *Playground) Image(scene *geonym.Scene) (image.Image, error) {
	c, err := p.Canvas(scene)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return c.Image(), nil
}

// PNG paints scene and writes it to w as PNG.
func (p *Playground) PNG(w io.Writer, scene *geonym.Scene) error {
	c, err := p.Canvas(scene)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.EncodePNG(w)
}

// SVG paints scene and writes it to w as an SVG document.
func (p *Playground) SVG(w io.Writer, scene *geonym.Scene) error {
	doc := svg.NewWithBackground(p.cfg.Canvas.Size, p.background)
	if err := p.Paint(scene, doc, "svg"); err != nil {
		return err
	}
	_, err := doc.WriteTo(w)
	return err
}

// countingSurface counts the primitives passed through to a surface.
type countingSurface struct {
	geonym.Surface
	shapes int
}

func (s *countingSurface) DrawCircle(center geonym.Coord, radius float64, fill, border gg.RGBA) error {
	s.shapes++
	return s.Surface.DrawCircle(center, radius, fill, border)
}

func (s *countingSurface) DrawLine(from, to geonym.Coord, col gg.RGBA) error {
	s.shapes++
	return s.Surface.DrawLine(from, to, col)
}
