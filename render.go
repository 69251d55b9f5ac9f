package qmandel

import (
	"fmt"
	"time"

	"github.com/gogpu/qmandel/cache"
	"github.com/gogpu/qmandel/escape"
	"github.com/gogpu/qmandel/exact"
	"github.com/gogpu/qmandel/internal/parallel"
)

// View selects the region of the complex plane to render and the raster
// size it is sampled onto. Span is the full width (real part) and height
// (imaginary part) of the region.
type View struct {
	Width, Height int
	Center        exact.Complex
	Span          exact.Complex
}

// DefaultView returns the 64×64 view of [-9/4, 3/4] × [-3/2, 3/2]
// centered on -3/4.
func DefaultView() View {
	return View{
		Width:  64,
		Height: 64,
		Center: exact.Real(exact.New(-3, 4)),
		Span:   exact.C(exact.Int(3), exact.Int(3)),
	}
}

// pointKey identifies a memoized escape evaluation.
type pointKey struct {
	c exact.Complex
	n uint
}

func hashPoint(k pointKey) uint64 {
	re, im := k.c.Re(), k.c.Im()
	h := uint64(14695981039346656037)
	for _, v := range [...]uint64{
		uint64(re.Num()), uint64(re.Denom()),
		uint64(im.Num()), uint64(im.Denom()),
		uint64(k.n),
	} {
		h ^= v
		h *= 1099511628211
	}
	return h
}

// Renderer evaluates views on a worker pool. A Renderer is safe for
// concurrent use; Close releases its workers.
type Renderer struct {
	opts options
	pool *parallel.WorkerPool
	memo *cache.ShardedCache[pointKey, uint]
}

// NewRenderer creates a Renderer configured by opts.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		opts: o,
		pool: parallel.NewWorkerPool(o.workers),
	}
	if o.cache {
		r.memo = cache.NewSharded[pointKey, uint](o.cacheSize, hashPoint)
	}
	return r
}

// Iterations returns the iteration budget.
func (r *Renderer) Iterations() uint {
	return r.opts.iterations
}

// CacheStats returns the escape memo counters, or zero Stats when the
// cache is disabled.
func (r *Renderer) CacheStats() cache.Stats {
	if r.memo == nil {
		return cache.Stats{}
	}
	return r.memo.Stats()
}

// Close stops the worker goroutines. Renders after Close still complete,
// on the calling goroutine.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Counts returns the escape count of every pixel of v in row-major order,
// row 0 at the top.
func (r *Renderer) Counts(v View) ([]uint, error) {
	grid, err := escape.NewGrid(v.Width, v.Height, v.Center, v.Span)
	if err != nil {
		return nil, fmt.Errorf("qmandel: render: %w", err)
	}

	tiles := parallel.Tiles(v.Width, v.Height, r.opts.tileSize)
	log := Logger()
	log.Debug("render started",
		"width", v.Width, "height", v.Height,
		"center", v.Center, "span", v.Span,
		"iterations", r.opts.iterations,
		"tiles", len(tiles), "tile_pixels", tiles[0].Area(),
		"workers", r.pool.Workers(), "pooled", r.pool.IsRunning())
	start := time.Now()

	counts := make([]uint, v.Width*v.Height)
	jobs := make([]func(), len(tiles))
	for i, t := range tiles {
		jobs[i] = func() {
			t.Each(func(x, y int) {
				counts[y*v.Width+x] = r.count(grid.Point(x, y))
			})
		}
	}
	r.pool.Run(jobs)

	log.Info("render finished", "pixels", len(counts), "elapsed", time.Since(start))
	if r.memo != nil {
		s := r.memo.Stats()
		log.Debug("escape cache", "entries", s.Len, "hits", s.Hits, "misses", s.Misses, "evictions", s.Evictions,
			"hit_rate", s.HitRate())
	}
	return counts, nil
}

func (r *Renderer) count(c exact.Complex) uint {
	n := r.opts.iterations
	if r.memo == nil {
		return escape.Iterate(c, n)
	}
	return r.memo.GetOrCreate(pointKey{c: c, n: n}, func() uint {
		return escape.Iterate(c, n)
	})
}

// Render evaluates v and shades each pixel.
func (r *Renderer) Render(v View) (*Raster, error) {
	counts, err := r.Counts(v)
	if err != nil {
		return nil, err
	}

	img := NewRaster(v.Width, v.Height)
	for i, n := range counts {
		img.pix[i] = r.opts.shader(n, r.opts.iterations)
	}
	return img, nil
}

// Render is a convenience wrapper that renders v with a temporary Renderer.
func Render(v View, opts ...Option) (*Raster, error) {
	r := NewRenderer(opts...)
	defer r.Close()
	return r.Render(v)
}
