package qmandel

import (
	"github.com/gogpu/qmandel/escape"
	"github.com/gogpu/qmandel/internal/parallel"
)

// Option configures a Renderer.
//
// Example:
//
//	r := qmandel.NewRenderer(
//	    qmandel.WithIterations(8),
//	    qmandel.WithWorkers(4),
//	    qmandel.WithCache(0),
//	)
type Option func(*options)

type options struct {
	iterations uint
	workers    int
	tileSize   int
	cache      bool
	cacheSize  int
	shader     Shader
}

func defaultOptions() options {
	return options{
		iterations: escape.DefaultIterations,
		workers:    0, // GOMAXPROCS
		tileSize:   parallel.DefaultTileSize,
		shader:     Grayscale,
	}
}

// WithIterations sets the iteration budget per pixel.
// Zero keeps escape.DefaultIterations.
func WithIterations(n uint) Option {
	return func(o *options) {
		if n > 0 {
			o.iterations = n
		}
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithTileSize sets the edge length of the square tiles handed to workers.
func WithTileSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.tileSize = n
		}
	}
}

// WithCache enables memoization of escape results across renders made by
// the same Renderer. entriesPerShard <= 0 selects cache.DefaultCapacity.
func WithCache(entriesPerShard int) Option {
	return func(o *options) {
		o.cache = true
		o.cacheSize = entriesPerShard
	}
}

// WithShader replaces the grayscale intensity mapping.
func WithShader(s Shader) Option {
	return func(o *options) {
		if s != nil {
			o.shader = s
		}
	}
}
