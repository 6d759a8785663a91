package scene

import (
	"log/slog"

	"github.com/gogpu/pixgeom"
)

// Option configures a Scene during creation.
//
// Example:
//
//	s := scene.New(scene.WithLogger(slog.Default()))
type Option func(*options)

// options holds optional configuration for Scene creation.
type options struct {
	logger   *slog.Logger
	capacity int
}

// defaultOptions returns the default scene options.
func defaultOptions() options {
	return options{
		logger: nil, // Falls back to pixgeom.Logger()
	}
}

// WithLogger sets the logger used by the scene.
// Without it the scene logs through pixgeom.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCapacity preallocates room for n points.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func (o options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return pixgeom.Logger()
}
