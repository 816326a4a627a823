package uipaint

import "log/slog"

// Option configures a Painter during creation.
//
// Example:
//
//	// Default configuration
//	p := uipaint.NewPainter()
//
//	// Mipmaps disabled for backends that mishandle minification chains
//	p := uipaint.NewPainter(uipaint.WithoutMipmaps())
type Option func(*painterOptions)

// painterOptions holds optional configuration for Painter creation.
type painterOptions struct {
	mipmaps bool
	logger  *slog.Logger
}

// defaultOptions returns the default painter options.
func defaultOptions() painterOptions {
	return painterOptions{
		mipmaps: true,
		logger:  nil, // Falls back to the package logger.
	}
}

// WithoutMipmaps disables mip-level generation for all cached texture
// paints. Minified sampling then always reads the base level, regardless
// of the texture's minification filter. Use this as a compatibility
// fallback when pre-filtered minification produces artifacts.
func WithoutMipmaps() Option {
	return func(o *painterOptions) {
		o.mipmaps = false
	}
}

// WithLogger sets a logger for this Painter, overriding the package-level
// logger configured with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *painterOptions) {
		o.logger = l
	}
}
