// Package mutation provides options and error definitions for seed
// mutation over a quiver.
package mutation

import "errors"

// Sentinel errors for mutation.
var (
	// ErrQuiverNil is returned if a nil quiver pointer is passed.
	ErrQuiverNil = errors.New("mutation: quiver is nil")

	// ErrFrozenMutation is returned when the pivot names a frozen vertex;
	// mutation is defined only at cluster vertices.
	ErrFrozenMutation = errors.New("mutation: cannot mutate at a frozen vertex")
)

// Option configures mutation behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks observing the arc rewrites of one mutation.
type Options struct {
	// OnReverse is called once per pivot-incident arc whose direction is
	// reversed, with the pre-mutation orientation and weight.
	OnReverse func(from, to string, weight int64)

	// OnAdjust is called for each non-incident ordered pair whose net
	// weight changes, with old and new values. Pairs pruned to zero report
	// next == 0.
	OnAdjust func(u, v string, prev, next int64)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnReverse: func(string, string, int64) {},
		OnAdjust:  func(string, string, int64, int64) {},
	}
}

// WithOnReverse registers a callback for reversed pivot-incident arcs.
func WithOnReverse(fn func(from, to string, weight int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReverse = fn
		}
	}
}

// WithOnAdjust registers a callback for adjusted non-incident pairs.
func WithOnAdjust(fn func(u, v string, prev, next int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdjust = fn
		}
	}
}
