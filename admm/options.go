// SPDX-License-Identifier: MIT

// Package admm: functional options for the side-channel collaborators of
// Solve (progress logger, time source, observer). Numerical settings live in
// Params; options never change the iterates.
//
// Constructors panic only on nonsensical arguments (nil), which are
// programmer errors.
package admm

import (
	"log/slog"
	"time"
)

const (
	panicNilLogger   = "admm: WithLogger: logger must be non-nil"
	panicNilClock    = "admm: WithClock: now must be non-nil"
	panicNilObserver = "admm: WithObserver: observer must be non-nil"
)

// Option configures a Solve call.
type Option func(*options)

// options is the resolved option set.
type options struct {
	logger    *slog.Logger
	now       func() time.Time
	observers []Observer
}

// WithLogger sets the destination of the progress stream (Params.Verbose).
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// WithClock replaces the time source used for elapsed-time measurement and
// the time limit. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic(panicNilClock)
	}

	return func(o *options) { o.now = now }
}

// WithObserver registers an Observer. Repeated calls add observers; they are
// notified in registration order.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicNilObserver)
	}

	return func(o *options) { o.observers = append(o.observers, obs) }
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
