// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package supervisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// TreeConfig controls restart and shutdown behaviour for the
// supervision tree.
type TreeConfig struct {
	// FailureThreshold is the number of failures tolerated before the
	// supervisor backs off.
	FailureThreshold float64

	// FailureDecay is the number of seconds over which the failure
	// count decays by half.
	FailureDecay float64

	// FailureBackoff is how long the supervisor waits after hitting
	// the failure threshold before restarting services.
	FailureBackoff time.Duration

	// ShutdownTimeout is how long each service gets to stop cleanly.
	ShutdownTimeout time.Duration
}

// DefaultTreeConfig returns the restart policy used in production.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// Tree is the application supervision tree. The root supervisor owns
// an api layer that runs the HTTP server; background workers can be
// attached to the root directly.
type Tree struct {
	root   *suture.Supervisor
	api    *suture.Supervisor
	logger *slog.Logger
	config TreeConfig
}

// NewTree builds the supervision tree. A zero-value config is replaced
// with DefaultTreeConfig.
func NewTree(logger *slog.Logger, config TreeConfig) *Tree {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = DefaultTreeConfig().FailureThreshold
	}
	if config.FailureDecay == 0 {
		config.FailureDecay = DefaultTreeConfig().FailureDecay
	}
	if config.FailureBackoff == 0 {
		config.FailureBackoff = DefaultTreeConfig().FailureBackoff
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = DefaultTreeConfig().ShutdownTimeout
	}

	// sutureslog exposes MustHook on a Handler value; there is no
	// plain EventHook constructor.
	handler := &sutureslog.Handler{Logger: logger}
	eventHook := handler.MustHook()

	spec := suture.Spec{
		EventHook:        eventHook,
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	root := suture.New("ecorewards", spec)
	api := suture.New("api-layer", spec)
	root.Add(api)

	return &Tree{
		root:   root,
		api:    api,
		logger: logger,
		config: config,
	}
}

// AddAPIService attaches a service to the api layer supervisor and
// returns its token for later removal.
func (t *Tree) AddAPIService(service suture.Service) suture.ServiceToken {
	return t.api.Add(service)
}

// AddService attaches a background service directly under the root
// supervisor.
func (t *Tree) AddService(service suture.Service) suture.ServiceToken {
	return t.root.Add(service)
}

// Remove detaches a previously added service without waiting for it
// to stop.
func (t *Tree) Remove(token suture.ServiceToken) error {
	return t.root.Remove(token)
}

// RemoveAndWait detaches a service and blocks until it has stopped or
// the timeout elapses.
func (t *Tree) RemoveAndWait(token suture.ServiceToken, timeout time.Duration) error {
	return t.root.RemoveAndWait(token, timeout)
}

// Serve runs the tree until ctx is cancelled. It blocks; use
// ServeBackground when the caller needs the error asynchronously.
func (t *Tree) Serve(ctx context.Context) error {
	t.logger.Info("starting supervision tree")
	return t.root.Serve(ctx)
}

// ServeBackground starts the tree and returns a channel that receives
// the terminal error once the tree stops.
func (t *Tree) ServeBackground(ctx context.Context) <-chan error {
	t.logger.Info("starting supervision tree in background")
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that failed to stop within the
// shutdown timeout. Only meaningful after Serve has returned.
func (t *Tree) UnstoppedServiceReport() (suture.UnstoppedServiceReport, error) {
	return t.root.UnstoppedServiceReport()
}
