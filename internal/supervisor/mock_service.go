// EcoRewards - Gamified Sustainability Challenge Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecorewards

package supervisor

import (
	"context"
	"fmt"
	"sync/atomic"
)

// MockService is a controllable suture.Service for tests. It counts
// starts and stops and can be told to fail a fixed number of times
// before settling into a healthy run loop.
type MockService struct {
	name       string
	startCount atomic.Int64
	stopCount  atomic.Int64
	failCount  atomic.Int64
	err        atomic.Value
}

// NewMockService returns a mock service with the given name.
func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

// SetError makes every subsequent Serve call return err immediately.
func (m *MockService) SetError(err error) {
	m.err.Store(err)
}

// SetFailCount makes the next n Serve calls fail before the service
// runs normally.
func (m *MockService) SetFailCount(n int64) {
	m.failCount.Store(n)
}

// StartCount reports how many times Serve has been entered.
func (m *MockService) StartCount() int64 {
	return m.startCount.Load()
}

// StopCount reports how many times Serve has returned via context
// cancellation.
func (m *MockService) StopCount() int64 {
	return m.stopCount.Load()
}

// Serve implements suture.Service.
func (m *MockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)

	if err, ok := m.err.Load().(error); ok && err != nil {
		return err
	}

	if m.failCount.Load() > 0 {
		m.failCount.Add(-1)
		return fmt.Errorf("mock service %s: induced failure", m.name)
	}

	<-ctx.Done()
	m.stopCount.Add(1)
	return ctx.Err()
}

// String implements fmt.Stringer for supervisor event logs.
func (m *MockService) String() string {
	return m.name
}
