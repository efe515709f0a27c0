// Cinerank - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerank

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrSimulatedFailure is returned by a MockService while it has failures left.
var ErrSimulatedFailure = errors.New("simulated failure")

// MockService is a controllable suture.Service for supervisor tests.
// It fails the first N runs, then blocks until its context is canceled.
type MockService struct {
	name     string
	starts   atomic.Int32
	stops    atomic.Int32
	failures atomic.Int32
}

// NewMockService creates a MockService that never fails.
func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

// FailTimes makes the next n runs return ErrSimulatedFailure.
func (m *MockService) FailTimes(n int) *MockService {
	m.failures.Store(int32(n))
	return m
}

// Serve implements suture.Service.
func (m *MockService) Serve(ctx context.Context) error {
	m.starts.Add(1)
	defer m.stops.Add(1)

	if m.failures.Add(-1) >= 0 {
		return ErrSimulatedFailure
	}
	m.failures.Store(0)

	<-ctx.Done()
	return ctx.Err()
}

// StartCount returns how many times Serve was entered.
func (m *MockService) StartCount() int32 {
	return m.starts.Load()
}

// StopCount returns how many times Serve returned.
func (m *MockService) StopCount() int32 {
	return m.stops.Load()
}

func (m *MockService) String() string {
	return m.name
}
