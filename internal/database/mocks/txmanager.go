// Package mocks provides test doubles for the database package.
package mocks

import (
	"context"
	"testing"
)

// MockTxManager is a TxManager test double that runs the callback without a
// real transaction. Repository calls made inside the callback hit whatever
// fake the test wired in.
type MockTxManager struct {
	t *testing.T

	// WithTxErr, when set, is returned without invoking the callback.
	WithTxErr error
	// Calls counts WithTx invocations.
	Calls int
}

// NewMockTxManager creates a MockTxManager bound to the test.
func NewMockTxManager(t *testing.T) *MockTxManager {
	t.Helper()
	return &MockTxManager{t: t}
}

// WithTx runs fn with the given context, simulating a committed transaction.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.WithTxErr != nil {
		return m.WithTxErr
	}
	return fn(ctx)
}
