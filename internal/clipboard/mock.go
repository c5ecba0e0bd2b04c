package clipboard

import (
	"context"
	"sync"
	"time"
)

// Call is one recorded MockWriter.Write
type Call struct {
	Selection string
	Payload   string
	At        time.Time
}

// MockWriter is a simple in-memory writer for testing
type MockWriter struct {
	mu    sync.Mutex
	calls []Call
	err   error
}

// NewMockWriter creates a new mock writer
func NewMockWriter() *MockWriter {
	return &MockWriter{}
}

// SetError makes every following Write return err
func (m *MockWriter) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockWriter) Write(ctx context.Context, selection, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Selection: selection, Payload: payload, At: time.Now()})
	return m.err
}

// Calls returns a copy of the recorded writes
func (m *MockWriter) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}
