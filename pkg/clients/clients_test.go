package clients

import (
	"errors"
	"testing"

	errs "signalhub/pkg/errors"
)

func TestNewManager(t *testing.T) {
	m := NewManager(DefaultOptions())
	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.Count() != 0 {
		t.Error("Manager should have no clients initially")
	}
}

func TestRegisterNilConn(t *testing.T) {
	m := NewManager(DefaultOptions())
	if _, err := m.Register("A", nil); err == nil {
		t.Error("Register should fail for a nil connection")
	}
}

func TestGetNonExistent(t *testing.T) {
	m := NewManager(DefaultOptions())
	if _, ok := m.Get("non-existent"); ok {
		t.Error("Get should return false for non-existent client")
	}
	if m.Has("non-existent") {
		t.Error("Has should return false for non-existent client")
	}
}

func TestSendToNonExistent(t *testing.T) {
	m := NewManager(DefaultOptions())
	err := m.SendTo("non-existent", map[string]string{"type": "test"})
	if err == nil {
		t.Fatal("SendTo should fail for non-existent client")
	}
	if !errors.Is(err, errs.ErrClientNotFound) {
		t.Errorf("Expected ErrClientNotFound, got %v", err)
	}
}

func TestUnregisterAbsentIsNoop(t *testing.T) {
	m := NewManager(DefaultOptions())
	m.Unregister("never-registered")
	m.Unregister("never-registered")
	if m.Count() != 0 {
		t.Error("Count should remain 0")
	}
}

func TestClientSendAfterClose(t *testing.T) {
	c := &ClientImpl{
		id:   "A",
		send: make(chan any, 1),
		done: make(chan struct{}),
	}
	close(c.done)

	err := c.Send("hello")
	if !errors.Is(err, errs.ErrClientClosed) {
		t.Errorf("Expected ErrClientClosed, got %v", err)
	}
	if !c.IsClosed() {
		t.Error("IsClosed should be true")
	}
}

func TestClientSendBufferFull(t *testing.T) {
	c := &ClientImpl{
		id:   "A",
		send: make(chan any, 1),
		done: make(chan struct{}),
	}

	if err := c.Send("first"); err != nil {
		t.Fatalf("First send should fit in the buffer: %v", err)
	}
	err := c.Send("second")
	if !errors.Is(err, errs.ErrSendBufferFull) {
		t.Errorf("Expected ErrSendBufferFull, got %v", err)
	}
}

func TestIDsEmpty(t *testing.T) {
	m := NewManager(DefaultOptions())
	if ids := m.IDs(); len(ids) != 0 {
		t.Errorf("Expected no IDs, got %v", ids)
	}
}
