package health

import (
	"testing"
	"time"
)

func TestNewMonitor(t *testing.T) {
	m := NewMonitor()
	if m == nil {
		t.Fatal("NewMonitor returned nil")
	}
}

func TestGetReport(t *testing.T) {
	m := NewMonitor()
	m.startTime = time.Now().Add(-2 * time.Second)

	report := m.GetReport(3, 2)
	if report.Status != StatusHealthy {
		t.Errorf("Expected healthy status, got %s", report.Status)
	}
	if report.ActiveClients != 3 {
		t.Errorf("Expected 3 active clients, got %d", report.ActiveClients)
	}
	if report.ActiveRooms != 2 {
		t.Errorf("Expected 2 active rooms, got %d", report.ActiveRooms)
	}
	if report.Uptime < 2 {
		t.Errorf("Expected uptime >= 2s, got %d", report.Uptime)
	}
	if report.Goroutines < 1 {
		t.Error("Goroutine count should be positive")
	}
}
