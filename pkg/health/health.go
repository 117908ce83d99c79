package health

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// Status represents the health status of the server
type Status string

const (
	StatusHealthy Status = "healthy"
)

// Report represents a point-in-time server health snapshot
type Report struct {
	Status        Status    `json:"status"`
	Uptime        int64     `json:"uptime_seconds"`
	Timestamp     time.Time `json:"timestamp"`
	ActiveClients int       `json:"active_clients"`
	ActiveRooms   int       `json:"active_rooms"`
	Goroutines    int       `json:"goroutines"`
	MemoryMB      uint64    `json:"memory_mb"`
	CPUPercent    float64   `json:"cpu_percent"`
}

// Monitor tracks server uptime and process resource usage
type Monitor struct {
	startTime time.Time
	proc      *process.Process
}

// NewMonitor creates a new health monitor for the current process
func NewMonitor() *Monitor {
	// A process handle failure only degrades the report, never startup
	proc, _ := process.NewProcess(int32(os.Getpid()))
	return &Monitor{
		startTime: time.Now(),
		proc:      proc,
	}
}

// GetReport returns the current server health
func (m *Monitor) GetReport(activeClients, activeRooms int) *Report {
	report := &Report{
		Status:        StatusHealthy,
		Uptime:        int64(time.Since(m.startTime).Seconds()),
		Timestamp:     time.Now(),
		ActiveClients: activeClients,
		ActiveRooms:   activeRooms,
		Goroutines:    runtime.NumGoroutine(),
	}

	if m.proc != nil {
		if mem, err := m.proc.MemoryInfo(); err == nil && mem != nil {
			report.MemoryMB = mem.RSS / 1024 / 1024
		}
		if cpu, err := m.proc.CPUPercent(); err == nil {
			report.CPUPercent = cpu
		}
	}
	return report
}
