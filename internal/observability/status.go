package observability

import (
	"sync"
	"time"
)

type Mode string

const (
	ModeLive     Mode = "LIVE"
	ModeFallback Mode = "FALLBACK"
)

type SystemStatus struct {
	mu            sync.RWMutex
	CurrentMode   Mode
	Sessions      int
	Requests      uint64
	LastHeartbeat time.Time
}

var globalStatus = &SystemStatus{
	CurrentMode:   ModeLive,
	LastHeartbeat: time.Now(),
}

// SetMode updates the backend routing mode shown on the dashboard.
func SetMode(mode Mode) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()
	globalStatus.CurrentMode = mode
}

// SetSessions updates the open session count.
func SetSessions(n int) {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()
	globalStatus.Sessions = n
}

// CountRequest increments the served-request counter.
func CountRequest() {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()
	globalStatus.Requests++
}

// GetStatus retrieves a copy of the global system status.
func GetStatus() (Mode, int, uint64, time.Time) {
	globalStatus.mu.RLock()
	defer globalStatus.mu.RUnlock()
	return globalStatus.CurrentMode, globalStatus.Sessions, globalStatus.Requests, globalStatus.LastHeartbeat
}

// Heartbeat updates the last heartbeat time.
func Heartbeat() {
	globalStatus.mu.Lock()
	defer globalStatus.mu.Unlock()
	globalStatus.LastHeartbeat = time.Now()
}
