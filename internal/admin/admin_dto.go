package admin

import "time"

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
	StatusDown     = "down"
)

type ComponentHealth struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type MemoryStats struct {
	AllocMB     float64 `json:"alloc_mb"`
	HeapInUseMB float64 `json:"heap_in_use_mb"`
	SysMB       float64 `json:"sys_mb"`
	NumGC       uint32  `json:"num_gc"`
}

type SystemHealth struct {
	Status        string                     `json:"status"`
	StartedAt     time.Time                  `json:"started_at"`
	UptimeSeconds float64                    `json:"uptime_seconds"`
	GoVersion     string                     `json:"go_version"`
	Goroutines    int                        `json:"goroutines"`
	Memory        MemoryStats                `json:"memory"`
	Components    map[string]ComponentHealth `json:"components"`
}

type PruneActivityRequest struct {
	OlderThanDays int `json:"older_than_days" binding:"omitempty,min=1,max=3650"`
}

type PruneResponse struct {
	Deleted int64 `json:"deleted"`
}
