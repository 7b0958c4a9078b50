package dto

import "time"

// MemoryInfo is the heap usage block of the health payload.
type MemoryInfo struct {
	Used  string `json:"used"`
	Total string `json:"total"`
}

// HealthEndpoint describes one route in the health listing.
type HealthEndpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// HealthResponse is the data payload of GET /health.
type HealthResponse struct {
	Service     string           `json:"service"`
	Version     string           `json:"version"`
	Environment string           `json:"environment"`
	Timestamp   time.Time        `json:"timestamp"`
	Uptime      string           `json:"uptime"`
	Memory      MemoryInfo       `json:"memory"`
	Database    map[string]int   `json:"database"`
	Endpoints   []HealthEndpoint `json:"endpoints"`
}
