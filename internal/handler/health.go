package handler

import (
	"net/http"
	"runtime"
	"time"

	"stockroom-api/internal/repository"
	"stockroom-api/pkg/response"
)

// Handler contains the public liveness and status endpoints.
type Handler struct {
	repo      repository.ItemRepository
	storeType string
	startTime time.Time
}

// New creates a new handler.
func New(repo repository.ItemRepository, storeType string) *Handler {
	return &Handler{
		repo:      repo,
		storeType: storeType,
		startTime: time.Now(),
	}
}

// Root handles GET / (liveness probe, no auth).
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response.Message(w, "Inventory Management API is running")
}

// Status handles GET /api/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	stats := make(map[string]interface{})

	stats["status"] = "ok"
	stats["server_time"] = time.Now().UTC().Format(time.RFC3339)
	stats["uptime_seconds"] = int64(time.Since(h.startTime).Seconds())
	stats["store_type"] = h.storeType

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["memory"] = map[string]interface{}{
		"alloc_mb":   float64(memStats.Alloc) / 1024 / 1024,
		"sys_mb":     float64(memStats.Sys) / 1024 / 1024,
		"num_gc":     memStats.NumGC,
		"goroutines": runtime.NumGoroutine(),
	}

	if h.repo != nil {
		storeStats, err := h.repo.Stats(r.Context())
		if err == nil {
			stats["store"] = storeStats
		} else {
			stats["store"] = map[string]interface{}{"error": err.Error()}
		}
	}

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	response.OK(w, stats)
}
