package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/monjit-TAM/portfolio-analyser/internal/database"
)

// SystemHandlers serves health and system statistics endpoints.
type SystemHandlers struct {
	log        zerolog.Logger
	analysisDB *database.DB
	cacheDB    *database.DB
	startedAt  time.Time
}

// NewSystemHandlers creates the system endpoint handlers.
func NewSystemHandlers(log zerolog.Logger, analysisDB, cacheDB *database.DB) *SystemHandlers {
	return &SystemHandlers{
		log:        log.With().Str("component", "system_handlers").Logger(),
		analysisDB: analysisDB,
		cacheDB:    cacheDB,
		startedAt:  time.Now(),
	}
}

// HandleHealth reports service liveness with quick database checks.
// GET /health, GET /api/health
func (h *SystemHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	databases := map[string]string{}

	for _, db := range []*database.DB{h.analysisDB, h.cacheDB} {
		if db == nil {
			continue
		}
		if err := db.QuickCheck(r.Context()); err != nil {
			h.log.Warn().Err(err).Str("database", db.Name()).Msg("Database quick check failed")
			databases[db.Name()] = "unreachable"
			status = "degraded"
		} else {
			databases[db.Name()] = "ok"
		}
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]interface{}{
		"status":         status,
		"databases":      databases,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}

// HandleSystemStats reports process and host resource usage.
// GET /api/system/stats
func (h *SystemHandlers) HandleSystemStats(w http.ResponseWriter, r *http.Request) {
	stats := map[string]interface{}{
		"goroutines":     runtime.NumGoroutine(),
		"go_version":     runtime.Version(),
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["heap_alloc_bytes"] = memStats.HeapAlloc
	stats["heap_sys_bytes"] = memStats.HeapSys

	if vm, err := mem.VirtualMemory(); err == nil {
		stats["memory"] = map[string]interface{}{
			"total_bytes":     vm.Total,
			"available_bytes": vm.Available,
			"used_percent":    vm.UsedPercent,
		}
	} else {
		h.log.Warn().Err(err).Msg("Failed to read system memory stats")
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats["cpu_percent"] = percents[0]
	} else if err != nil {
		h.log.Warn().Err(err).Msg("Failed to read CPU stats")
	}

	writeJSON(w, http.StatusOK, stats)
}

// HandleDatabaseStats reports file and page statistics per database.
// GET /api/system/database/stats
func (h *SystemHandlers) HandleDatabaseStats(w http.ResponseWriter, r *http.Request) {
	out := map[string]interface{}{}
	for _, db := range []*database.DB{h.analysisDB, h.cacheDB} {
		if db == nil {
			continue
		}
		stats, err := db.GetStats()
		if err != nil {
			h.log.Warn().Err(err).Str("database", db.Name()).Msg("Failed to read database stats")
			out[db.Name()] = map[string]string{"error": "unavailable"}
			continue
		}
		out[db.Name()] = stats
	}
	writeJSON(w, http.StatusOK, out)
}
