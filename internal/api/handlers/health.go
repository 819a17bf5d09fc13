package handlers

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/headless-commerce/storefront-gateway/internal/cache"
	"github.com/headless-commerce/storefront-gateway/internal/models"
	"github.com/headless-commerce/storefront-gateway/internal/utils/response"
	"github.com/headless-commerce/storefront-gateway/internal/woocommerce"
)

const upstreamProbeTimeout = 3 * time.Second

type HealthHandler struct {
	cache     cache.Cache
	wc        *woocommerce.Client
	startedAt time.Time
}

func NewHealthHandler(c cache.Cache, wc *woocommerce.Client) *HealthHandler {
	return &HealthHandler{
		cache:     c,
		wc:        wc,
		startedAt: time.Now(),
	}
}

// Health aggregates cache and upstream reachability. Only the cache decides
// the overall status: an unreachable upstream already fails every dependent
// request on its own, while a dead cache degrades silently and would
// otherwise go unnoticed.
func (h *HealthHandler) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		redisHealth := h.cache.HealthCheck(r.Context())

		probeCtx, cancel := context.WithTimeout(r.Context(), upstreamProbeTimeout)
		defer cancel()

		wcOK, wcLatency := h.wc.Ping(probeCtx)

		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		report := models.HealthReport{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(h.startedAt).Seconds(),
			Memory: models.HealthMemory{
				Used:  fmt.Sprintf("%dMB", memStats.HeapAlloc/1024/1024),
				Total: fmt.Sprintf("%dMB", memStats.HeapSys/1024/1024),
			},
		}

		report.Services.Redis = models.HealthService{
			OK:        redisHealth.OK,
			LatencyMs: redisHealth.Latency.Milliseconds(),
		}
		report.Services.WooCommerce = models.HealthService{
			OK:        wcOK,
			LatencyMs: wcLatency.Milliseconds(),
		}

		statusCode := http.StatusOK

		if !redisHealth.OK {
			report.Status = "degraded"
			statusCode = http.StatusMultiStatus
		}

		response.WriteJson(w, statusCode, report)

	}
}
