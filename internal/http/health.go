package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/circuitbreaker"
	"github.com/guttosm/postage-comparator/internal/repository"
)

// HealthChecker is a dependency probed by /readyz.
type HealthChecker interface {
	Check() error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// RegisterChecker registers a dependency probed by the readiness endpoint.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @ExampleResponse 200 {"status": "ok"}
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Returns OK if storage answers and no storage circuit breaker is open.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @ExampleResponse 200 {"status": "ok", "checks": {"storage": "ok"}}
// @ExampleResponse 503 {"status": "degraded", "checks": {"storage": "connection failed", "mongodb_items_circuit": "open"}}
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := make(map[string]interface{}, len(h.checkers)+len(h.circuitBreakers))
	ready := true

	for name, checker := range h.checkers {
		result := "ok"
		if err := checker.Check(); err != nil {
			result, ready = err.Error(), false
		}
		checks[name] = result
	}

	// An open or probing breaker means storage calls are being shed.
	for name, cb := range h.circuitBreakers {
		snap := cb.Snapshot()
		checks[name+"_circuit"] = snap.State.String()
		ready = ready && snap.Healthy()
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": checks})
}

// StorageChecker adapts a storage health probe to HealthChecker.
type StorageChecker struct {
	Storage repository.HealthChecker
	Timeout time.Duration
}

const defaultStorageProbeTimeout = 2 * time.Second

// Check runs the storage probe bounded by Timeout, or two seconds when unset.
func (s StorageChecker) Check() error {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultStorageProbeTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.Storage.HealthCheck(ctx); err != nil {
		return fmt.Errorf("storage probe: %w", err)
	}
	return nil
}
