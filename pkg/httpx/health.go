package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"
)

const healthProbeTimeout = 2 * time.Second

// Component states reported by HealthHandler.
const (
	StatusUp       = "UP"
	StatusDown     = "DOWN"
	StatusDisabled = "DISABLED"
)

// HealthChecker is any dependency that can be pinged.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// optional is implemented by dependencies that can be switched off, such as
// the read-model cache.
type optional interface {
	Enabled() bool
}

// HealthChecks holds the dependencies probed by HealthHandler. A nil field
// is reported as DISABLED.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// HealthHandler probes every dependency concurrently. The overall status is
// DOWN, with 503, when any enabled dependency fails its ping.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	components := map[string]HealthChecker{
		"database": checks.Database,
		"redis":    checks.Redis,
		"eventBus": checks.EventBus,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		resp := healthResponse{Status: StatusUp, Components: make(map[string]string, len(components))}
		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)
		for name, c := range components {
			wg.Add(1)
			go func() {
				defer wg.Done()
				state := probe(ctx, c)
				mu.Lock()
				defer mu.Unlock()
				resp.Components[name] = state
				if state == StatusDown {
					resp.Status = StatusDown
				}
			}()
		}
		wg.Wait()

		status := http.StatusOK
		if resp.Status != StatusUp {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}

func probe(ctx context.Context, c HealthChecker) string {
	if c == nil {
		return StatusDisabled
	}
	if o, ok := c.(optional); ok && !o.Enabled() {
		return StatusDisabled
	}
	if err := c.Ping(ctx); err != nil {
		return StatusDown
	}
	return StatusUp
}
