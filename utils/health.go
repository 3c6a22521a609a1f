package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			ok := true
			if redisClient != nil {
				checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
				if err := redisClient.Ping(checkCtx).Err(); err != nil {
					ok = false
				}
				cancel()
			}

			healthMu.Lock()
			currentHealth = HealthStatus{
				Redis:     ok,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}
