package health

import (
	"fmt"
	"time"

	"github.com/commercekit/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthHTTP "github.com/hellofresh/health-go/v5/checks/http"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// NewHealthHandler wires liveness checks for the collaborators the storefront
// cannot serve without: the commerce API, and redis when a cache is
// configured.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:      "commerce-api",
			Timeout:   5 * time.Second,
			SkipOnErr: false,
			Check: healthHTTP.New(healthHTTP.Config{
				URL: cfg.Commerce.BaseURL,
			}),
		},
	}

	if cfg.Redis.Enabled() {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(healthRedis.Config{
				DSN: redisDSN(&cfg.Redis),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

func redisDSN(cfg *config.Redis) string {
	if cfg.Password != "" {
		return fmt.Sprintf("redis://:%s@%s/%d", cfg.Password, cfg.Addr, cfg.DB)
	}

	return fmt.Sprintf("redis://%s/%d", cfg.Addr, cfg.DB)
}
