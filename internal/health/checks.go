package health

import (
	"context"
	"fmt"
	"time"

	"github.com/headless-commerce/storefront-gateway/internal/config"
	"github.com/headless-commerce/storefront-gateway/internal/woocommerce"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// NewStatusHandler wires the component-level checks served at /status. The
// gateway's own /api/health endpoint keeps the legacy aggregate shape; this
// one is for orchestrators.
func NewStatusHandler(cfg *config.Config, wc *woocommerce.Client) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront-gateway",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: true,
				Check: healthRedis.New(healthRedis.Config{
					DSN: cfg.RedisConnect.URL,
				}),
			},
			health.Config{
				Name:      "woocommerce",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: func(ctx context.Context) error {
					if ok, _ := wc.Ping(ctx); !ok {
						return fmt.Errorf("store API is unreachable")
					}
					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
