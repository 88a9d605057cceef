package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthHTTP "github.com/hellofresh/health-go/v5/checks/http"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// Pinger is satisfied by the order publisher's connection pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoints struct {
	Broker Pinger
}

// NewHealthHandler registers a check per configured backend, so a mock
// catalog with no redis reports only system info.
func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	var checks []health.Config

	switch cfg.Source.Kind {
	case config.SourcePostgres:
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	case config.SourceREST:
		checks = append(checks, health.Config{
			Name:      "catalog-api",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: healthHTTP.New(healthHTTP.Config{
				URL:            cfg.Source.BaseURL,
				RequestTimeout: cfg.Source.Timeout,
			}),
		})
	}

	if cfg.RedisConnect.Enabled {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		})
	}

	if cfg.RabbitMQ.Enabled {
		checks = append(checks, health.Config{
			Name:      "rabbitmq",
			Timeout:   3 * time.Second,
			SkipOnErr: true,
			Check:     brokerCheck(endpoints),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{

			Name:    "herbal-storefront",
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

func brokerCheck(endpoints *Endpoints) health.CheckFunc {
	return func(ctx context.Context) error {
		if endpoints == nil || endpoints.Broker == nil {
			return errors.New("rabbitmq publisher is not initialized")
		}

		if err := endpoints.Broker.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach rabbitmq: %w", err)
		}

		return nil
	}
}
