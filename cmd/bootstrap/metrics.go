package bootstrap

import (
	"salon-storefront/internal/metrics"
	"salon-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

// NewMetrics returns nil when metrics are disabled; every recorder treats a
// nil *Metrics as a no-op.
func NewMetrics(cfg config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return metrics.New(cfg.Metrics.Namespace)
}
