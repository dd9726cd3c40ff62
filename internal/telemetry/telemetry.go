// SPDX-License-Identifier: MIT

// Package telemetry builds the OpenTelemetry meter behind lvcal's counters.
package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/katalvlaran/lvcal/config"
)

// MeterName scopes every lvcal instrument.
const MeterName = "github.com/katalvlaran/lvcal"

// Providers holds the meter and, for the prometheus exporter, its scrape
// handler. Handler is nil otherwise.
type Providers struct {
	Meter   metric.Meter
	Handler http.Handler

	provider *sdkmetric.MeterProvider
}

// New builds the providers selected by cfg.Exporter. The prometheus exporter
// registers into a private registry so several engines can coexist.
func New(cfg config.MetricsConfig) (*Providers, error) {
	switch cfg.Exporter {
	case "", "none":
		return &Providers{Meter: noop.NewMeterProvider().Meter(MeterName)}, nil
	case "prometheus":
		reg := prometheus.NewRegistry()
		exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
		if err != nil {
			return nil, fmt.Errorf("telemetry: prometheus exporter: %w", err)
		}
		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(resource.NewSchemaless(attribute.String("service.name", "lvcal"))),
			sdkmetric.WithReader(exporter),
		)
		return &Providers{
			Meter:    mp.Meter(MeterName),
			Handler:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			provider: mp,
		}, nil
	default:
		return nil, fmt.Errorf("telemetry: unsupported exporter %q", cfg.Exporter)
	}
}

// Shutdown flushes and stops the meter provider, if any.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p.provider == nil {
		return nil
	}

	return p.provider.Shutdown(ctx)
}
