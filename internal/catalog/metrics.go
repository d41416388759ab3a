package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// catalogRecords is the record count of the current snapshot.
	catalogRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cuppa_catalog_records",
		Help: "Number of records in the current catalog snapshot",
	})

	// catalogReloadsTotal counts successful catalog loads.
	catalogReloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cuppa_catalog_reloads_total",
		Help: "Total number of successful catalog loads",
	})

	// catalogReloadFailuresTotal counts failed catalog loads.
	catalogReloadFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cuppa_catalog_reload_failures_total",
		Help: "Total number of failed catalog loads",
	})
)
