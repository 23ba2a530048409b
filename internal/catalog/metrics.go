package catalog

import "github.com/prometheus/client_golang/prometheus"

const (
	loadResultOK    = "ok"
	loadResultError = "error"
)

type Metrics struct {
	Products   prometheus.Gauge
	Categories prometheus.Gauge
	Loads      *prometheus.CounterVec
	LastLoad   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Products: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Products in the published snapshot",
		}),
		Categories: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_categories",
			Help: "Distinct categories in the published snapshot",
		}),
		Loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Dataset load attempts by result",
		}, []string{"result"}),
		LastLoad: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_last_load_timestamp_seconds",
			Help: "Unix time of the last successful load",
		}),
	}

	reg.MustRegister(m.Products, m.Categories, m.Loads, m.LastLoad)
	return m
}

func (m *Metrics) observeLoad(s *Snapshot, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Loads.WithLabelValues(loadResultError).Inc()
		return
	}

	m.Loads.WithLabelValues(loadResultOK).Inc()
	m.Products.Set(float64(s.Len()))
	m.Categories.Set(float64(s.CategoryCount()))
	m.LastLoad.Set(float64(s.LoadedAt.Unix()))
}
