package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"reportboard/internal/reporting/application"
	"reportboard/internal/reporting/domain"
)

// SnapshotCollector publishes the flattened snapshots of every range.
type SnapshotCollector struct {
	provider domain.Provider
	descs    map[string]*prometheus.Desc
}

// NewSnapshotCollector builds one descriptor per sample name
func NewSnapshotCollector(provider domain.Provider) (*SnapshotCollector, error) {
	samples, err := application.CollectSamples(provider)
	if err != nil {
		return nil, err
	}

	descs := make(map[string]*prometheus.Desc)
	for _, s := range samples {
		if _, ok := descs[s.Name]; ok {
			continue
		}
		descs[s.Name] = prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", s.Name),
			fmt.Sprintf("Reference snapshot value %s", s.Name),
			s.Labels.Keys(),
			nil,
		)
	}

	return &SnapshotCollector{provider: provider, descs: descs}, nil
}

func (c *SnapshotCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descs {
		ch <- d
	}
}

func (c *SnapshotCollector) Collect(ch chan<- prometheus.Metric) {
	samples, err := application.CollectSamples(c.provider)
	if err != nil {
		for _, d := range c.descs {
			ch <- prometheus.NewInvalidMetric(d, err)
		}
		return
	}

	for _, s := range samples {
		desc, ok := c.descs[s.Name]
		if !ok {
			continue
		}

		keys := s.Labels.Keys()
		values := make([]string, 0, len(keys))
		for _, k := range keys {
			values = append(values, s.Labels[k])
		}

		// reference figures are fixed per range, never monotonic counters
		m, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, s.Value, values...)
		if err != nil {
			m = prometheus.NewInvalidMetric(desc, err)
		}
		ch <- m
	}
}
