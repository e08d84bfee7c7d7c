package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reportboard/internal/reporting/application"
	"reportboard/internal/reporting/domain"
)

const namespace = "reportboard"

type Prom struct {
	reg *prometheus.Registry

	LookupsServed     *prometheus.CounterVec
	LookupsRejected   *prometheus.CounterVec
	BreakdownsSkipped *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

func NewProm() *Prom {
	reg := prometheus.NewRegistry()
	p := &Prom{
		reg: reg,
		LookupsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "snapshot_lookups_total", Help: "Snapshots served per domain and range",
		}, []string{"domain", "range"}),
		LookupsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "snapshot_rejected_total", Help: "Snapshot lookups rejected for an invalid range",
		}, []string{"domain"}),
		BreakdownsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "breakdowns_skipped_total", Help: "Breakdowns skipped because their counts sum to zero",
		}, []string{"breakdown"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(p.LookupsServed, p.LookupsRejected, p.BreakdownsSkipped, p.HTTPRequests, p.HTTPDuration)
	return p
}

var _ application.Recorder = (*Prom)(nil)

func (p *Prom) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for gathering in tests and for extra collectors.
func (p *Prom) Registry() *prometheus.Registry { return p.reg }

// RegisterSnapshots exposes every snapshot value as a constant metric.
func (p *Prom) RegisterSnapshots(provider domain.Provider) error {
	c, err := NewSnapshotCollector(provider)
	if err != nil {
		return err
	}
	return p.reg.Register(c)
}

func (p *Prom) SnapshotServed(domainName string, r domain.TimeRange) {
	p.LookupsServed.WithLabelValues(domainName, string(r)).Inc()
}

func (p *Prom) SnapshotRejected(domainName string) {
	p.LookupsRejected.WithLabelValues(domainName).Inc()
}

func (p *Prom) BreakdownSkipped(name application.BreakdownName) {
	p.BreakdownsSkipped.WithLabelValues(string(name)).Inc()
}

// ObserveRequest records one finished HTTP request.
func (p *Prom) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	p.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
