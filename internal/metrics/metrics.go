package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	registry *prometheus.Registry

	CipherRequests    *prometheus.CounterVec
	CipherErrors      *prometheus.CounterVec
	CipherLetters     prometheus.Counter
	CipherPassthrough prometheus.Counter
	CipherDurations   *prometheus.HistogramVec

	KeysheetRandomized *prometheus.CounterVec

	APIRequests  *prometheus.CounterVec
	APIDurations *prometheus.HistogramVec
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		CipherRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_requests_total",
			Help: "The total number of successful cipher operations",
		}, []string{"op"}),
		CipherErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_errors_total",
			Help: "The total number of cipher operations rejected due to invalid input",
		}, []string{"op"}),
		CipherLetters: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "cipher_letters_total",
			Help: "The total number of letters passed through the rotors",
		}),
		CipherPassthrough: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "cipher_passthrough_total",
			Help: "The total number of non-letter characters copied to the output unchanged",
		}),
		CipherDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cipher_duration_seconds",
			Help:    "Duration of cipher operations",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"op"}),
		KeysheetRandomized: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "keysheet_randomized_total",
			Help: "The total number of generated random key sheets",
		}, []string{"seeded"}),
		APIRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "The total number of handled API requests",
		}, []string{"route", "status"}),
		APIDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "api_duration_seconds",
			Help: "Duration of API requests",
		}, []string{"route"}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}
