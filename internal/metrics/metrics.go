package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vacancies_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	NormalizedVacanciesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vacancies_normalized_total",
			Help: "Total number of provider listings normalized into vacancies.",
		},
		[]string{"provider"},
	)
	MissingListingsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vacancies_missing_listings_total",
			Help: "Requested positions the provider returned no listing for.",
		},
		[]string{"provider"},
	)
	SalaryFallbacksCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vacancies_salary_fallbacks_total",
			Help: "Listings without salary that were stored with zero bounds.",
		},
		[]string{"provider"},
	)
	StoreOperationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vacancies_store_operations_total",
			Help: "Document operations by kind and result.",
		},
		[]string{"operation", "result"},
	)
	ProviderRequestDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "vacancies_provider_request_duration_seconds",
			Help:       "Duration of provider search requests.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"provider"},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(NormalizedVacanciesCounter)
		prometheus.MustRegister(MissingListingsCounter)
		prometheus.MustRegister(SalaryFallbacksCounter)
		prometheus.MustRegister(StoreOperationsCounter)
		prometheus.MustRegister(ProviderRequestDuration)
	})
}

// StartMetricsServer is a no-op for an empty address.
func StartMetricsServer(address string) {
	Register()
	if address == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(address, mux); err != nil {
			log.Errorf("metrics server stopped: %v", err)
		}
	}()
	log.Infof("metrics server listening on %s", address)
}
