// Package normalizer maps raw provider listings onto entities.Record.
//
// Both providers share one routine: positions [0, quantity) are visited regardless of how
// many listings came back, a position without a listing is reported in Result.Missing,
// and a listing without salary information is stored with both bounds set to zero.
package normalizer

import (
	"fmt"

	"github.com/maxaizer/vacancy-saver/internal/clients/hh"
	"github.com/maxaizer/vacancy-saver/internal/clients/superjob"
	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type Result struct {
	Provider  entities.Provider
	Vacancies entities.Batch
	Missing   []int
}

// Found is the number of distinct identifiers normalized.
func (r Result) Found() int {
	return len(r.Vacancies)
}

type mapper[T any] func(listing T) (id string, record entities.Record, salaryMissing bool)

func normalize[T any](provider entities.Provider, listings []T, quantity int, mapListing mapper[T]) Result {

	result := Result{Provider: provider, Vacancies: entities.Batch{}}

	for i := 0; i < quantity; i++ {
		if i >= len(listings) {
			log.Infof("%s: no vacancy found at index %d", provider, i)
			result.Missing = append(result.Missing, i)
			continue
		}

		id, record, salaryMissing := mapListing(listings[i])
		if salaryMissing {
			metrics.SalaryFallbacksCounter.WithLabelValues(string(provider)).Inc()
		}
		result.Vacancies[id] = record
	}

	if len(result.Missing) > 0 {
		metrics.MissingListingsCounter.WithLabelValues(string(provider)).Add(float64(len(result.Missing)))
		log.Infof("%s returned %d of %d requested vacancies", provider.Title(), len(listings), quantity)
	}
	metrics.NormalizedVacanciesCounter.WithLabelValues(string(provider)).Add(float64(len(result.Vacancies)))

	return result
}

func HeadHunter(listings []hh.Vacancy, quantity int) Result {
	return normalize(entities.HeadHunter, listings, quantity, fromHeadHunter)
}

func SuperJob(listings []superjob.Vacancy, quantity int) Result {
	return normalize(entities.SuperJob, listings, quantity, fromSuperJob)
}

// Normalize dispatches on provider; listings must be the provider's raw slice type.
func Normalize(provider entities.Provider, listings any, quantity int) (Result, error) {
	switch provider {
	case entities.HeadHunter:
		typed, ok := listings.([]hh.Vacancy)
		if !ok {
			return Result{}, fmt.Errorf("%s expects []hh.Vacancy, got %T", provider, listings)
		}
		return HeadHunter(typed, quantity), nil
	case entities.SuperJob:
		typed, ok := listings.([]superjob.Vacancy)
		if !ok {
			return Result{}, fmt.Errorf("%s expects []superjob.Vacancy, got %T", provider, listings)
		}
		return SuperJob(typed, quantity), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", entities.ErrUnknownProvider, provider)
	}
}
