package services

import (
	"context"
	"fmt"
	"time"

	"github.com/maxaizer/vacancy-saver/internal/clients/hh"
	"github.com/maxaizer/vacancy-saver/internal/clients/superjob"
	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/metrics"
	"github.com/maxaizer/vacancy-saver/internal/normalizer"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Provider searches one job board and returns its listings already normalized.
type Provider interface {
	Name() entities.Provider
	Search(ctx context.Context, keyword string, quantity int) (normalizer.Result, error)
}

type hhClient interface {
	GetVacancies(ctx context.Context, parameters hh.SearchParameters) ([]hh.Vacancy, error)
}

type superJobClient interface {
	GetVacancies(ctx context.Context, keyword string, count int) ([]superjob.Vacancy, error)
}

type HeadHunterProvider struct {
	client hhClient
}

func NewHeadHunterProvider(client hhClient) *HeadHunterProvider {
	return &HeadHunterProvider{client: client}
}

func (p *HeadHunterProvider) Name() entities.Provider {
	return entities.HeadHunter
}

// Search asks for a single page, so positions past hh.MaxPerPage are reported as missing.
func (p *HeadHunterProvider) Search(ctx context.Context, keyword string, quantity int) (normalizer.Result, error) {
	if quantity <= 0 {
		return normalizer.Result{}, ErrInvalidQuantity
	}

	params := hh.SearchParameters{Text: keyword, PerPage: min(quantity, hh.MaxPerPage)}

	start := time.Now()
	listings, err := p.client.GetVacancies(ctx, params)
	metrics.ProviderRequestDuration.WithLabelValues(string(p.Name())).Observe(time.Since(start).Seconds())
	if err != nil {
		return normalizer.Result{}, fmt.Errorf("%s search failed: %w", p.Name().Title(), err)
	}

	return normalizer.HeadHunter(listings, quantity), nil
}

type SuperJobProvider struct {
	client    superJobClient
	hasAPIKey bool
}

func NewSuperJobProvider(client superJobClient, hasAPIKey bool) *SuperJobProvider {
	return &SuperJobProvider{client: client, hasAPIKey: hasAPIKey}
}

func (p *SuperJobProvider) Name() entities.Provider {
	return entities.SuperJob
}

func (p *SuperJobProvider) Search(ctx context.Context, keyword string, quantity int) (normalizer.Result, error) {
	if quantity <= 0 {
		return normalizer.Result{}, ErrInvalidQuantity
	}
	if !p.hasAPIKey {
		log.Warn("SuperJob API key is not set, the request will most likely be rejected")
	}

	start := time.Now()
	listings, err := p.client.GetVacancies(ctx, keyword, min(quantity, superjob.MaxCount))
	metrics.ProviderRequestDuration.WithLabelValues(string(p.Name())).Observe(time.Since(start).Seconds())
	if err != nil {
		return normalizer.Result{}, fmt.Errorf("%s search failed: %w", p.Name().Title(), err)
	}

	return normalizer.SuperJob(listings, quantity), nil
}
