package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/vacancy-saver/internal/entities"
	"github.com/maxaizer/vacancy-saver/internal/events"
	"github.com/maxaizer/vacancy-saver/internal/logger"
	"github.com/maxaizer/vacancy-saver/internal/normalizer"
	"github.com/maxaizer/vacancy-saver/internal/repositories"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type SaveMode int

const (
	Overwrite SaveMode = iota
	Append
)

type vacancyStore interface {
	Initialize(batch entities.Batch) error
	Append(batch entities.Batch) error
	Enumerate() ([]entities.Vacancy, error)
	Delete(name, town string) (int, error)
}

type VacanciesService struct {
	bus       EventBus.Bus
	store     vacancyStore
	providers map[entities.Provider]Provider
}

func NewVacanciesService(bus EventBus.Bus, store vacancyStore, providers ...Provider) (*VacanciesService, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if store == nil {
		return nil, errors.New("store is nil")
	}

	registered := make(map[entities.Provider]Provider, len(providers))
	for _, provider := range providers {
		if provider == nil {
			return nil, errors.New("provider is nil")
		}
		registered[provider.Name()] = provider
	}

	return &VacanciesService{bus: bus, store: store, providers: registered}, nil
}

// Search fetches and normalizes up to quantity vacancies. Nothing is stored.
func (s *VacanciesService) Search(ctx context.Context, name entities.Provider, keyword string, quantity int) (normalizer.Result, error) {

	provider, ok := s.providers[name]
	if !ok {
		return normalizer.Result{}, entities.ErrUnknownProvider
	}

	result, err := provider.Search(ctx, keyword, quantity)
	if err != nil {
		log.WithField(logger.ErrorTypeField, errorTypeFor(name)).Errorf("search for %q failed: %v", keyword, err)
		return normalizer.Result{}, err
	}

	log.Infof("%s: found %d vacancies for %q", name.Title(), result.Found(), keyword)
	s.bus.Publish(events.VacanciesFoundTopic, events.VacanciesFound{
		Provider: name,
		Keyword:  keyword,
		Found:    result.Found(),
		Missing:  len(result.Missing),
	})
	return result, nil
}

// Save writes batch to the document. Appending to a document that does not exist yet
// creates it.
func (s *VacanciesService) Save(batch entities.Batch, mode SaveMode) error {

	var err error
	if mode == Append {
		err = s.store.Append(batch)
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			log.Warn("no saved vacancies yet, creating a new document")
			err = s.store.Initialize(batch)
		}
	} else {
		err = s.store.Initialize(batch)
	}

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).Errorf("failed to save vacancies: %v", err)
		return err
	}

	log.Debugf("saved %d vacancies", len(batch))
	return nil
}

func (s *VacanciesService) List() ([]entities.Vacancy, error) {
	vacancies, err := s.store.Enumerate()
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).Errorf("failed to read vacancies: %v", err)
		return nil, err
	}
	return vacancies, nil
}

func (s *VacanciesService) Sorted(descending bool) ([]entities.Vacancy, error) {
	vacancies, err := s.List()
	if err != nil {
		return nil, err
	}
	entities.SortBySalary(vacancies, descending)
	return vacancies, nil
}

func (s *VacanciesService) Delete(name, town string) (int, error) {
	removed, err := s.store.Delete(name, town)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeStorage).Errorf("failed to delete vacancy: %v", err)
		return 0, err
	}

	log.Infof("removed %d vacancies named %q in %q", removed, name, town)
	return removed, nil
}

func errorTypeFor(provider entities.Provider) string {
	if provider == entities.SuperJob {
		return logger.ErrorTypeSuperJobApi
	}
	return logger.ErrorTypeHhApi
}
