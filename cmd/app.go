package main

import (
	"os"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/vacancy-saver/internal/clients/hh"
	"github.com/maxaizer/vacancy-saver/internal/clients/superjob"
	"github.com/maxaizer/vacancy-saver/internal/config"
	"github.com/maxaizer/vacancy-saver/internal/logger"
	"github.com/maxaizer/vacancy-saver/internal/metrics"
	"github.com/maxaizer/vacancy-saver/internal/repositories"
	"github.com/maxaizer/vacancy-saver/internal/services"
	log "github.com/sirupsen/logrus"
)

const searchCacheTTL = 10 * time.Minute

type app struct {
	cfg     *config.Config
	bus     EventBus.Bus
	service *services.VacanciesService
}

func newApp(configPath, storageFile string) (*app, error) {

	if configPath != "" {
		_ = os.Setenv("CONFIG_PATH", configPath)
	}
	cfg := config.Get()
	if storageFile != "" {
		cfg.Storage.File = storageFile
	}

	logger.Setup(cfg.Logger)
	metrics.StartMetricsServer(cfg.Metrics.Address)

	hhClient := hh.NewClient(cfg.Providers.HH.BaseURL, cfg.Providers.Timeout)
	sjClient := superjob.NewClient(cfg.Providers.SuperJob.BaseURL, cfg.Providers.SuperJob.APIKey, cfg.Providers.Timeout)

	providers := []services.Provider{
		services.NewCachedProvider(services.NewHeadHunterProvider(hhClient), searchCacheTTL),
		services.NewCachedProvider(services.NewSuperJobProvider(sjClient, cfg.Providers.SuperJob.APIKey != ""), searchCacheTTL),
	}

	bus := EventBus.New()
	service, err := services.NewVacanciesService(bus, repositories.NewVacanciesFile(cfg.Storage.File), providers...)
	if err != nil {
		return nil, err
	}

	log.Debugf("vacancies are stored in %s", cfg.Storage.File)
	return &app{cfg: cfg, bus: bus, service: service}, nil
}
