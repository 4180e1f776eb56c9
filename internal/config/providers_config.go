package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const DefaultProviderTimeout = 15 * time.Second

type ProvidersConfig struct {
	Timeout  time.Duration  `mapstructure:"timeout"`
	HH       HHConfig       `mapstructure:"hh"`
	SuperJob SuperJobConfig `mapstructure:"superjob"`
}

type HHConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type SuperJobConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

func (config ProvidersConfig) validate() error {
	var errs []error

	if config.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive"))
	}
	if config.HH.BaseURL == "" {
		errs = append(errs, fmt.Errorf("missing variable: hh.base_url"))
	}
	if config.SuperJob.BaseURL == "" {
		errs = append(errs, fmt.Errorf("missing variable: superjob.base_url"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config ProvidersConfig) bindEnvironmentVariables(v *viper.Viper) error {
	var errs []error

	if err := v.BindEnv("providers.timeout", "PROVIDERS_TIMEOUT"); err != nil {
		errs = append(errs, err)
	}

	if err := v.BindEnv("providers.hh.base_url", "HH_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := v.BindEnv("providers.superjob.base_url", "SJ_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := v.BindEnv("providers.superjob.api_key", "SJ_API_KEY", "SJ-API-KEY"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
