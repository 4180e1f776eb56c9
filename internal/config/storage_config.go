package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const DefaultStorageFile = "saved_vacancies.json"

type StorageConfig struct {
	File string `mapstructure:"file"`
}

func (config StorageConfig) validate() error {
	if config.File == "" {
		return fmt.Errorf("missing variable: storage file")
	}
	return nil
}

func (config StorageConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return v.BindEnv("storage.file", "VACANCIES_FILE")
}
