// Package config loads and validates the wordbank configuration.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Pool    PoolConfig    `mapstructure:"pool"`
	Daily   DailyConfig   `mapstructure:"daily"`
	Speech  SpeechConfig  `mapstructure:"speech"`
	Remote  RemoteConfig  `mapstructure:"remote"`
	Outputs OutputsConfig `mapstructure:"outputs"`
}

type StorageConfig struct {
	Type  string            `mapstructure:"type" validate:"oneof=file mysql"`
	File  FileStorageConfig `mapstructure:"file"`
	MySQL DatabaseConfig    `mapstructure:"mysql"`
}

type FileStorageConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	TLS      bool   `mapstructure:"tls"`
}

type PoolConfig struct {
	File string `mapstructure:"file" validate:"omitempty,file"`
}

type DailyConfig struct {
	Count int `mapstructure:"count" validate:"gte=1"`
}

type SpeechConfig struct {
	Command     string   `mapstructure:"command"`
	Args        []string `mapstructure:"args"`
	LanguageTag string   `mapstructure:"language_tag"`
}

type RemoteConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	BaseURL       string `mapstructure:"base_url" validate:"required_if=Enabled true,omitempty,url"`
	APIKey        string `mapstructure:"api_key"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type OutputsConfig struct {
	StudySheetDirectory string `mapstructure:"study_sheet_directory"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordbank")
	}

	v.SetDefault("storage.type", "file")
	v.SetDefault("storage.file.directory", filepath.Join("data", "bank"))
	v.SetDefault("storage.mysql.port", 3306)
	v.SetDefault("daily.count", 30)
	v.SetDefault("speech.language_tag", "en-US")
	v.SetDefault("remote.retry_attempts", 3)
	v.SetDefault("outputs.study_sheet_directory", filepath.Join("outputs", "study_sheets"))

	// Secrets come from the environment only, never the config file.
	if err := v.BindEnv("remote.api_key", "WORDBANK_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDBANK_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("storage.mysql.password", "WORDBANK_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDBANK_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
