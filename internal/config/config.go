// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/oybekdev/crif-gateway/internal/criferr"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	CRIF       `yaml:"crif"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// CRIF структура для настройки подключения к бюро
type CRIF struct {
	EndpointURL    string        `yaml:"endpoint_url" env:"CRIF_ENDPOINT_URL"`
	UserID         string        `yaml:"user_id" env:"CRIF_USER_ID"`
	Password       string        `yaml:"password" env:"CRIF_PASSWORD"`
	Timeout        time.Duration `yaml:"timeout" env-default:"30s"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps" env-default:"10"`
	RateLimitBurst int           `yaml:"rate_limit_burst" env-default:"10"`
}

// MustLoad загружает конфиг из файла, указанного в CONFIG_PATH, и
// завершает процесс при любой ошибке загрузки или валидации.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
	return &cfg
}

// Validate проверяет обязательные настройки подключения к бюро.
func (c *Config) Validate() error {
	if c.CRIF.EndpointURL == "" {
		return criferr.New(criferr.KindConfiguration, "endpoint url is required")
	}
	if _, err := url.ParseRequestURI(c.CRIF.EndpointURL); err != nil {
		return criferr.Wrap(criferr.KindConfiguration, "endpoint url is malformed", err)
	}
	if c.CRIF.UserID == "" {
		return criferr.New(criferr.KindConfiguration, "user id is required")
	}
	if c.CRIF.Password == "" {
		return criferr.New(criferr.KindConfiguration, "password is required")
	}
	return nil
}
