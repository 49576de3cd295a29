package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oybekdev/crif-gateway/internal/criferr"
)

func validConfig() *Config {
	return &Config{
		Env: "local",
		CRIF: CRIF{
			EndpointURL:    "https://cbs.example.uz/MessageGateway",
			UserID:         "user1",
			Password:       "secret",
			Timeout:        30 * time.Second,
			RateLimitRPS:   10,
			RateLimitBurst: 10,
		},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "валидный конфиг",
			mutate: func(c *Config) {},
		},
		{
			name: "пустой endpoint",
			mutate: func(c *Config) {
				c.CRIF.EndpointURL = ""
			},
			wantErr: true,
		},
		{
			name: "кривой endpoint",
			mutate: func(c *Config) {
				c.CRIF.EndpointURL = "not a url"
			},
			wantErr: true,
		},
		{
			name: "пустой user id",
			mutate: func(c *Config) {
				c.CRIF.UserID = ""
			},
			wantErr: true,
		},
		{
			name: "пустой пароль",
			mutate: func(c *Config) {
				c.CRIF.Password = ""
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, criferr.KindConfiguration, criferr.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
