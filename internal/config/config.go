package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppCfg struct{ Env, Port string }

type UpstreamCfg struct {
	BaseURL    string
	TimeoutSec int
}

type RedisCfg struct{ Addr string }
type DBCfg struct{ DSN string }

type SessionCfg struct {
	TTL       time.Duration
	EvictIdle time.Duration
}

type Cfg struct {
	App      AppCfg
	Upstream UpstreamCfg
	Redis    RedisCfg
	DB       DBCfg
	Session  SessionCfg
}

func Load() Cfg {
	// 1) Load .env into process env (if file exists)
	_ = godotenv.Load()

	// 2) Read from env via viper
	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("UPSTREAM_TIMEOUT_SEC", 30)
	viper.SetDefault("SESSION_TTL_MIN", 720)
	viper.SetDefault("EVICT_IDLE_MIN", 30)

	cfg := Cfg{
		App: AppCfg{
			Env:  viper.GetString("APP_ENV"),
			Port: viper.GetString("APP_PORT"),
		},
		Upstream: UpstreamCfg{
			BaseURL:    strings.TrimSpace(viper.GetString("UPSTREAM_BASE_URL")),
			TimeoutSec: viper.GetInt("UPSTREAM_TIMEOUT_SEC"),
		},
		Redis: RedisCfg{Addr: viper.GetString("REDIS_ADDR")},
		DB:    DBCfg{DSN: viper.GetString("DB_DSN")},
		Session: SessionCfg{
			TTL:       time.Duration(viper.GetInt("SESSION_TTL_MIN")) * time.Minute,
			EvictIdle: time.Duration(viper.GetInt("EVICT_IDLE_MIN")) * time.Minute,
		},
	}

	// 3) Fail fast on required settings
	if cfg.Upstream.BaseURL == "" {
		log.Fatal().Msg("UPSTREAM_BASE_URL is required")
	}

	return cfg
}
