package app

import (
	"github.com/cliptube/cliptube-backend/internal/platform/envutil"
)

type Config struct {
	HTTPAddr     string
	PageLimitMax int
	Environment  string
	Version      string
}

func LoadConfig() Config {
	return Config{
		HTTPAddr:     envutil.Str("HTTP_ADDR", ":8080"),
		PageLimitMax: envutil.Int("PAGE_LIMIT_MAX", 100),
		Environment:  envutil.Str("APP_ENV", "development"),
		Version:      envutil.Str("APP_VERSION", "dev"),
	}
}
