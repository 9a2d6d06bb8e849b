package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Observ   ObservabilityConfig
	Business BusinessConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

type BusinessConfig struct {
	// ShippingFee is the flat per-order fee added to revenue exactly once
	// per order by every aggregator.
	ShippingFee    float64
	MaxUploadBytes int64
}

func Load() *Config {
	_ = godotenv.Load()

	shippingFee, _ := strconv.ParseFloat(getEnv("SHIPPING_FEE", "15"), 64)
	maxUpload, _ := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "33554432"), 10, 64)

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		Business: BusinessConfig{
			ShippingFee:    shippingFee,
			MaxUploadBytes: maxUpload,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s, shipping_fee=%.2f", cfg.Server.Env, cfg.Server.Port, cfg.Business.ShippingFee)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
