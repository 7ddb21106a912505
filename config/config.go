package config

import (
	"fmt"
	"os"
	"strings"

	"vastra/utils"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port string

	// Commerce backend REST API. Key/secret are appended as query
	// parameters on every catalog/order/coupon/customer call.
	CommerceAPIURL string
	CommerceKey    string
	CommerceSecret string

	// JWT login endpoint of the commerce backend. Uses its own auth
	// scheme, so no key/secret are appended there.
	JWTLoginURL string

	RedisURL      string
	RedisPassword string

	// Origins allowed to call the API with credentials. A wildcard would
	// make browsers drop the session cookie, so each origin is explicit.
	AllowedOrigins []string
}

// Load reads configuration from the environment. Missing commerce
// credentials are a deployment error, not a runtime one, so they fail here.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           os.Getenv("PORT"),
		CommerceAPIURL: strings.TrimRight(os.Getenv("COMMERCE_API_URL"), "/"),
		CommerceKey:    os.Getenv("COMMERCE_API_KEY"),
		CommerceSecret: os.Getenv("COMMERCE_API_SECRET"),
		JWTLoginURL:    os.Getenv("COMMERCE_JWT_LOGIN_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		AllowedOrigins: utils.SplitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	if cfg.Port == "" {
		cfg.Port = ":8080"
	} else if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	if cfg.CommerceAPIURL == "" {
		return nil, fmt.Errorf("COMMERCE_API_URL is not set")
	}
	if cfg.CommerceKey == "" || cfg.CommerceSecret == "" {
		return nil, fmt.Errorf("COMMERCE_API_KEY / COMMERCE_API_SECRET are not set")
	}
	if cfg.JWTLoginURL == "" {
		cfg.JWTLoginURL = cfg.CommerceAPIURL + "/token"
	}

	return cfg, nil
}
