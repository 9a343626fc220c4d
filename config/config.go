package config

import (
	"fmt"
	"os"
)

// Config holds everything read from the process environment at startup.
type Config struct {
	MongoURI     string
	DBName       string
	JWTSecret    []byte
	StripeSecret string
	RedisAddr    string
	Port         string
}

// Load reads the environment. Only presence is validated; the values
// themselves are handed to the drivers as-is.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:     os.Getenv("MONGODB_URI"),
		DBName:       os.Getenv("DB_NAME"),
		JWTSecret:    []byte(os.Getenv("ACCESS_TOKEN_SECRET")),
		StripeSecret: os.Getenv("STRIPE_SECRET_KEY"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		Port:         os.Getenv("PORT"),
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.DBName == "" {
		cfg.DBName = "hotelDb"
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is not set")
	}
	if cfg.Port == "" {
		cfg.Port = ":5000"
	} else if cfg.Port[0] != ':' {
		cfg.Port = ":" + cfg.Port
	}

	return cfg, nil
}
