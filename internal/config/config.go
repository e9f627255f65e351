package config

import (
	"log"
	"os"
	"time"
)

// Organization is the boilerplate stamped into outbound notice bodies.
type Organization struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

type Config struct {
	HTTPPort             string
	MongoURI             string
	MongoDB              string
	HelpdeskPollInterval time.Duration
	Org                  Organization
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		MongoURI:             getEnv("MONGO_URI", ""),
		MongoDB:              getEnv("MONGO_DB", "jobportal"),
		HelpdeskPollInterval: getDuration("HELPDESK_POLL_INTERVAL", 30*time.Second),
		Org: Organization{
			Name:    getEnv("ORG_NAME", "ZenSolve Infotech Solution"),
			Address: getEnv("ORG_ADDRESS", "2nd floor, Bhagalpur Road, Godda, Near Railway Station"),
			Email:   getEnv("ORG_EMAIL", "support@infozensolve.in"),
			Phone:   getEnv("ORG_PHONE", "02269622941"),
		},
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
