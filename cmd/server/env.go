package main

import (
	"log"
	"os"
	"strings"
	"time"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	DatabaseURL    string
	MigrationsPath string

	RedisAddress  string
	RedisUsername string
	RedisPassword string
	CacheTTL      time.Duration

	PrimaryBaseURL   string
	SecondaryBaseURL string
	FetchTimeout     time.Duration
	Timezone         string

	MQTTBrokerURL string
	AnnounceZones []string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:    os.Getenv("APP_ENV"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      durationOr("CACHE_TTL", 5*time.Minute),

		PrimaryBaseURL:   os.Getenv("PRIMARY_API_URL"),
		SecondaryBaseURL: os.Getenv("SECONDARY_API_URL"),
		FetchTimeout:     durationOr("FETCH_TIMEOUT", 10*time.Second),
		Timezone:         os.Getenv("TIMEZONE"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		AnnounceZones: splitList(os.Getenv("ANNOUNCE_ZONES")),
	}

	// Basic validation
	if env.DatabaseURL == "" || env.ServerAddress == "" {
		log.Fatal("Missing required environment variables")
	}
	if env.PrimaryBaseURL == "" {
		env.PrimaryBaseURL = "https://api.waktusolat.app"
	}
	if env.SecondaryBaseURL == "" {
		env.SecondaryBaseURL = "https://mpt.i906.my/api"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if env.Timezone == "" {
		env.Timezone = "Asia/Kuala_Lumpur"
	}

	return env
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
