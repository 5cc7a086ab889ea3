package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/imanhub/solat-server/internal/announce"
	"github.com/imanhub/solat-server/internal/cache"
	"github.com/imanhub/solat-server/internal/db"
	"github.com/imanhub/solat-server/internal/fetch"
	"github.com/imanhub/solat-server/internal/zones"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	env := LoadEnvironment()

	loc, err := time.LoadLocation(env.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", env.Timezone).Msg("invalid timezone")
	}

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	store := db.NewStore()

	// a failed load falls back to the builtin zone set; keep serving
	directory := zones.NewDirectory(store)
	if err := directory.Load(); err != nil {
		log.Warn().Err(err).Msg("zone directory running on fallback set")
	}

	fetcher := fetch.New(directory, env.FetchTimeout,
		fetch.NewPrimary(env.PrimaryBaseURL, loc),
		fetch.NewSecondary(env.SecondaryBaseURL),
	)

	var schedules fetch.Interface = fetcher
	if env.RedisAddress != "" {
		kv := cache.NewRedisStore(env.RedisAddress, env.RedisUsername, env.RedisPassword)
		schedules = cache.NewCachingFetcher(fetcher, kv, env.CacheTTL)
	}

	if env.MQTTBrokerURL != "" && len(env.AnnounceZones) > 0 {
		pub, err := announce.NewMQTTPublisher(env.MQTTBrokerURL, "solat-server")
		if err != nil {
			log.Fatal().Err(err).Msg("mqtt connect failed")
		}
		watcher := announce.NewWatcher(schedules, pub, env.AnnounceZones, loc)
		go watcher.Run(context.Background(), time.Minute)
	}

	// set up gin router
	r := gin.Default()
	RegisterRoutes(r, directory, schedules, loc)

	log.Info().Str("addr", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
