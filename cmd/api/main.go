package main

import (
	"context"
	"strings"
	"time"

	"github.com/Bloopd3d/webs/internal/auth"
	"github.com/Bloopd3d/webs/internal/env"
	"github.com/Bloopd3d/webs/internal/ratelimiter"
	"github.com/Bloopd3d/webs/internal/service"
	"github.com/Bloopd3d/webs/internal/store/mongo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const version = "0.0.0"

//	@title			La Calandria
//	@description	Restaurant menu and reservations API

//	@BasePath					/api
//
// @securityDefinitions.apiKey	ApiKeyAuth
// @in							header
// @name						Authorization
// @description
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:        env.GetString("ADDR", ":8080"),
		apiURL:      env.GetString("EXTERNAL_URL", "localhost:8080"),
		env:         env.GetString("ENV", "development"),
		corsOrigins: splitOrigins(env.GetString("CORS_ORIGINS", "*")),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		mongo: mongoConfig{
			URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
			Database: env.GetString("MONGO_DATABASE", "la_calandria"),
			Timeout:  time.Second * 10,
		},
		admin: adminConfig{
			username: env.GetString("ADMIN_USERNAME", "admin"),
			password: env.GetString("ADMIN_PASSWORD", "calandria2024"),
			token:    env.GetString("ADMIN_TOKEN", "admin_la_calandria_2024"),
		},
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// storage
	storage, err := mongo.New(mongo.Config{
		URI:      cfg.mongo.URI,
		Database: cfg.mongo.Database,
		Timeout:  cfg.mongo.Timeout,
	})
	if err != nil {
		logger.Fatalw("failed to connect to MongoDB", "error", err)
	}

	logger.Info("connected to MongoDB")

	// create indexes
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := storage.CreateIndexes(ctx); err != nil {
		logger.Warnw("failed to create indexes", "error", err)
	} else {
		logger.Info("MongoDB indexes created successfully")
	}

	// repos
	menuRepo := mongo.NewMenuRepository(storage.Database())
	reservationRepo := mongo.NewReservationRepository(storage.Database())
	seedStateRepo := mongo.NewSeedStateRepository(storage.Database())

	// services
	catalogService := service.NewCatalogService(menuRepo, logger)
	reservationService := service.NewReservationService(reservationRepo, logger)
	seedService := service.NewSeedService(menuRepo, seedStateRepo, logger)

	authProvider := auth.NewStaticProvider(
		cfg.admin.username,
		cfg.admin.password,
		cfg.admin.token,
	)

	app := &application{
		config:       cfg,
		logger:       logger,
		rateLimiter:  rateLimiter,
		storage:      storage,
		authProvider: authProvider,
		catalog:      catalogService,
		reservations: reservationService,
		seeder:       seedService,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
