package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bloopd3d/webs/docs"
	"github.com/Bloopd3d/webs/internal/auth"
	"github.com/Bloopd3d/webs/internal/ratelimiter"
	"github.com/Bloopd3d/webs/internal/service"
	"github.com/Bloopd3d/webs/internal/store/mongo"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config       config
	logger       *zap.SugaredLogger
	rateLimiter  ratelimiter.Limiter
	storage      *mongo.Storage
	authProvider auth.Provider
	catalog      *service.CatalogService
	reservations *service.ReservationService
	seeder       *service.SeedService
}

type config struct {
	addr        string
	env         string
	apiURL      string
	corsOrigins []string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	admin       adminConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type adminConfig struct {
	username string
	password string
	token    string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Post("/admin/login", app.adminLoginHandler)

		r.Get("/menu", app.getMenuHandler)
		r.Post("/reservations", app.createReservationHandler)
		r.Post("/seed", app.seedDataHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.requireAdmin)

			r.Post("/menu", app.createMenuItemHandler)
			r.Put("/menu/{item_id}", app.updateMenuItemHandler)
			r.Delete("/menu/{item_id}", app.deleteMenuItemHandler)

			r.Get("/reservations", app.getReservationsHandler)
			r.Put("/reservations/{reservation_id}", app.updateReservationHandler)
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "La Calandria"
	docs.SwaggerInfo.Description = "Restaurant menu and reservations API"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
