// @title        Homestay Booking Gate API
// @version      1.0
// @description  Session, route guard and preference endpoints for the homestay booking front end.
// @BasePath     /
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

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/homestay/booking-gate/internal/api"
	"github.com/homestay/booking-gate/internal/core/ports"
	"github.com/homestay/booking-gate/internal/core/service"
	"github.com/homestay/booking-gate/internal/infrastructure/db/memory"
	"github.com/homestay/booking-gate/internal/infrastructure/db/mongo"
	redisstore "github.com/homestay/booking-gate/internal/infrastructure/db/redis"
	"github.com/homestay/booking-gate/internal/infrastructure/queue"
	"github.com/homestay/booking-gate/internal/infrastructure/routefile"
	"github.com/homestay/booking-gate/internal/pkg/config"
	"github.com/homestay/booking-gate/pkg/logger"
)

const startupTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "booking-gate",
	})

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	log.Info().
		Str("env", cfg.Env).
		Str("identity_backend", cfg.IdentityBackend).
		Str("preference_backend", cfg.PreferenceBackend).
		Bool("audit", cfg.Audit.Enabled).
		Msg("starting booking gate")

	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStart()

	// --- Backends ---
	var db *mongodriver.Database
	if cfg.IdentityBackend == config.BackendMongo {
		client, database, err := mongo.Connect(startCtx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect failed")
			}
		}()
		db = database
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")
	}

	var rdb *redis.Client
	if cfg.PreferenceBackend == config.BackendRedis {
		client, err := redisstore.Connect(startCtx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer client.Close()
		rdb = client
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	// --- Core ---
	directory, err := identityDirectory(startCtx, db, log)
	if err != nil {
		return err
	}

	routes, err := routeTable(cfg.RoutesFile)
	if err != nil {
		return err
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	var recorder ports.AuditRecorder
	var dispatcher *queue.Dispatcher
	if cfg.Audit.Enabled {
		var repo ports.SessionEventRepository
		if db != nil {
			repo = mongo.NewSessionEventRepository(db)
		}
		dispatcher = queue.NewDispatcher(cfg.Audit.Workers, service.NewAuditService(repo, logger.Component("audit")), log)
		dispatcher.Start(workerCtx)
		recorder = dispatcher
	}

	session := service.NewSessionStore(directory, recorder, logger.Component("session"))

	var prefStore ports.PreferenceStore = memory.NewPreferenceStore()
	if rdb != nil {
		prefStore = redisstore.NewPreferenceStore(rdb)
	}

	e := api.NewRouter(api.Dependencies{
		Session:     session,
		Routes:      routes,
		Guard:       service.NewRouteGuard(),
		Preferences: service.NewPreferenceService(prefStore, logger.Component("preferences")),
		Mongo:       db,
		Redis:       rdb,
		Log:         log,
	})

	// --- Serve until signalled ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("starting HTTP server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	stopWorkers()
	if dispatcher != nil {
		dispatcher.Wait()
	}

	log.Info().Msg("server stopped")
	return nil
}

// identityDirectory returns the Mongo directory, seeded with the known
// accounts, when db is set and the in-memory list otherwise.
func identityDirectory(ctx context.Context, db *mongodriver.Database, log zerolog.Logger) (ports.IdentityDirectory, error) {
	if db == nil {
		return memory.NewIdentityDirectory(memory.KnownIdentities()), nil
	}

	repo := mongo.NewIdentityRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	if err := repo.Seed(ctx, memory.KnownIdentities()); err != nil {
		return nil, err
	}
	log.Info().Int("identities", len(memory.KnownIdentities())).Msg("identity directory seeded")
	return repo, nil
}

// routeTable loads the route declarations from path, or the built-in table
// when path is empty.
func routeTable(path string) (*service.RouteTable, error) {
	routes := service.DefaultRoutes()
	if path != "" {
		loaded, err := routefile.Load(path)
		if err != nil {
			return nil, err
		}
		routes = loaded
	}

	table, err := service.NewRouteTable(routes)
	if err != nil {
		return nil, fmt.Errorf("route table: %w", err)
	}
	return table, nil
}
