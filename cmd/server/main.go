package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ulascansenturk/city-weather/config"
	"ulascansenturk/city-weather/internal/api/v1/handlers"
	"ulascansenturk/city-weather/internal/db/lookuplog"
	"ulascansenturk/city-weather/internal/providers"
	"ulascansenturk/city-weather/internal/service"
	"ulascansenturk/city-weather/internal/telemetry"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	shutdownTracing, err := telemetry.SetupTracing(conf.ServiceName, conf.ZipkinEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up tracing")
	}

	var lookupRepo lookuplog.Repository
	if conf.AuditEnabled() {
		db, dbErr := initializeDatabase(conf)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		lookupRepo = lookuplog.NewRepository(db)
		log.Info().Str("host", conf.DBHost).Msg("lookup audit log enabled")
	} else {
		log.Info().Msg("DATABASE_HOST not set, lookup audit log disabled")
	}

	geocoder := providers.NewNominatimGeocoder(conf.GeocodingBaseURL, conf.GeocodingUserAgent, conf.GeocodingTimeout)
	weatherProvider := providers.NewOpenMeteoProvider(conf.WeatherBaseURL, conf.WeatherTimeout)

	lookupService := service.NewLookupService(
		geocoder,
		weatherProvider,
		lookupRepo,
		conf.GeocodingTimeout,
		conf.WeatherTimeout,
	)

	rateLimiter := handlers.NewClientRateLimiter(conf.RateLimitRPS, conf.RateLimitBurst)
	defer rateLimiter.Close()

	router := handlers.NewRouter(handlers.RouterConfig{
		ServiceName:    conf.ServiceName,
		LookupService:  lookupService,
		LookupRepo:     lookupRepo,
		RequestTimeout: conf.HTTPTimeoutDuration(),
		RateLimiter:    rateLimiter,

		TrustProxyHeaders: conf.TrustProxyHeaders,
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func(shutdownCtx context.Context) {
		if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("server shutdown failed")
		}
		if tracingErr := shutdownTracing(shutdownCtx); tracingErr != nil {
			log.Error().Err(tracingErr).Msg("tracer shutdown failed")
		}
	})

	log.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		log.Fatal().Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
	log.Info().Msg("server stopped")
}

func initializeDatabase(conf *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(conf.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&lookuplog.LookupRecord{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func(context.Context)) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback(shutdownCtx)

		cancel()
		cancelCtx()
	}()
}
