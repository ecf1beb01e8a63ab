package di

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sandeepkv93/volunteer-management-backend/internal/app"
	"github.com/sandeepkv93/volunteer-management-backend/internal/config"
	"github.com/sandeepkv93/volunteer-management-backend/internal/database"
	"github.com/sandeepkv93/volunteer-management-backend/internal/health"
	"github.com/sandeepkv93/volunteer-management-backend/internal/http/handler"
	"github.com/sandeepkv93/volunteer-management-backend/internal/http/middleware"
	"github.com/sandeepkv93/volunteer-management-backend/internal/http/router"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
	"github.com/sandeepkv93/volunteer-management-backend/internal/repository"
	"github.com/sandeepkv93/volunteer-management-backend/internal/security"
	"github.com/sandeepkv93/volunteer-management-backend/internal/service"
)

var ConfigSet = wire.NewSet(config.Load)

var ObservabilitySet = wire.NewSet(
	provideObservabilityRuntime,
	provideAppLogger,
)

var RuntimeInfraSet = wire.NewSet(
	provideRuntimeDB,
	provideRedisClient,
	provideImageStorage,
	provideReadinessProbeRunner,
)

var SecuritySet = wire.NewSet(
	providePasswordHasher,
	provideJWTManager,
	provideCookieManager,
)

var RepositorySet = wire.NewSet(
	provideAccountRepository,
	repository.NewPricingRepository,
	repository.NewNotificationRepository,
	repository.NewVolunteerHistoryRepository,
)

var ServiceSet = wire.NewSet(
	provideAuthService,
	provideProfileService,
	service.NewPricingService,
	service.NewActivityService,
)

var HTTPSet = wire.NewSet(
	handler.NewAuthHandler,
	provideUserHandler,
	handler.NewPricingHandler,
	handler.NewActivityHandler,
	handler.NewUploadHandler,
	provideGlobalRateLimiter,
	provideAuthRateLimiter,
	provideRouterDependencies,
	router.NewRouter,
	provideHTTPServer,
)

var AppSet = wire.NewSet(app.New)

func provideObservabilityRuntime(cfg *config.Config) (*observability.Runtime, error) {
	bootstrapLogger := observability.NewBootstrapLogger(cfg)
	return observability.InitRuntime(context.Background(), cfg, bootstrapLogger)
}

func provideAppLogger(cfg *config.Config, runtime *observability.Runtime) *slog.Logger {
	return observability.InitLogger(cfg, runtime.LoggerProvider)
}

// provideRuntimeDB opens the database and brings the schema up to date so a
// fresh deployment serves requests without a separate migrate step.
func provideRuntimeDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func provideRedisClient(cfg *config.Config, logger *slog.Logger) redis.UniversalClient {
	if !cfg.RateLimitRedisEnabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	observability.InstrumentRedisClient(client, logger)
	return client
}

func provideImageStorage(cfg *config.Config) (service.ImageStorage, error) {
	switch strings.ToLower(cfg.StorageBackend) {
	case "minio":
		s, err := service.NewMinIOImageStorage(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, cfg.MaxUploadBytes)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "", "local":
		s, err := service.NewLocalImageStorage(cfg.UploadDir, cfg.MaxUploadBytes)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}

func provideReadinessProbeRunner(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient, images service.ImageStorage) *health.ProbeRunner {
	checkers := make([]health.Checker, 0, 3)
	if c := health.NewDBChecker(db); c != nil {
		checkers = append(checkers, c)
	}
	if cfg.RateLimitRedisEnabled && redisClient != nil {
		checkers = append(checkers, health.NewRedisChecker(redisClient))
	}
	if pinger, ok := images.(health.Pinger); ok && storagePingEnabled(cfg, images) {
		checkers = append(checkers, health.NewStorageChecker(images.Backend(), pinger))
	}
	return health.NewProbeRunner(cfg.ReadinessProbeTimeout, cfg.ServerStartGracePeriod, checkers...)
}

func storagePingEnabled(cfg *config.Config, images service.ImageStorage) bool {
	if images == nil {
		return false
	}
	if images.Backend() == "minio" {
		return cfg.MinIOReadinessPing
	}
	return true
}

func providePasswordHasher(cfg *config.Config) *security.PasswordHasher {
	return security.NewPasswordHasher(security.HashParams{
		Time:    cfg.PasswordHashTime,
		Memory:  cfg.PasswordHashMemoryKiB,
		Threads: cfg.PasswordHashThreads,
	})
}

func provideJWTManager(cfg *config.Config) *security.JWTManager {
	return security.NewJWTManager(cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTSecret, cfg.SessionTTL)
}

func provideCookieManager(cfg *config.Config) *security.CookieManager {
	return security.NewCookieManager(cfg.SessionCookieName, cfg.CookieDomain, cfg.CookieSecure, cfg.CookieSameSite)
}

func provideAccountRepository(db *gorm.DB, hasher *security.PasswordHasher) repository.AccountRepository {
	return repository.NewAccountRepository(db, hasher)
}

func provideAuthService(accounts repository.AccountRepository, hasher *security.PasswordHasher, jwt *security.JWTManager) service.AuthServiceInterface {
	return service.NewAuthService(accounts, hasher, jwt)
}

func provideProfileService(accounts repository.AccountRepository, hasher *security.PasswordHasher, images service.ImageStorage, logger *slog.Logger) service.ProfileServiceInterface {
	return service.NewProfileService(accounts, hasher, images, logger)
}

func provideUserHandler(profileSvc service.ProfileServiceInterface, cfg *config.Config) *handler.UserHandler {
	return handler.NewUserHandler(profileSvc, cfg.MaxUploadBytes)
}

// provideGlobalRateLimiter keys authenticated callers by user id so one
// account cannot spread its budget across addresses.
func provideGlobalRateLimiter(cfg *config.Config, redisClient redis.UniversalClient, jwt *security.JWTManager) router.GlobalRateLimiterFunc {
	keyFunc := middleware.SubjectOrIPKeyFunc(jwt, cfg.SessionCookieName)
	if cfg.RateLimitRedisEnabled && redisClient != nil {
		redisLimiter := middleware.NewRedisFixedWindowLimiter(redisClient, cfg.RateLimitRedisPrefix+":api")
		return middleware.NewDistributedRateLimiterWithKey(
			redisLimiter,
			cfg.APIRateLimitPerMin,
			time.Minute,
			middleware.FailOpen,
			"api",
			keyFunc,
		).Middleware()
	}
	return middleware.NewDistributedRateLimiterWithKey(
		middleware.NewLocalFixedWindowLimiter(),
		cfg.APIRateLimitPerMin,
		time.Minute,
		middleware.FailClosed,
		"api",
		keyFunc,
	).Middleware()
}

func provideAuthRateLimiter(cfg *config.Config, redisClient redis.UniversalClient) router.AuthRateLimiterFunc {
	if cfg.RateLimitRedisEnabled && redisClient != nil {
		redisLimiter := middleware.NewRedisFixedWindowLimiter(redisClient, cfg.RateLimitRedisPrefix+":auth")
		return middleware.NewDistributedRateLimiter(
			redisLimiter,
			cfg.AuthRateLimitPerMin,
			time.Minute,
			middleware.FailClosed,
			"auth",
		).Middleware()
	}
	return middleware.NewRateLimiter(cfg.AuthRateLimitPerMin, time.Minute, "auth").Middleware()
}

func provideRouterDependencies(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	pricingHandler *handler.PricingHandler,
	activityHandler *handler.ActivityHandler,
	uploadHandler *handler.UploadHandler,
	jwt *security.JWTManager,
	globalRateLimiter router.GlobalRateLimiterFunc,
	authRateLimiter router.AuthRateLimiterFunc,
	readiness *health.ProbeRunner,
	cfg *config.Config,
) router.Dependencies {
	dep := router.Dependencies{
		AuthHandler:            authHandler,
		UserHandler:            userHandler,
		PricingHandler:         pricingHandler,
		ActivityHandler:        activityHandler,
		UploadHandler:          uploadHandler,
		SessionCookieName:      cfg.SessionCookieName,
		AuthRequireOnMutations: cfg.AuthRequireOnMutations,
		CORSOrigins:            cfg.CORSAllowedOrigins,
		MaxUploadBytes:         cfg.MaxUploadBytes,
		AuthRateLimitRPM:       cfg.AuthRateLimitPerMin,
		APIRateLimitRPM:        cfg.APIRateLimitPerMin,
		GlobalRateLimiter:      globalRateLimiter,
		AuthRateLimiter:        authRateLimiter,
		Readiness:              readiness,
		EnableOTelHTTP:         cfg.OTELMetricsEnabled || cfg.OTELTracingEnabled,
	}
	if jwt != nil {
		dep.TokenVerifier = jwt
	}
	return dep
}

func provideHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
