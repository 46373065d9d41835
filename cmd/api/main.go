package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go-talent-backend/config"
	_ "go-talent-backend/docs" // Important for Swagger
	v1 "go-talent-backend/internal/delivery/http/v1"
	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/repository/postgres"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/metrics"
	"go-talent-backend/pkg/ratelimit"
	redisclient "go-talent-backend/pkg/redis"
	"go-talent-backend/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// pictures is the storage wiring for one picture-holding entity kind.
type pictures struct {
	stager  usecase.AssetStager
	locator domain.AssetLocator
	files   v1.PictureFiles // nil unless stored on local disk
}

// @title           Talent Backend API
// @version         1.0
// @description     Job board backend: user and company profiles, vacancies, applications and login.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting talent backend", "port", cfg.Port, "storage", cfg.Storage.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.DefaultPoolOptions(), logger.Log)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limits fall back to memory)
	memoryCounter := ratelimit.NewMemoryCounter()
	go memoryCounter.RunSweeper(ctx, time.Minute)

	var counter ratelimit.Counter = memoryCounter
	healthDeps := map[string]usecase.Pinger{"database": dbPool}

	redisClient, err := redisclient.NewClient(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case err == nil:
		defer redisClient.Close()
		counter = ratelimit.Fallback{
			Primary:   ratelimit.NewRedisCounter(redisClient, "talent:"),
			Secondary: memoryCounter,
		}
		healthDeps["redis"] = usecase.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	case errors.Is(err, redisclient.ErrNotConfigured):
		logger.Log.Warn("Redis not configured, using in-memory rate limiting")
	default:
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}

	// 5. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	syncMetrics := metrics.NewSyncMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	// 6. Setup Picture Storage
	userPictures, companyPictures, err := setupPictures(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to set up picture storage", "error", err)
		os.Exit(1)
	}

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool, database.NewUUID)
	companyRepo := postgres.NewCompanyRepository(dbPool, database.NewUUID)
	vacancyRepo := postgres.NewVacancyRepository(dbPool, database.NewUUID)
	credentialsRepo := postgres.NewCredentialsRepository(dbPool)
	assetRepo := postgres.NewAssetRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool, database.NewUUID)

	// 8. Setup UseCases
	executor := database.NewExecutor(database.PoolFrom(dbPool), logger.Log)
	synchronizer := usecase.NewProfileSynchronizer(
		assetRepo,
		executor,
		map[domain.EntityKind]usecase.AssetStager{
			domain.EntityUser:    userPictures.stager,
			domain.EntityCompany: companyPictures.stager,
		},
		syncMetrics,
		logger.Log,
	)
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenIssuer(cfg.JWTSecretKey, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	authUC := usecase.NewAuthUsecase(credentialsRepo, hasher, tokens)
	userUC := usecase.NewUserUsecase(userRepo, synchronizer, hasher, userPictures.locator, database.NewUUID)
	companyUC := usecase.NewCompanyUsecase(companyRepo, synchronizer, hasher, companyPictures.locator, database.NewUUID)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, synchronizer, companyPictures.locator, database.NewUUID)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, executor, userPictures.locator, database.NewUUID)
	healthUC := usecase.NewHealthUsecase(healthDeps)

	// 9. Setup Router
	deps := v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CompanyUC:     companyUC,
		VacancyUC:     vacancyUC,
		ApplicationUC: applicationUC,
		HealthUC:      healthUC,
		Tokens:        tokens,
		Counter:       counter,
		HTTPMetrics:   httpMetrics,
		Gatherer:      registry,
		Logger:        logger.Log,
		Config:        cfg,
	}
	if cfg.Storage.Driver == config.StorageDriverLocal {
		deps.Pictures = map[domain.EntityKind]v1.PictureFiles{
			domain.EntityUser:    userPictures.files,
			domain.EntityCompany: companyPictures.files,
		}
	} else {
		deps.PictureOrigins = []string{cfg.Storage.S3.PublicBaseURL}
	}
	router := v1.NewRouter(deps)

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// setupPictures builds the user and company picture stores for the
// configured driver. Each kind gets its own directory or key prefix.
func setupPictures(ctx context.Context, cfg *config.Config) (users, companies pictures, err error) {
	if cfg.Storage.Driver == config.StorageDriverS3 {
		client, err := storage.NewS3Client(ctx, cfg.Storage.S3)
		if err != nil {
			return pictures{}, pictures{}, err
		}
		build := func(prefix string) pictures {
			store := storage.NewS3Store(client, cfg.Storage.S3.Bucket, prefix, cfg.Storage.S3.PublicBaseURL)
			return pictures{stager: storage.NewStager(store, logger.Log), locator: store}
		}
		return build("user_pfp"), build("company_pfp"), nil
	}

	build := func(dir string, kind domain.EntityKind) (pictures, error) {
		store, err := storage.NewLocalStore(filepath.Join(cfg.Storage.LocalDir, dir))
		if err != nil {
			return pictures{}, err
		}
		return pictures{
			stager:  storage.NewStager(store, logger.Log),
			locator: storage.NewPathLocator("/v1/pictures/" + string(kind) + "/"),
			files:   store,
		}, nil
	}
	if users, err = build("user_pfp", domain.EntityUser); err != nil {
		return pictures{}, pictures{}, err
	}
	if companies, err = build("company_pfp", domain.EntityCompany); err != nil {
		return pictures{}, pictures{}, err
	}
	return users, companies, nil
}
