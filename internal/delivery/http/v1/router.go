package v1

import (
	"log/slog"
	"time"

	"go-talent-backend/config"
	"go-talent-backend/internal/delivery/http/middleware"
	"go-talent-backend/internal/domain"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/metrics"
	"go-talent-backend/pkg/ratelimit"
	"go-talent-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	UserUC    domain.UserUsecase
	CompanyUC domain.CompanyUsecase
	VacancyUC domain.VacancyUsecase
	// ApplicationUC serves applications, interviews and new hires
	ApplicationUC domain.ApplicationUsecase
	HealthUC      usecase.HealthUsecase
	Tokens        middleware.TokenParser
	// Counter backs every rate limit. Redis in production, in-memory otherwise.
	Counter ratelimit.Counter
	// Pictures serves locally stored pictures; nil when pictures live in S3.
	Pictures map[domain.EntityKind]PictureFiles
	// PictureOrigins extends the CSP img-src (the public S3 base URL).
	PictureOrigins []string
	HTTPMetrics    *metrics.HTTPMetrics
	Gatherer       prometheus.Gatherer
	Logger         *slog.Logger
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(validation.FieldName)
		validation.RegisterValidators(v)
	}

	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.PictureOrigins...))
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware())
	}
	r.Use(middleware.RateLimit(deps.Counter, middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window), log))
	r.Use(middleware.ErrorHandler(log))
	r.Use(middleware.CSRFMiddleware(cfg.SecureCookies,
		"/v1/auth/login",
		"/v1/users/register",
		"/v1/companies/register",
	))

	if deps.Gatherer != nil {
		r.GET("/metrics", metrics.Handler(deps.Gatherer))
	}

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", healthHandler(deps.HealthUC))

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginGate := middleware.RateLimit(deps.Counter, middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window), log)
	uploadGate := middleware.RateLimit(deps.Counter, middleware.UploadRateLimitConfig(cfg.RateLimitUploadThreshold, window), log)

	// Multipart bodies carry the picture plus form fields
	public := v1.Group("", middleware.BodyLimit(cfg.MaxUploadBytes+1<<20))
	if deps.Pictures != nil {
		NewPictureHandler(public, deps.Pictures)
	}

	// Protected routes
	protected := public.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(public, deps.AuthUC, loginGate, time.Duration(cfg.JWTTTLMinutes)*time.Minute, cfg.SecureCookies)
		NewUserHandler(public, protected, deps.UserUC, uploadGate, cfg.MaxUploadBytes)
		NewCompanyProfileHandler(public, protected, deps.CompanyUC, uploadGate, cfg.MaxUploadBytes)
		NewVacancyHandler(public, protected, deps.VacancyUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
	}

	return r
}
