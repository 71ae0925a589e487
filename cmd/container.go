package main

import (
	"context"
	"time"

	"github.com/Abraxas-365/careers/careers/analytics/analyticsapi"
	"github.com/Abraxas-365/careers/careers/analytics/analyticsinfra"
	"github.com/Abraxas-365/careers/careers/analytics/analyticssrv"
	"github.com/Abraxas-365/careers/careers/application/applicationapi"
	"github.com/Abraxas-365/careers/careers/application/applicationinfra"
	"github.com/Abraxas-365/careers/careers/application/applicationsrv"
	"github.com/Abraxas-365/careers/careers/careerspage/careerspageapi"
	"github.com/Abraxas-365/careers/careers/careerspage/careerspageinfra"
	"github.com/Abraxas-365/careers/careers/careerspage/careerspagesrv"
	"github.com/Abraxas-365/careers/careers/company/companyapi"
	"github.com/Abraxas-365/careers/careers/company/companyinfra"
	"github.com/Abraxas-365/careers/careers/company/companysrv"
	"github.com/Abraxas-365/careers/careers/job/jobapi"
	"github.com/Abraxas-365/careers/careers/job/jobinfra"
	"github.com/Abraxas-365/careers/careers/job/jobsrv"
	"github.com/Abraxas-365/careers/internal/config"
	"github.com/Abraxas-365/careers/pkg/auth"
	"github.com/Abraxas-365/careers/pkg/fsx"
	"github.com/Abraxas-365/careers/pkg/fsx/fsxmem"
	"github.com/Abraxas-365/careers/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/careers/pkg/logx"
	"github.com/Abraxas-365/careers/pkg/sanitize"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem

	// Services
	JobService         *jobsrv.JobService
	CompanyService     *companysrv.CompanyService
	PageService        *careerspagesrv.PageService
	ApplicationService *applicationsrv.ApplicationService
	AnalyticsService   *analyticssrv.AnalyticsService

	// Background
	AnalyticsFlusher *analyticssrv.Flusher

	// API Handlers
	JobHandlers         *jobapi.Handlers
	CompanyHandlers     *companyapi.Handlers
	PageHandlers        *careerspageapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	AnalyticsHandlers   *analyticsapi.Handlers

	// Middleware
	AuthMiddleware *auth.Middleware
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

// Close releases connections
func (c *Container) Close() {
	if err := c.Redis.Close(); err != nil {
		logx.Warnf("Failed to close Redis: %v", err)
	}
	if err := c.DB.Close(); err != nil {
		logx.Warnf("Failed to close database: %v", err)
	}
}

func (c *Container) initInfrastructure() {
	cfg := c.Config

	// 1. Database Connection
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnLifetime)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Redis.Ping(ctx).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. Object Storage
	if !cfg.UsesS3() {
		logx.Warn("AWS_BUCKET is not set, uploads are kept in memory")
		baseURL := cfg.AssetPublicURL
		if baseURL == "" {
			baseURL = "http://localhost:" + cfg.Port + "/uploads"
		}
		c.FileSystem = fsxmem.New(baseURL)
		return
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.FileSystem = fsxs3.NewS3FileSystem(
		s3.NewFromConfig(awsCfg),
		cfg.AWSBucket,
		cfg.AssetPrefix,
		cfg.AWSRegion,
		cfg.AssetPublicURL,
	)
}

func (c *Container) initServices() {
	cfg := c.Config

	// --- Repositories ---
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	companyRepo := companyinfra.NewPostgresCompanyRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	analyticsRepo := analyticsinfra.NewPostgresAnalyticsRepository(c.DB)

	// --- Redis Stores ---
	pageCache := careerspageinfra.NewRedisPageCache(c.Redis, "careers:page", cfg.PageCacheTTL)
	counters := analyticsinfra.NewRedisCounterStore(c.Redis, "careers:analytics")

	sanitizer := sanitize.New()

	// --- Domain Services ---
	c.AnalyticsService = analyticssrv.NewAnalyticsService(counters, analyticsRepo, companyRepo)
	c.JobService = jobsrv.NewJobService(jobRepo, companyRepo, pageCache, sanitizer)
	c.CompanyService = companysrv.NewCompanyService(companyRepo, jobRepo, pageCache, c.FileSystem, sanitizer)
	c.PageService = careerspagesrv.NewPageService(companyRepo, jobRepo, pageCache, c.AnalyticsService)
	c.ApplicationService = applicationsrv.NewApplicationService(
		applicationRepo,
		jobRepo,
		companyRepo,
		c.FileSystem,
		c.AnalyticsService,
		sanitizer,
	)

	c.AnalyticsFlusher = analyticssrv.NewFlusher(c.AnalyticsService, cfg.AnalyticsFlush)

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.CompanyHandlers = companyapi.NewHandlers(c.CompanyService)
	c.PageHandlers = careerspageapi.NewHandlers(c.PageService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.AnalyticsHandlers = analyticsapi.NewHandlers(c.AnalyticsService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewMiddleware(auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience))
}
