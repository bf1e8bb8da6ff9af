package server

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/address-cleanser/address-cleanser/docs"
	"github.com/address-cleanser/address-cleanser/internal/config"
	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/handlers"
	"github.com/address-cleanser/address-cleanser/internal/interfaces"
	"github.com/address-cleanser/address-cleanser/internal/logger"
	"github.com/address-cleanser/address-cleanser/internal/middleware"
	"github.com/address-cleanser/address-cleanser/internal/services"
	"github.com/address-cleanser/address-cleanser/internal/tagger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server wires the address service into a gin router
type Server struct {
	cfg     config.Config
	router  *gin.Engine
	limiter *middleware.RateLimiter
}

// NewAddressService builds the default service stack: rule-based tagger,
// pipeline, stats aggregator and batch worker pool.
func NewAddressService(cfg config.Config) *services.AddressService {
	pipeline := services.NewPipeline(tagger.New(logger.Log), logger.Log)
	return services.NewAddressService(pipeline, services.NewStatsAggregator(), cfg.Batch.Workers, logger.Log)
}

// New creates a Server backed by the default service stack.
func New(cfg config.Config) *Server {
	return NewWithService(cfg, NewAddressService(cfg))
}

// NewWithService creates a Server around service.
func NewWithService(cfg config.Config, service interfaces.AddressService) *Server {
	if cfg.Stage == constants.ProdEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		cfg:     cfg,
		router:  gin.New(),
		limiter: middleware.NewRateLimiter(cfg.Server.RateLimit, constants.HealthPath),
	}
	s.router.Use(gin.Recovery())
	InitializeRoutes(s.router, cfg, service, s.limiter)
	return s
}

// Router exposes the configured engine, e.g. for the Lambda adapter.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close releases background resources.
func (s *Server) Close() {
	s.limiter.Close()
}

// Run serves HTTP on the configured port until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(s.cfg.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr), zap.String("stage", s.cfg.Stage))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Server is shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// InitializeRoutes registers middleware and routes on router.
func InitializeRoutes(router *gin.Engine, cfg config.Config, service interfaces.AddressService, limiter *middleware.RateLimiter) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(limiter.Middleware())
	router.Use(middleware.APIKeyAuth(cfg.Server.APIKeys))

	router.GET(constants.SwaggerPath+"/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(constants.DocsPath, func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, constants.SwaggerPath+"/index.html")
	})

	healthHandler := handlers.NewHealthHandler(constants.ServiceVersion, cfg.AuthEnabled())
	addressHandler := handlers.NewAddressHandler(service, cfg.Batch.MaxSize)

	router.GET(constants.RootPath, healthHandler.Root)

	v1 := router.Group(constants.APIPrefix)
	{
		v1.GET("/health", healthHandler.Health)
		v1.GET("/stats", addressHandler.GetStats)
		v1.POST("/validate", addressHandler.ValidateAddress)
		v1.POST("/batch", addressHandler.BatchProcess)
		v1.POST("/batch/upload", addressHandler.BatchUpload)
	}
}

// configureCORS allows every origin unless CORS_ALLOWED_ORIGINS narrows it
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS"); originsEnv != "" {
		corsConfig.AllowOrigins = config.SplitList(originsEnv)
	} else {
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", constants.APIKeyHeader, constants.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{constants.CorrelationIDHeader, "Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	corsConfig.AllowCredentials = strings.EqualFold(os.Getenv("CORS_ALLOW_CREDENTIALS"), "true")

	return cors.New(corsConfig)
}
