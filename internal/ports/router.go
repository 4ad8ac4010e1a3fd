package ports

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"mpesa-bridge/internal/config"
	"mpesa-bridge/internal/ports/rest"
	"mpesa-bridge/pkg/e"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	logger *slog.Logger
	server *http.Server
	cfg    *config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, gateway rest.Gateway, results rest.ResultProcessor) *Server {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Http.Port),
		Handler:      InitRouter(ctx, logger, gateway, results),
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
	}

	return &Server{
		logger: logger,
		server: server,
		cfg:    cfg,
	}
}

func InitRouter(ctx context.Context, logger *slog.Logger, gateway rest.Gateway, results rest.ResultProcessor) *gin.Engine {
	r := gin.Default()
	promHandler := promhttp.Handler()

	h := rest.NewHandler(logger, gateway, results)
	docsURL := ginSwagger.URL("http://localhost:8080/swagger/doc.json")

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:8080"}
	corsConfig.AllowMethods = []string{"GET", "POST"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true

	r.Use(cors.New(corsConfig))

	// the gateway endpoints are POST-only; anything else gets the fixed 405
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	r.GET("/metrics", gin.WrapH(promHandler))

	b2c := r.Group("/b2c")
	{
		b2c.POST("/pay", h.PayB2C)
		b2c.POST("/result", h.B2CResult)
		b2c.POST("/timeout", h.B2CTimeout)
	}

	c2b := r.Group("/c2b")
	{
		c2b.POST("/register", h.RegisterC2B)
		c2b.POST("/confirmation", h.C2BConfirmation)
		c2b.POST("/validation", h.C2BValidation)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, docsURL))

	return r
}

func (s *Server) Run(ctx context.Context) error {
	errResult := make(chan error, 1)
	go func() {
		s.logger.Info("starting listening", slog.String("address", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errResult <- fmt.Errorf("http server failed: %w", err)
		} else {
			s.logger.Info("HTTP server stopped gracefully")
			errResult <- nil
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server due to context cancellation")
		if err := s.Stop(); err != nil {
			return e.Wrap("failed to stop HttpServer gracefully", err)
		}
		return ctx.Err()
	case err := <-errResult:
		return err
	}
}

func (s *Server) Stop() error {
	shutDownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(shutDownCtx)
	s.logger.Info("Shutting down HTTP server")
	if err != nil {
		s.logger.Error("failed to shutdown HTTP Server", slog.String("error", err.Error()))
		return err
	}
	return nil
}
