// Package server assembles the HTTP router and owns the listener lifecycle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/GrammoRPG_Go/docs"
	"github.com/osse101/GrammoRPG_Go/internal/crud"
	"github.com/osse101/GrammoRPG_Go/internal/database"
	"github.com/osse101/GrammoRPG_Go/internal/domain"
	"github.com/osse101/GrammoRPG_Go/internal/handler"
	"github.com/osse101/GrammoRPG_Go/internal/logger"
	"github.com/osse101/GrammoRPG_Go/internal/metrics"
	"github.com/osse101/GrammoRPG_Go/internal/player"
	"github.com/osse101/GrammoRPG_Go/internal/user"
)

// Config holds the listener and middleware settings
type Config struct {
	Port           int
	Version        string
	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string
}

// Services are the entity services exposed under /api/v1
type Services struct {
	Players     player.Service
	Items       crud.NamedService[domain.Item, domain.ItemInput, int]
	Inventories crud.Service[domain.Inventory, domain.InventoryInput, int]
	Characters  crud.NamedService[domain.Character, domain.CharacterInput, int]
	Market      crud.Service[domain.MarketListing, domain.MarketListingInput, int]
	Users       user.Service
}

// Server owns the HTTP listener and the rate limiter cleanup loop
type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter

	stopCleanup context.CancelFunc
	cleanupDone chan struct{}
	stopOnce    sync.Once
}

// NewServer creates a new Server instance
func NewServer(cfg Config, dbPool database.Pool, svcs Services) *Server {
	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies)

	s := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           newRouter(cfg, dbPool, svcs, limiter),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
		limiter:     limiter,
		cleanupDone: make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.stopCleanup = cancel
	go func() {
		defer close(s.cleanupDone)
		limiter.RunCleanup(ctx, LimiterCleanupPeriod)
	}()

	return s
}

func newRouter(cfg Config, dbPool database.Pool, svcs Services, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(requestIDMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(limiter.Middleware)
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.RespondError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handler.RespondError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/players", handler.NewEntityHandlers[domain.Player, domain.PlayerInput, uuid.UUID](
			domain.EntityPlayer, svcs.Players, svcs.Players, handler.ParseUUID).Routes())
		r.Mount("/items", handler.NewEntityHandlers[domain.Item, domain.ItemInput, int](
			domain.EntityItem, svcs.Items, svcs.Items, handler.ParseIntID).Routes())
		r.Mount("/inventories", handler.NewEntityHandlers[domain.Inventory, domain.InventoryInput, int](
			domain.EntityInventory, svcs.Inventories, nil, handler.ParseIntID).Routes())
		r.Mount("/characters", handler.NewEntityHandlers[domain.Character, domain.CharacterInput, int](
			domain.EntityCharacter, svcs.Characters, svcs.Characters, handler.ParseIntID).Routes())
		r.Mount("/market-listings", handler.NewEntityHandlers[domain.MarketListing, domain.MarketListingInput, int](
			domain.EntityMarket, svcs.Market, nil, handler.ParseIntID).Routes())
		r.Mount("/users", handler.NewEntityHandlers[domain.User, domain.UserInput, uuid.UUID](
			domain.EntityUser, svcs.Users, nil, handler.ParseUUID).Routes())
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests and stops the limiter cleanup loop
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	s.stopOnce.Do(s.stopCleanup)

	err := s.httpServer.Shutdown(ctx)

	select {
	case <-s.cleanupDone:
	case <-time.After(time.Second):
	}
	return err
}
