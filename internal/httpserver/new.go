package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"listenote/config"
	"listenote/internal/player"
	"listenote/internal/store"
	"listenote/pkg/log"
	"listenote/pkg/mediameta"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	store     *store.Store
	resolver  *mediameta.Resolver
	tracker   *player.Tracker
	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Store     *store.Store
	Resolver  *mediameta.Resolver
	Tracker   *player.Tracker
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		store:       cfg.Store,
		resolver:    cfg.Resolver,
		tracker:     cfg.Tracker,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.resolver == nil {
		return errors.New("metadata resolver is required")
	}
	if srv.tracker == nil {
		return errors.New("player tracker is required")
	}
	return nil
}
