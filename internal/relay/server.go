// Package relay is the HTTP surface that hides the Riot API key from
// browsers. Each endpoint resolves the searched name to an identity and then
// forwards to the summoner service or the match collector.
package relay

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"lolstats/internal/collector"
	"lolstats/internal/summoner"
)

// UpstreamAPI is everything the relay needs from the Riot client
type UpstreamAPI interface {
	summoner.API
	collector.API
}

// Config holds relay settings
type Config struct {
	Collector   collector.Config
	CORSOrigins []string
	Logger      *slog.Logger
}

// Server routes relay requests
type Server struct {
	router    *chi.Mux
	summoners *summoner.Service
	collector *collector.Collector
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewServer wires the relay routes over api
func NewServer(api UpstreamAPI, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s := &Server{
		router:    chi.NewRouter(),
		summoners: summoner.NewService(api),
		collector: collector.New(api, cfg.Collector, logger),
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     originChecker(origins),
		},
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/summonerInfo", s.handleSummonerInfo)
	s.router.Get("/summonerRank", s.handleSummonerRank)
	s.router.Get("/pastGames", s.handlePastGames)
	s.router.Get("/matchTimeline", s.handleMatchTimeline)
	s.router.Get("/matchPage", s.handleMatchPage)
	s.router.Get("/ws/matches", s.handleMatchStream)

	return s
}

// ServeHTTP makes the server an http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func originChecker(origins []string) func(r *http.Request) bool {
	allowAll := false
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return allowAll || origin == "" || allowed[origin]
	}
}

// requestLogger logs one line per request with slog
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"request_id", middleware.GetReqID(r.Context()))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
