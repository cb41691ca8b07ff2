package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dayeon/seoulite/internal/api/handler"
	mw "github.com/dayeon/seoulite/internal/api/middleware"
	"github.com/dayeon/seoulite/internal/auth"
	"github.com/dayeon/seoulite/internal/config"
	"github.com/dayeon/seoulite/internal/core"
	"github.com/dayeon/seoulite/internal/payment"
	"github.com/dayeon/seoulite/internal/storage"
)

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	services *core.Services
	pool     *pgxpool.Pool
	cfg      *config.Config
}

func NewServer(logger zerolog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Server {
	services := core.NewServices(pool)

	provider := auth.NewClient(cfg.AuthURL, cfg.AuthAPIKey, "google")
	cookies := auth.NewCookieStore(cfg.SecureCookies())
	sessions := auth.NewSessionReader(provider, cookies)

	uploader := storage.NewUploader(logger, storage.UploaderConfig{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Bucket:        cfg.S3Bucket,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	gateway := payment.NewClient(cfg.PaymentAPIURL, cfg.PaymentSecretKey)

	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		services: services,
		pool:     pool,
		cfg:      cfg,
	}

	s.setupMiddleware(sessions)
	s.setupRoutes(provider, cookies, uploader, gateway)

	return s
}

func (s *Server) setupMiddleware(sessions *auth.SessionReader) {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(chimw.Recoverer)
	s.router.Use(mw.Metrics)
	s.router.Use(mw.CORS(s.cfg.CORSOrigins))
	s.router.Use(mw.Session(sessions))
}

func (s *Server) setupRoutes(provider auth.Provider, cookies *auth.CookieStore, uploader *storage.Uploader, gateway *payment.Client) {
	// Prometheus metrics
	s.router.Handle("/metrics", promhttp.Handler())

	// Health checks
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	// App shell for the landing and login pages; all data flows through
	// the JSON API below.
	s.router.Get("/", s.handleShell)
	s.router.Get("/login", s.handleShell)

	// OAuth login flow
	authHandler := handler.NewAuth(provider, cookies, s.cfg.SiteURL)
	s.router.Get("/auth/start", authHandler.Start)
	s.router.Get("/auth/callback", authHandler.Callback)
	s.router.Get("/auth/signout", authHandler.SignOut)
	s.router.Post("/auth/signout", authHandler.SignOutJSON)

	s.router.Route("/api", func(r chi.Router) {
		// Public content
		board := handler.NewBoard(s.services.Board, s.services.Profile)
		r.Get("/board/posts", board.List)
		r.Get("/board/posts/{id}", board.Get)

		gallery := handler.NewGallery(s.services.Gallery, s.services.Profile, uploader)
		r.Get("/gallery", gallery.List)

		// Signed-in content
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireUser)

			me := handler.NewMe(s.services.Profile)
			r.Get("/me", me.Get)

			r.Post("/board/posts", board.Create)
			r.Post("/board/posts/{id}/replies", board.Reply)
			r.Post("/board/posts/{id}/answered", board.MarkAnswered)

			dm := handler.NewDM(s.services.DM)
			r.Get("/dm/thread", dm.GetThread)
			r.Post("/dm/thread", dm.OpenThread)
			r.Post("/dm/messages", dm.SendMessage)

			r.Post("/gallery", gallery.Upload)

			tip := handler.NewTip(s.services.Tip, gateway, s.cfg.SiteURL)
			r.Post("/tips/checkout", tip.Checkout)

			report := handler.NewReport(s.services.Report)
			r.Post("/reports", report.Create)
		})
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := s.pool.Ping(ctx); err != nil {
		checks["db"] = err.Error()
		healthy = false
	} else {
		checks["db"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

func (s *Server) handleShell(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(shellHTML))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

const shellHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>Ordinary Seoulite</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <div id="root"></div>
  <script type="module" src="/assets/app.js"></script>
</body>
</html>`
