package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prakash/ats-cv-generator/internal/compiler"
	"github.com/prakash/ats-cv-generator/internal/config"
	"github.com/prakash/ats-cv-generator/internal/db"
	"github.com/prakash/ats-cv-generator/internal/ingestion"
	"github.com/prakash/ats-cv-generator/internal/llm"
	"github.com/prakash/ats-cv-generator/internal/observability"
	"github.com/prakash/ats-cv-generator/internal/optimizer"
	"github.com/prakash/ats-cv-generator/internal/rendering"
	"github.com/prakash/ats-cv-generator/internal/server/middleware"
	"github.com/prakash/ats-cv-generator/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	db             *db.DB
	rateLimiter    *ratelimit.Limiter
	jwtService     *JWTService
	userService    *UserService
	authHandler    *AuthHandler
	profileHandler *ProfileHandler
	cvHandler      *CVHandler
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s := &Server{
		db: database,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.profileHandler = NewProfileHandler(database)

	// Generation pipeline
	llmClient, err := llm.NewClient(ctx, llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	llmService := llm.NewService(llmClient, cfg.LLMTimeout)

	renderer, err := rendering.NewGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create LaTeX generator: %w", err)
	}

	engineOpts := optimizer.Options{
		TargetScore: cfg.TargetScore,
		MaxAttempts: cfg.MaxAttempts,
	}
	if cfg.Verbose {
		engineOpts.Progress = observability.NewPrinter(os.Stdout)
	}
	engine := optimizer.New(llmService, renderer, engineOpts)

	docCompiler := compiler.New(compiler.Options{
		LaTeXTimeout:  cfg.LaTeXTimeout,
		PandocTimeout: cfg.PandocTimeout,
	})

	fetchOpts := ingestion.DefaultOptions()
	fetchOpts.UseBrowser = cfg.UseBrowser
	fetchOpts.Verbose = cfg.Verbose
	fetchJob := func(ctx context.Context, jobURL string) (string, error) {
		return ingestion.JobDescription(ctx, jobURL, fetchOpts)
	}

	cvService := NewCVService(database, llmService, engine, docCompiler, fetchJob)
	s.cvHandler = NewCVHandler(cvService)

	// Router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("POST /auth/refresh", s.authHandler.Refresh)

	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	protect := func(h http.HandlerFunc) http.Handler { return requireAuth(h) }

	mux.Handle("GET /auth/me", protect(s.authHandler.Me))
	mux.Handle("PUT /auth/password", protect(s.authHandler.UpdatePassword))

	mux.Handle("GET /profile", protect(s.profileHandler.Get))
	mux.Handle("PUT /profile", protect(s.profileHandler.Upsert))

	mux.Handle("POST /cv/generate", protect(s.cvHandler.Generate))
	mux.Handle("POST /cv/analyze", protect(s.cvHandler.Analyze))
	mux.Handle("GET /cv/history", protect(s.cvHandler.History))
	mux.Handle("GET /cv/{id}", protect(s.cvHandler.Get))
	mux.Handle("GET /cv/{id}/latex", protect(s.cvHandler.GetLaTeX))
	mux.Handle("POST /cv/{id}/compile-pdf", protect(s.cvHandler.CompilePDF))
	mux.Handle("POST /cv/{id}/convert-docx", protect(s.cvHandler.ConvertDOCX))
	mux.Handle("DELETE /cv/{id}", protect(s.cvHandler.Delete))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // generation runs can take minutes
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored since it is spoofable without a trusted proxy in front.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	writeJSON(w, http.StatusTooManyRequests, response)
}
