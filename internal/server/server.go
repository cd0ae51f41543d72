package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dmartell/amorcito-api/internal/database"
	"github.com/dmartell/amorcito-api/internal/handler"
	"github.com/dmartell/amorcito-api/internal/logger"
	"github.com/dmartell/amorcito-api/internal/metrics"
	"github.com/dmartell/amorcito-api/internal/phrase"
	"github.com/dmartell/amorcito-api/internal/progress"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	progressService progress.Service
	phraseService   phrase.Service
}

// NewServer creates a new Server instance
func NewServer(port int, corsOrigins []string, dbPool database.Pool, progressService progress.Service, phraseService phrase.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(corsMiddleware(corsOrigins))
	r.Use(requestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API routes - paths and payloads match the frontend contract
	r.Route("/api", func(r chi.Router) {
		// State routes
		r.Get("/estado", handler.HandleGetState(progressService))
		r.Post("/dar-punto", handler.HandleAwardPoint(progressService))

		// Letter routes
		r.Get("/cartas", handler.HandleListLetters(progressService))
		r.Post("/leer-carta/{id}", handler.HandleReadLetter(progressService))

		// Reason routes
		r.Get("/razones", handler.HandleListReasons(progressService))

		// Prize routes
		r.Get("/premios", handler.HandleListPrizes(progressService))
		r.Post("/reclamar-premio", handler.HandleClaimPrize(progressService))

		// Game routes
		r.Post("/completar-juego", handler.HandleCompleteGame(progressService))

		// Song routes
		r.Get("/canciones", handler.HandleListSongs(progressService))
		r.Get("/canciones/{id}", handler.HandleGetSong(progressService))
		r.Post("/escuchar-cancion", handler.HandleListenToSong(progressService))
		r.Post("/escuchar-cancion/{id}", handler.HandleListenToSongByID(progressService))

		// Phrase routes - static content, no progress involvement
		r.Route("/frases", func(r chi.Router) {
			r.Get("/", handler.HandleListPhrases(phraseService))
			r.Get("/aleatoria", handler.HandleRandomPhrase(phraseService))
			r.Get("/{id}", handler.HandleGetPhrase(phraseService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		progressService: progressService,
		phraseService:   phraseService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
