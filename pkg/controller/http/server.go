// Package http exposes the assessment and scanning API over REST.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/privacy-lab/tikun13/pkg/usecase"
	"github.com/privacy-lab/tikun13/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/evaluate", s.handleEvaluate)

		r.Route("/assessments", func(r chi.Router) {
			r.Post("/", s.handleStartAssessment)
			r.Get("/", s.handleListAssessments)
			r.Route("/{assessmentID}", func(r chi.Router) {
				r.Get("/", s.handleGetAssessment)
				r.Delete("/", s.handleDeleteAssessment)
				r.Put("/answers/{questionID}", s.handleSaveAnswer)
				r.Put("/progress", s.handleSetProgress)
				r.Post("/complete", s.handleComplete)
				r.Get("/report", s.handleAssessmentReport)
			})
		})

		r.Route("/scans", func(r chi.Router) {
			r.Post("/", s.handleScan)
			r.Get("/", s.handleListScans)
			r.Get("/{scanID}", s.handleGetScan)
			r.Delete("/{scanID}", s.handleDeleteScan)
			r.Get("/{scanID}/report", s.handleScanReport)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger logs HTTP requests and installs a request-scoped logger
// carrying the request ID into the context
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		r = r.WithContext(logging.With(r.Context(), logger))

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
