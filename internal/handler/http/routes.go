package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.banner)
		r.Get("/health", h.health)

		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Get("/openapi.json", h.openAPISpec)
		r.Get("/docs", h.swaggerUI)
		r.Get("/redoc", h.redoc)

		r.Handle("/metrics", promhttp.Handler())
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/profile", h.profile)
		r.Get("/predict", h.predict)

		r.With(h.withChatRateLimit).Post("/chat", h.chat)

		r.Route("/documents", func(r chi.Router) {
			r.Post("/upload", h.uploadDocument)
			r.Post("/upload-text", h.uploadText)
			r.Get("/search", h.searchDocuments)
			r.Get("/", h.listDocuments)
			r.Delete("/", h.clearDocuments)
			r.Get("/stats", h.knowledgeStats)
		})

		r.Route("/assessment", func(r chi.Router) {
			r.Post("/start", h.startAssessment)
			r.Post("/respond", h.respondAssessment)
			r.Get("/sessions", h.listAssessmentSessions)
			r.Get("/{sessionID}/summary", h.assessmentSummary)
			r.Delete("/{sessionID}", h.deleteAssessmentSession)
		})
	})

	return router
}
