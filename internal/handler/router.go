package handler

import (
	"net/http"

	"github.com/Dan9191/bank-recommender/internal/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter registers every route. Client routes require a bearer token signed with jwtSecret.
func NewRouter(h *Handler, jwtSecret string, corsOrigins []string, log *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Public routes
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/reference-rate", h.ReferenceRate).Methods(http.MethodGet)
	r.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)

	// Protected routes
	clients := r.PathPrefix("/clients/{id}").Subrouter()
	clients.Use(middleware.AuthMiddleware(jwtSecret))
	clients.HandleFunc("/recommendations", h.GetRecommendations).Methods(http.MethodGet)
	clients.HandleFunc("/insights", h.ClearInsights).Methods(http.MethodDelete)
	clients.HandleFunc("/insights/refresh", h.RefreshInsights).Methods(http.MethodPost)
	clients.HandleFunc("/digest", h.SendDigest).Methods(http.MethodPost)

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})(r)
}
