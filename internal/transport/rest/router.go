package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"bizbalance/internal/service"
	"bizbalance/internal/transport/rest/handler"
	"bizbalance/internal/transport/rest/middleware"
	"bizbalance/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	DiagnosisService *service.DiagnosisService
	QuestService     *service.QuestService
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	diagnosisHandler := handler.NewDiagnosisHandler(c.DiagnosisService)
	questHandler := handler.NewQuestHandler(c.QuestService)
	dashboardHandler := handler.NewDashboardHandler(c.DiagnosisService, c.QuestService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param, validated in the handler)
	v1.HandleFunc("/ws/vips/{vipId}", wsHandler.VIPWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Agent routes (require agent auth)
	agentRoutes := v1.NewRoute().Subrouter()
	agentRoutes.Use(authMW.RequireAgent)

	agentRoutes.HandleFunc("/auth/vips/{vipId}/token", authHandler.MintVIPToken).Methods("POST", "OPTIONS")
	agentRoutes.HandleFunc("/quests/init", questHandler.Initialize).Methods("POST", "OPTIONS")
	agentRoutes.HandleFunc("/quests/{questId}/complete", questHandler.CompleteOverride).Methods("POST", "OPTIONS")

	// VIP routes (require VIP auth)
	vipRoutes := v1.NewRoute().Subrouter()
	vipRoutes.Use(authMW.RequireVIP)

	vipRoutes.HandleFunc("/diagnosis/start", diagnosisHandler.Start).Methods("POST", "OPTIONS")
	vipRoutes.HandleFunc("/diagnosis/questions", diagnosisHandler.Questions).Methods("GET", "OPTIONS")
	vipRoutes.HandleFunc("/diagnosis/answer", diagnosisHandler.SaveAnswer).Methods("POST", "OPTIONS")
	vipRoutes.HandleFunc("/diagnosis/complete", diagnosisHandler.Complete).Methods("POST", "OPTIONS")

	vipRoutes.HandleFunc("/vip/dashboard/health", dashboardHandler.Health).Methods("GET", "OPTIONS")
	vipRoutes.HandleFunc("/vip/quests", questHandler.List).Methods("GET", "OPTIONS")
	vipRoutes.HandleFunc("/vip/quests/current", questHandler.Current).Methods("GET", "OPTIONS")
	vipRoutes.HandleFunc("/vip/notifications", dashboardHandler.Notifications).Methods("GET", "OPTIONS")

	vipRoutes.HandleFunc("/quests/{questId}/generate-checklist", questHandler.GenerateChecklist).Methods("POST", "OPTIONS")
	vipRoutes.HandleFunc("/quests/{questId}/evaluate", questHandler.Evaluate).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
