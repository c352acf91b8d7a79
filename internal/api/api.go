package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"wealthdesk/pkg/wealthdesk"
)

// NewRouter builds the HTTP API router.
func NewRouter(core *wealthdesk.Core, advisor *wealthdesk.Advisor, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLoggingMiddleware(logger))
	r.Use(recoveryLoggingMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	h := &handler{core: core, advisor: advisor, logger: logger}

	r.Get("/api/health", h.health)

	// Auth and users
	r.Post("/api/auth/register", h.register)
	r.Post("/api/auth/login", h.login)
	r.Get("/api/users/{id}", h.getUser)

	// Portfolio
	r.Get("/api/portfolio/{userID}", h.getPortfolio)
	r.Post("/api/portfolio", h.addPortfolioAsset)
	r.Put("/api/portfolio/{id}", h.updatePortfolioAsset)
	r.Delete("/api/portfolio/{id}", h.deletePortfolioAsset)

	// Financial goals
	r.Get("/api/goals/{userID}", h.getGoals)
	r.Post("/api/goals", h.addGoal)
	r.Put("/api/goals/{id}", h.updateGoal)
	r.Delete("/api/goals/{id}", h.deleteGoal)

	// Market data
	r.Get("/api/market/data", h.getMarketData)
	r.Post("/api/market/data", h.addMarketIndicator)
	r.Put("/api/market/data/{id}", h.updateMarketIndicator)

	// AI advisor chat
	r.Get("/api/chat/history/{userID}", h.getChatHistory)
	r.Post("/api/chat/completion", h.chatCompletion)

	// CRM
	r.Get("/api/crm/contacts/{userID}", h.getCRMContacts)
	r.Get("/api/crm/opportunities/{userID}", h.getCRMOpportunities)
	r.Get("/api/crm/tasks/{userID}", h.getCRMTasks)
	r.Post("/api/crm/tasks", h.addCRMTask)

	// Advisor settings
	r.Get("/api/ai/settings", h.getAISettings)
	r.Put("/api/ai/settings", h.setAISettings)

	return r
}

type handler struct {
	core    *wealthdesk.Core
	advisor *wealthdesk.Advisor
	logger  *slog.Logger
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
