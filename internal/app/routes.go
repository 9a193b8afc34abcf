// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"mcp-salesforce/internal/config"
	hh "mcp-salesforce/internal/handlers/http"
	"mcp-salesforce/internal/mcp"
)

// RegisterRoutes menambahkan seluruh surface HTTP gateway.
func RegisterRoutes(r *mux.Router, cfg *config.Config) {
	r.HandleFunc("/health", hh.HealthHandler(cfg.AppName)).Methods(http.MethodGet)
	r.HandleFunc("/", hh.MetaHandler(cfg.AppName)).Methods(http.MethodGet)
	r.HandleFunc("/tools", hh.ToolsHandler).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)

	// Endpoint JSON-RPC utama. Auth policy dipass eksplisit dari config.
	pol := mcp.AuthPolicy{RequireAuth: cfg.RequireAuth, SecretKey: cfg.SecretKey}
	r.HandleFunc("/mcp", mcp.NewRouterHandler(pol, cfg.AppName)).Methods(http.MethodPost)

	// Preflight catch-all (header CORS sudah dipasang middleware)
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
