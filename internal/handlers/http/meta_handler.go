// internal/handlers/http/meta_handler.go
// GET / - metadata statis service (nama, versi, endpoint yang tersedia)

package http

import (
	"encoding/json"
	"net/http"

	"mcp-salesforce/internal/mcp"
)

func MetaHandler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"name":        service,
			"version":     mcp.ServerVersion,
			"protocol":    mcp.ProtocolVersion,
			"description": "MCP gateway for Salesforce: JSON-RPC 2.0 over HTTP with per-request credential injection",
			"endpoints": map[string]string{
				"mcp":    "POST /mcp",
				"tools":  "GET /tools",
				"health": "GET /health",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
