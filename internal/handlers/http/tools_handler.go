// internal/handlers/http/tools_handler.go
// GET /tools - dump registry, bentuknya sama persis dengan result tools/list

package http

import (
	"encoding/json"
	"net/http"

	"mcp-salesforce/internal/mcp"
)

func ToolsHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"tools": mcp.Descriptors()}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
