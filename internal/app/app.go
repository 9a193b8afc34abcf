// internal/app/app.go
package app

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"mcp-salesforce/internal/config"
	mcphandlers "mcp-salesforce/internal/handlers/mcp"
	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/middleware"
	"mcp-salesforce/internal/salesforce"
)

// App menampung router utama
type App struct {
	Router *mux.Router
}

// New membuat instance App + registrasi semua routes dan tool MCP.
// Config dipass eksplisit; tidak ada baca env di sini.
func New(cfg *config.Config) *App {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	// === Salesforce session factory ===
	// Satu sesi baru per tools/call, dari Credentials per-request.
	mcp.SetSessionFactory(salesforce.ConnectFactory(cfg.SFAPIVersion))

	// ---- MCP (Model Context Protocol) ----
	registerMCPTools()

	RegisterRoutes(r, cfg)

	return &App{Router: r}
}

// Run menjalankan server HTTP
func (a *App) Run(addr string) {
	log.Printf("server running on %s", addr)
	if err := http.ListenAndServe(addr, a.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// ----------------- MCP Wiring -----------------

// registerMCPTools mendaftarkan semua tool ke registry.
// Urutan di sini = urutan tools/list; jangan diacak.
func registerMCPTools() {
	// Query & discovery schema
	mcp.Register(mcphandlers.QueryRecordsTool())
	mcp.Register(mcphandlers.AggregateQueryTool())
	mcp.Register(mcphandlers.SearchObjectsTool())
	mcp.Register(mcphandlers.DescribeObjectTool())

	// DML & pencarian lintas object
	mcp.Register(mcphandlers.DMLRecordsTool())
	mcp.Register(mcphandlers.SearchAllTool())

	// Schema management
	mcp.Register(mcphandlers.ManageObjectTool())
	mcp.Register(mcphandlers.ManageFieldTool())
	mcp.Register(mcphandlers.ManageFieldPermissionsTool())

	// Apex code
	mcp.Register(mcphandlers.ReadApexTool())
	mcp.Register(mcphandlers.WriteApexTool())
	mcp.Register(mcphandlers.ReadApexTriggerTool())
	mcp.Register(mcphandlers.WriteApexTriggerTool())
	mcp.Register(mcphandlers.ExecuteAnonymousTool())

	// Observability sisi Salesforce
	mcp.Register(mcphandlers.ManageDebugLogsTool())
}
