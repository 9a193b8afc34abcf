// cmd/mcp-server/main.go
package main

import (
	"mcp-salesforce/internal/app"
	"mcp-salesforce/internal/config"
)

func main() {
	cfg := config.Load()
	a := app.New(cfg)
	a.Run(cfg.Host + ":" + cfg.Port)
}
