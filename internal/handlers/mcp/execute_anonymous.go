// internal/handlers/mcp/execute_anonymous.go
// MCP Tool: salesforce_execute_anonymous - jalankan anonymous Apex block

package mcp

import (
	"fmt"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func ExecuteAnonymousTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_execute_anonymous",
		Description: "Execute an anonymous Apex block and return the compile/run outcome.",
		Args: []mcp.ArgSpec{
			{Name: "apexCode", Kind: mcp.KindString, Required: true, Description: "Apex statements to execute"},
		},
		Handler: executeAnonymousHandler,
	}
}

func executeAnonymousHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	result, err := s.ExecuteAnonymous(argString(args, "apexCode"))
	if err != nil {
		return nil, fmt.Errorf("execute anonymous failed: %w", err)
	}
	return marshalText(result)
}
