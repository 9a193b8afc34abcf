// internal/handlers/mcp/read_apex.go
// MCP Tool: salesforce_read_apex - baca source Apex class via Tooling API

package mcp

import (
	"fmt"
	"strings"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func ReadApexTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_read_apex",
		Description: "Read Apex class source. Provide className for an exact match or namePattern with * wildcards.",
		Args: []mcp.ArgSpec{
			{Name: "className", Kind: mcp.KindString, Description: "Exact class name"},
			{Name: "namePattern", Kind: mcp.KindString, Description: "Name pattern, * as wildcard"},
		},
		Handler: readApexHandler,
	}
}

// apexNameFilter WHERE clause untuk pencarian by nama; dipakai juga trigger.
// Pattern pakai * sebagai wildcard, diterjemahkan ke LIKE %.
func apexNameFilter(exactName, namePattern string) (string, error) {
	if exactName != "" {
		return fmt.Sprintf("Name = '%s'", escapeSOQL(exactName)), nil
	}
	if namePattern != "" {
		like := strings.ReplaceAll(escapeSOQL(namePattern), "*", "%")
		return fmt.Sprintf("Name LIKE '%s'", like), nil
	}
	return "", fmt.Errorf("either className/triggerName or namePattern must be provided")
}

func readApexHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	filter, err := apexNameFilter(argString(args, "className"), argString(args, "namePattern"))
	if err != nil {
		return nil, err
	}

	records, err := toolingRecords(s, fmt.Sprintf(
		"SELECT Id, Name, ApiVersion, Status, LengthWithoutComments, Body FROM ApexClass WHERE %s ORDER BY Name",
		filter))
	if err != nil {
		return nil, fmt.Errorf("read apex classes failed: %w", err)
	}
	return marshalText(map[string]any{
		"matchCount": len(records),
		"classes":    records,
	})
}
