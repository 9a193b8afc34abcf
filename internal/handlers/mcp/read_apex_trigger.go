// internal/handlers/mcp/read_apex_trigger.go
// MCP Tool: salesforce_read_apex_trigger - baca source Apex trigger

package mcp

import (
	"fmt"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func ReadApexTriggerTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_read_apex_trigger",
		Description: "Read Apex trigger source. Provide triggerName for an exact match or namePattern with * wildcards.",
		Args: []mcp.ArgSpec{
			{Name: "triggerName", Kind: mcp.KindString, Description: "Exact trigger name"},
			{Name: "namePattern", Kind: mcp.KindString, Description: "Name pattern, * as wildcard"},
		},
		Handler: readApexTriggerHandler,
	}
}

func readApexTriggerHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	filter, err := apexNameFilter(argString(args, "triggerName"), argString(args, "namePattern"))
	if err != nil {
		return nil, err
	}

	records, err := toolingRecords(s, fmt.Sprintf(
		"SELECT Id, Name, TableEnumOrId, ApiVersion, Status, Body FROM ApexTrigger WHERE %s ORDER BY Name",
		filter))
	if err != nil {
		return nil, fmt.Errorf("read apex triggers failed: %w", err)
	}
	return marshalText(map[string]any{
		"matchCount": len(records),
		"triggers":   records,
	})
}
