// internal/handlers/mcp/write_apex_trigger.go
// MCP Tool: salesforce_write_apex_trigger - create/update Apex trigger

package mcp

import (
	"fmt"
	"net/http"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func WriteApexTriggerTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_write_apex_trigger",
		Description: "Create or update an Apex trigger from source code (Tooling API ApexTrigger).",
		Args: []mcp.ArgSpec{
			{Name: "operation", Kind: mcp.KindString, Required: true, Description: "One of: create, update"},
			{Name: "triggerName", Kind: mcp.KindString, Required: true, Description: "Trigger name"},
			{Name: "apexCode", Kind: mcp.KindString, Required: true, Description: "Full trigger body"},
			{Name: "objectName", Kind: mcp.KindString, Description: "Object the trigger fires on; required for create"},
			{Name: "apiVersion", Kind: mcp.KindNumber, Description: "API version, e.g. 56.0"},
		},
		Handler: writeApexTriggerHandler,
	}
}

func writeApexTriggerHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	operation := argString(args, "operation")
	triggerName := argString(args, "triggerName")
	apexCode := argString(args, "apexCode")

	switch operation {
	case "create":
		objectName := argString(args, "objectName")
		if objectName == "" {
			return nil, fmt.Errorf("objectName is required to create a trigger")
		}
		payload := map[string]any{
			"Name":          triggerName,
			"Body":          apexCode,
			"TableEnumOrId": objectName,
		}
		if v := argInt(args, "apiVersion", 0); v > 0 {
			payload["ApiVersion"] = v
		}
		raw, err := s.RestSend(http.MethodPost, s.DataPath("/tooling/sobjects/ApexTrigger"), payload)
		if err != nil {
			return nil, fmt.Errorf("create apex trigger failed: %w", err)
		}
		return prettyJSON(raw)

	case "update":
		id, err := toolingRecordID(s,
			fmt.Sprintf("SELECT Id FROM ApexTrigger WHERE Name = '%s'", escapeSOQL(triggerName)))
		if err != nil {
			return nil, fmt.Errorf("apex trigger %s not found: %w", triggerName, err)
		}
		_, err = s.RestSend(http.MethodPatch, s.DataPath("/tooling/sobjects/ApexTrigger/"+id), map[string]any{
			"Body": apexCode,
		})
		if err != nil {
			return nil, fmt.Errorf("update apex trigger failed: %w", err)
		}
		return marshalText(map[string]any{"id": id, "trigger": triggerName, "updated": true})
	}
	return nil, fmt.Errorf("unsupported operation %q (want create|update)", operation)
}
