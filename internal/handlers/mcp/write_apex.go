// internal/handlers/mcp/write_apex.go
// MCP Tool: salesforce_write_apex - create/update Apex class via Tooling API

package mcp

import (
	"fmt"
	"net/http"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func WriteApexTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_write_apex",
		Description: "Create or update an Apex class from source code (Tooling API ApexClass).",
		Args: []mcp.ArgSpec{
			{Name: "operation", Kind: mcp.KindString, Required: true, Description: "One of: create, update"},
			{Name: "className", Kind: mcp.KindString, Required: true, Description: "Class name"},
			{Name: "apexCode", Kind: mcp.KindString, Required: true, Description: "Full class body"},
			{Name: "apiVersion", Kind: mcp.KindNumber, Description: "API version, e.g. 56.0"},
		},
		Handler: writeApexHandler,
	}
}

func writeApexHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	operation := argString(args, "operation")
	className := argString(args, "className")
	apexCode := argString(args, "apexCode")

	switch operation {
	case "create":
		payload := map[string]any{
			"Name": className,
			"Body": apexCode,
		}
		if v := argInt(args, "apiVersion", 0); v > 0 {
			payload["ApiVersion"] = v
		}
		raw, err := s.RestSend(http.MethodPost, s.DataPath("/tooling/sobjects/ApexClass"), payload)
		if err != nil {
			return nil, fmt.Errorf("create apex class failed: %w", err)
		}
		return prettyJSON(raw)

	case "update":
		id, err := toolingRecordID(s,
			fmt.Sprintf("SELECT Id FROM ApexClass WHERE Name = '%s'", escapeSOQL(className)))
		if err != nil {
			return nil, fmt.Errorf("apex class %s not found: %w", className, err)
		}
		_, err = s.RestSend(http.MethodPatch, s.DataPath("/tooling/sobjects/ApexClass/"+id), map[string]any{
			"Body": apexCode,
		})
		if err != nil {
			return nil, fmt.Errorf("update apex class failed: %w", err)
		}
		return marshalText(map[string]any{"id": id, "class": className, "updated": true})
	}
	return nil, fmt.Errorf("unsupported operation %q (want create|update)", operation)
}
