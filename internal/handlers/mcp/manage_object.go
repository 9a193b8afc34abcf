// internal/handlers/mcp/manage_object.go
// MCP Tool: salesforce_manage_object - create/update custom object via Tooling API

package mcp

import (
	"fmt"
	"net/http"
	"strings"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func ManageObjectTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_manage_object",
		Description: "Create or update a custom object (Tooling API CustomObject). objectName without the __c suffix.",
		Args: []mcp.ArgSpec{
			{Name: "operation", Kind: mcp.KindString, Required: true, Description: "One of: create, update"},
			{Name: "objectName", Kind: mcp.KindString, Required: true, Description: "Developer name, e.g. Invoice"},
			{Name: "label", Kind: mcp.KindString, Description: "Object label"},
			{Name: "pluralLabel", Kind: mcp.KindString, Description: "Plural label"},
			{Name: "description", Kind: mcp.KindString, Description: "Object description"},
		},
		Handler: manageObjectHandler,
	}
}

func manageObjectHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	operation := argString(args, "operation")
	objectName := strings.TrimSuffix(argString(args, "objectName"), "__c")
	label := argString(args, "label")
	if label == "" {
		label = objectName
	}
	pluralLabel := argString(args, "pluralLabel")
	if pluralLabel == "" {
		pluralLabel = label + "s"
	}

	metadata := map[string]any{
		"label":            label,
		"pluralLabel":      pluralLabel,
		"deploymentStatus": "Deployed",
		"sharingModel":     "ReadWrite",
		"nameField": map[string]any{
			"type":  "Text",
			"label": label + " Name",
		},
	}
	if desc := argString(args, "description"); desc != "" {
		metadata["description"] = desc
	}

	switch operation {
	case "create":
		raw, err := s.RestSend(http.MethodPost, s.DataPath("/tooling/sobjects/CustomObject"), map[string]any{
			"FullName": objectName + "__c",
			"Metadata": metadata,
		})
		if err != nil {
			return nil, fmt.Errorf("create custom object failed: %w", err)
		}
		return prettyJSON(raw)

	case "update":
		id, err := toolingRecordID(s,
			fmt.Sprintf("SELECT Id FROM CustomObject WHERE DeveloperName = '%s'", escapeSOQL(objectName)))
		if err != nil {
			return nil, fmt.Errorf("custom object %s not found: %w", objectName, err)
		}
		_, err = s.RestSend(http.MethodPatch, s.DataPath("/tooling/sobjects/CustomObject/"+id), map[string]any{
			"Metadata": metadata,
		})
		if err != nil {
			return nil, fmt.Errorf("update custom object failed: %w", err)
		}
		return marshalText(map[string]any{"id": id, "object": objectName + "__c", "updated": true})
	}
	return nil, fmt.Errorf("unsupported operation %q (want create|update)", operation)
}
