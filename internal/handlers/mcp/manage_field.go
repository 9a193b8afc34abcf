// internal/handlers/mcp/manage_field.go
// MCP Tool: salesforce_manage_field - create/update custom field via Tooling API

package mcp

import (
	"fmt"
	"net/http"
	"strings"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func ManageFieldTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_manage_field",
		Description: "Create or update a custom field on an object (Tooling API CustomField).",
		Args: []mcp.ArgSpec{
			{Name: "operation", Kind: mcp.KindString, Required: true, Description: "One of: create, update"},
			{Name: "objectName", Kind: mcp.KindString, Required: true, Description: "API name of the object"},
			{Name: "fieldName", Kind: mcp.KindString, Required: true, Description: "Developer name without the __c suffix"},
			{Name: "type", Kind: mcp.KindString, Description: "Field type, e.g. Text, Number, Checkbox, Lookup (default Text)"},
			{Name: "label", Kind: mcp.KindString, Description: "Field label (default: fieldName)"},
			{Name: "referenceTo", Kind: mcp.KindString, Description: "Target object for Lookup fields"},
			{Name: "length", Kind: mcp.KindNumber, Description: "Length for Text fields (default 255)"},
			{Name: "required", Kind: mcp.KindBoolean, Description: "Whether the field is required"},
		},
		Handler: manageFieldHandler,
	}
}

func manageFieldHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	operation := argString(args, "operation")
	objectName := argString(args, "objectName")
	fieldName := strings.TrimSuffix(argString(args, "fieldName"), "__c")

	fieldType := argString(args, "type")
	if fieldType == "" {
		fieldType = "Text"
	}
	label := argString(args, "label")
	if label == "" {
		label = fieldName
	}

	metadata := map[string]any{
		"type":     fieldType,
		"label":    label,
		"required": argBool(args, "required"),
	}
	switch fieldType {
	case "Text":
		metadata["length"] = argInt(args, "length", 255)
	case "Lookup":
		ref := argString(args, "referenceTo")
		if ref == "" {
			return nil, fmt.Errorf("referenceTo is required for Lookup fields")
		}
		metadata["referenceTo"] = ref
		metadata["relationshipName"] = strings.TrimSuffix(ref, "__c") + "Rel"
	case "Number":
		metadata["precision"] = 18
		metadata["scale"] = 2
	}

	fullName := objectName + "." + fieldName + "__c"

	switch operation {
	case "create":
		raw, err := s.RestSend(http.MethodPost, s.DataPath("/tooling/sobjects/CustomField"), map[string]any{
			"FullName": fullName,
			"Metadata": metadata,
		})
		if err != nil {
			return nil, fmt.Errorf("create custom field failed: %w", err)
		}
		return prettyJSON(raw)

	case "update":
		id, err := toolingRecordID(s, fmt.Sprintf(
			"SELECT Id FROM CustomField WHERE DeveloperName = '%s' AND TableEnumOrId = '%s'",
			escapeSOQL(fieldName), escapeSOQL(objectName)))
		if err != nil {
			return nil, fmt.Errorf("custom field %s not found: %w", fullName, err)
		}
		_, err = s.RestSend(http.MethodPatch, s.DataPath("/tooling/sobjects/CustomField/"+id), map[string]any{
			"Metadata": metadata,
		})
		if err != nil {
			return nil, fmt.Errorf("update custom field failed: %w", err)
		}
		return marshalText(map[string]any{"id": id, "field": fullName, "updated": true})
	}
	return nil, fmt.Errorf("unsupported operation %q (want create|update)", operation)
}
