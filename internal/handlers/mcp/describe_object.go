// internal/handlers/mcp/describe_object.go
// MCP Tool: salesforce_describe_object - metadata lengkap satu object

package mcp

import (
	"fmt"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func DescribeObjectTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_describe_object",
		Description: "Get the full describe metadata for one Salesforce object: fields, types, relationships, picklists.",
		Args: []mcp.ArgSpec{
			{Name: "objectName", Kind: mcp.KindString, Required: true, Description: "API name of the object"},
		},
		Handler: describeObjectHandler,
	}
}

func describeObjectHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	objectName := argString(args, "objectName")
	meta, err := s.Describe(objectName)
	if err != nil {
		return nil, fmt.Errorf("describe %s failed: %w", objectName, err)
	}
	return marshalText(meta)
}
