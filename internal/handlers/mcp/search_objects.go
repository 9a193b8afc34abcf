// internal/handlers/mcp/search_objects.go
// MCP Tool: salesforce_search_objects - cari object by nama/label (describe global)

package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func SearchObjectsTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_search_objects",
		Description: "Search Salesforce objects by name or label using a case-insensitive substring pattern.",
		Args: []mcp.ArgSpec{
			{Name: "searchPattern", Kind: mcp.KindString, Required: true, Description: "Substring to match against object API name or label"},
		},
		Handler: searchObjectsHandler,
	}
}

func searchObjectsHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	pattern := strings.ToLower(argString(args, "searchPattern"))

	raw, err := s.RestGet(s.DataPath("/sobjects"))
	if err != nil {
		return nil, fmt.Errorf("describe global failed: %w", err)
	}

	var resp struct {
		Sobjects []struct {
			Name      string `json:"name"`
			Label     string `json:"label"`
			Custom    bool   `json:"custom"`
			Queryable bool   `json:"queryable"`
			KeyPrefix string `json:"keyPrefix"`
		} `json:"sobjects"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode describe global: %w", err)
	}

	matches := []map[string]any{}
	for _, o := range resp.Sobjects {
		if strings.Contains(strings.ToLower(o.Name), pattern) ||
			strings.Contains(strings.ToLower(o.Label), pattern) {
			matches = append(matches, map[string]any{
				"name":      o.Name,
				"label":     o.Label,
				"custom":    o.Custom,
				"queryable": o.Queryable,
				"keyPrefix": o.KeyPrefix,
			})
		}
	}

	return marshalText(map[string]any{
		"searchPattern": argString(args, "searchPattern"),
		"matchCount":    len(matches),
		"objects":       matches,
	})
}
