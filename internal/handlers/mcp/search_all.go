// internal/handlers/mcp/search_all.go
// MCP Tool: salesforce_search_all - SOSL lintas object

package mcp

import (
	"fmt"
	"net/url"
	"strings"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func SearchAllTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_search_all",
		Description: "Search a term across multiple objects with SOSL. Each entry in objects is {name, fields?}.",
		Args: []mcp.ArgSpec{
			{Name: "searchTerm", Kind: mcp.KindString, Required: true, Description: "Term to search in all fields"},
			{Name: "objects", Kind: mcp.KindArray, Required: true, Description: "Objects to search, e.g. [{\"name\":\"Account\",\"fields\":[\"Id\",\"Name\"]}]"},
		},
		Handler: searchAllHandler,
	}
}

// escapeSOSL escape karakter reserved di search term SOSL.
func escapeSOSL(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`, `'`, `\'`, `"`, `\"`,
		`{`, `\{`, `}`, `\}`,
	)
	return replacer.Replace(s)
}

// buildSearchSOSL pure function: FIND {term} IN ALL FIELDS RETURNING ...
func buildSearchSOSL(term string, objects []map[string]any) (string, error) {
	returning := make([]string, 0, len(objects))
	for _, o := range objects {
		name, _ := o["name"].(string)
		if name == "" {
			return "", fmt.Errorf("objects entries must have a non-empty name")
		}
		entry := name
		if rawFields, ok := o["fields"].([]any); ok && len(rawFields) > 0 {
			fields := make([]string, 0, len(rawFields))
			for _, f := range rawFields {
				if fs, ok := f.(string); ok && fs != "" {
					fields = append(fields, fs)
				}
			}
			if len(fields) > 0 {
				entry = fmt.Sprintf("%s(%s)", name, strings.Join(fields, ", "))
			}
		}
		returning = append(returning, entry)
	}
	return fmt.Sprintf("FIND {%s} IN ALL FIELDS RETURNING %s",
		escapeSOSL(term), strings.Join(returning, ", ")), nil
}

func searchAllHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	objects := argMapSlice(args, "objects")
	if len(objects) == 0 {
		return nil, fmt.Errorf("objects must contain at least one object entry")
	}

	sosl, err := buildSearchSOSL(argString(args, "searchTerm"), objects)
	if err != nil {
		return nil, err
	}

	raw, err := s.RestGet(s.DataPath("/search/?q=" + url.QueryEscape(sosl)))
	if err != nil {
		return nil, fmt.Errorf("sosl search failed: %w", err)
	}
	return prettyJSON(raw)
}
