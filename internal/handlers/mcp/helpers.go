// internal/handlers/mcp/helpers.go
// Helper bersama untuk semua tool handler: akses argumen coarse-typed,
// formatting hasil, escaping SOQL, dan akses record Tooling API.

package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

// ===== Akses argumen hasil validator (bentuk kasar sudah dijamin) =====

func argString(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func argInt(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return def
}

func argBool(args map[string]any, key string) bool {
	v, _ := args[key].(bool)
	return v
}

func argStringSlice(args map[string]any, key string) []string {
	raw, _ := args[key].([]any)
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func argMapSlice(args map[string]any, key string) []map[string]any {
	raw, _ := args[key].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// ===== Formatting hasil =====

// marshalText serialisasi nilai apa pun jadi satu blok text JSON rapi.
func marshalText(v any) (*mcp.ToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.TextResult(string(b)), nil
}

// prettyJSON rapikan raw bytes dari REST API; non-JSON diteruskan apa adanya.
func prettyJSON(raw []byte) (*mcp.ToolResult, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return mcp.TextResult(string(raw)), nil
	}
	return marshalText(v)
}

// ===== SOQL =====

// escapeSOQL escape string literal untuk klausa WHERE.
func escapeSOQL(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return s
}

// ===== Tooling API =====

// toolingRecords query Tooling API lalu ambil array records-nya.
func toolingRecords(s *salesforce.Session, soql string) ([]map[string]any, error) {
	raw, err := s.ToolingQuery(soql)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Records []map[string]any `json:"records"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode tooling response: %w", err)
	}
	return resp.Records, nil
}

// toolingRecordID ambil Id record pertama; error kalau kosong.
func toolingRecordID(s *salesforce.Session, soql string) (string, error) {
	recs, err := toolingRecords(s, soql)
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return "", fmt.Errorf("no record found for: %s", soql)
	}
	id, _ := recs[0]["Id"].(string)
	if id == "" {
		return "", fmt.Errorf("record has no Id for: %s", soql)
	}
	return id, nil
}
