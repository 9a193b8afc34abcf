// internal/handlers/mcp/query_records.go
// MCP Tool: salesforce_query_records - query SOQL terhadap satu object

package mcp

import (
	"fmt"
	"strings"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func QueryRecordsTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_query_records",
		Description: "Query records from a Salesforce object using SOQL, with optional WHERE, ORDER BY and LIMIT.",
		Args: []mcp.ArgSpec{
			{Name: "objectName", Kind: mcp.KindString, Required: true, Description: "API name of the object, e.g. Account"},
			{Name: "fields", Kind: mcp.KindArray, Required: true, Description: "Field names to select"},
			{Name: "whereClause", Kind: mcp.KindString, Description: "WHERE clause body, without the WHERE keyword"},
			{Name: "orderBy", Kind: mcp.KindString, Description: "ORDER BY clause body"},
			{Name: "limit", Kind: mcp.KindNumber, Description: "Max records to return"},
		},
		Handler: queryRecordsHandler,
	}
}

// buildQuerySOQL pure function, gampang diuji tanpa koneksi.
func buildQuerySOQL(objectName string, fields []string, whereClause, orderBy string, limit int) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(fields, ", "))
	b.WriteString(" FROM ")
	b.WriteString(objectName)
	if whereClause != "" {
		b.WriteString(" WHERE ")
		b.WriteString(whereClause)
	}
	if orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}
	if limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", limit)
	}
	return b.String()
}

func queryRecordsHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	fields := argStringSlice(args, "fields")
	if len(fields) == 0 {
		return nil, fmt.Errorf("fields must contain at least one field name")
	}

	soql := buildQuerySOQL(
		argString(args, "objectName"),
		fields,
		argString(args, "whereClause"),
		argString(args, "orderBy"),
		argInt(args, "limit", 0),
	)

	qr, err := s.Query(soql)
	if err != nil {
		return nil, fmt.Errorf("soql query failed: %w", err)
	}
	return marshalText(map[string]any{
		"totalSize": qr.TotalSize,
		"done":      qr.Done,
		"records":   qr.Records,
	})
}
