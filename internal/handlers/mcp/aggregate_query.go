// internal/handlers/mcp/aggregate_query.go
// MCP Tool: salesforce_aggregate_query - SOQL dengan GROUP BY / HAVING

package mcp

import (
	"fmt"
	"strings"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func AggregateQueryTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_aggregate_query",
		Description: "Run an aggregate SOQL query (GROUP BY) against a Salesforce object, e.g. COUNT(Id) per StageName.",
		Args: []mcp.ArgSpec{
			{Name: "objectName", Kind: mcp.KindString, Required: true, Description: "API name of the object"},
			{Name: "selectFields", Kind: mcp.KindArray, Required: true, Description: "Select list incl. aggregates, e.g. [\"StageName\", \"COUNT(Id) total\"]"},
			{Name: "groupByFields", Kind: mcp.KindArray, Required: true, Description: "Fields to group by"},
			{Name: "whereClause", Kind: mcp.KindString, Description: "WHERE clause body"},
			{Name: "havingClause", Kind: mcp.KindString, Description: "HAVING clause body"},
			{Name: "orderBy", Kind: mcp.KindString, Description: "ORDER BY clause body"},
			{Name: "limit", Kind: mcp.KindNumber, Description: "Max rows to return"},
		},
		Handler: aggregateQueryHandler,
	}
}

func buildAggregateSOQL(objectName string, selectFields, groupByFields []string, whereClause, havingClause, orderBy string, limit int) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(selectFields, ", "))
	b.WriteString(" FROM ")
	b.WriteString(objectName)
	if whereClause != "" {
		b.WriteString(" WHERE ")
		b.WriteString(whereClause)
	}
	b.WriteString(" GROUP BY ")
	b.WriteString(strings.Join(groupByFields, ", "))
	if havingClause != "" {
		b.WriteString(" HAVING ")
		b.WriteString(havingClause)
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

func aggregateQueryHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	selectFields := argStringSlice(args, "selectFields")
	groupByFields := argStringSlice(args, "groupByFields")
	if len(selectFields) == 0 || len(groupByFields) == 0 {
		return nil, fmt.Errorf("selectFields and groupByFields must not be empty")
	}

	soql := buildAggregateSOQL(
		argString(args, "objectName"),
		selectFields,
		groupByFields,
		argString(args, "whereClause"),
		argString(args, "havingClause"),
		argString(args, "orderBy"),
		argInt(args, "limit", 0),
	)

	qr, err := s.Query(soql)
	if err != nil {
		return nil, fmt.Errorf("aggregate query failed: %w", err)
	}
	return marshalText(map[string]any{
		"totalSize": qr.TotalSize,
		"records":   qr.Records,
	})
}
