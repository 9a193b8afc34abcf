// internal/handlers/mcp/manage_debug_logs.go
// MCP Tool: salesforce_manage_debug_logs - enable/disable/retrieve debug logs per user

package mcp

import (
	"fmt"
	"net/http"
	"time"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func ManageDebugLogsTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_manage_debug_logs",
		Description: "Enable, disable or retrieve debug logs for a user (Tooling API TraceFlag / ApexLog).",
		Args: []mcp.ArgSpec{
			{Name: "operation", Kind: mcp.KindString, Required: true, Description: "One of: enable, disable, retrieve"},
			{Name: "username", Kind: mcp.KindString, Required: true, Description: "Salesforce username the logs belong to"},
			{Name: "logLevel", Kind: mcp.KindString, Description: "Debug level developer name (default SFDC_DevConsole)"},
			{Name: "limit", Kind: mcp.KindNumber, Description: "Max logs to list on retrieve (default 10)"},
		},
		Handler: manageDebugLogsHandler,
	}
}

func manageDebugLogsHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	operation := argString(args, "operation")
	username := argString(args, "username")

	userID, err := lookupUserID(s, username)
	if err != nil {
		return nil, err
	}

	switch operation {
	case "enable":
		levelName := argString(args, "logLevel")
		if levelName == "" {
			levelName = "SFDC_DevConsole"
		}
		levelID, err := toolingRecordID(s,
			fmt.Sprintf("SELECT Id FROM DebugLevel WHERE DeveloperName = '%s'", escapeSOQL(levelName)))
		if err != nil {
			return nil, fmt.Errorf("debug level %s not found: %w", levelName, err)
		}

		now := time.Now().UTC()
		raw, err := s.RestSend(http.MethodPost, s.DataPath("/tooling/sobjects/TraceFlag"), map[string]any{
			"TracedEntityId": userID,
			"DebugLevelId":   levelID,
			"LogType":        "USER_DEBUG",
			"StartDate":      now.Format(time.RFC3339),
			"ExpirationDate": now.Add(time.Hour).Format(time.RFC3339),
		})
		if err != nil {
			return nil, fmt.Errorf("enable debug logs failed: %w", err)
		}
		return prettyJSON(raw)

	case "disable":
		flags, err := toolingRecords(s,
			fmt.Sprintf("SELECT Id FROM TraceFlag WHERE TracedEntityId = '%s'", escapeSOQL(userID)))
		if err != nil {
			return nil, fmt.Errorf("list trace flags failed: %w", err)
		}
		removed := 0
		for _, f := range flags {
			id, _ := f["Id"].(string)
			if id == "" {
				continue
			}
			if _, err := s.RestSend(http.MethodDelete, s.DataPath("/tooling/sobjects/TraceFlag/"+id), nil); err == nil {
				removed++
			}
		}
		return marshalText(map[string]any{
			"username": username,
			"removed":  removed,
			"found":    len(flags),
		})

	case "retrieve":
		limit := argInt(args, "limit", 10)
		logs, err := toolingRecords(s, fmt.Sprintf(
			"SELECT Id, StartTime, Operation, Status, DurationMilliseconds, LogLength "+
				"FROM ApexLog WHERE LogUserId = '%s' ORDER BY StartTime DESC LIMIT %d",
			escapeSOQL(userID), limit))
		if err != nil {
			return nil, fmt.Errorf("retrieve debug logs failed: %w", err)
		}
		return marshalText(map[string]any{
			"username": username,
			"count":    len(logs),
			"logs":     logs,
		})
	}
	return nil, fmt.Errorf("unsupported operation %q (want enable|disable|retrieve)", operation)
}

func lookupUserID(s *salesforce.Session, username string) (string, error) {
	qr, err := s.Query(fmt.Sprintf("SELECT Id FROM User WHERE Username = '%s'", escapeSOQL(username)))
	if err != nil {
		return "", fmt.Errorf("lookup user failed: %w", err)
	}
	if qr.TotalSize == 0 || len(qr.Records) == 0 {
		return "", fmt.Errorf("user not found: %s", username)
	}
	return qr.Records[0].StringField("Id"), nil
}
