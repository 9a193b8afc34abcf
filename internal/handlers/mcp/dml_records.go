// internal/handlers/mcp/dml_records.go
// MCP Tool: salesforce_dml_records - insert/update/delete/upsert batch records

package mcp

import (
	"fmt"
	"net/http"
	"net/url"

	"mcp-salesforce/internal/mcp"
	"mcp-salesforce/internal/salesforce"
)

func DMLRecordsTool() mcp.ToolDef {
	return mcp.ToolDef{
		Name:        "salesforce_dml_records",
		Description: "Perform DML (insert, update, delete, upsert) on a list of records for one object. Returns a per-record outcome report.",
		Args: []mcp.ArgSpec{
			{Name: "operation", Kind: mcp.KindString, Required: true, Description: "One of: insert, update, delete, upsert"},
			{Name: "objectName", Kind: mcp.KindString, Required: true, Description: "API name of the object"},
			{Name: "records", Kind: mcp.KindArray, Required: true, Description: "Records as field maps; update/delete need Id, upsert needs the external id field"},
			{Name: "externalIdField", Kind: mcp.KindString, Description: "External id field name, required for upsert"},
		},
		Handler: dmlRecordsHandler,
	}
}

type dmlOutcome struct {
	Index   int    `json:"index"`
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

func dmlRecordsHandler(s *salesforce.Session, args map[string]any) (*mcp.ToolResult, error) {
	operation := argString(args, "operation")
	objectName := argString(args, "objectName")
	records := argMapSlice(args, "records")
	externalIDField := argString(args, "externalIdField")

	switch operation {
	case "insert", "update", "delete", "upsert":
	default:
		return nil, fmt.Errorf("unsupported operation %q (want insert|update|delete|upsert)", operation)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("records must contain at least one record")
	}
	if operation == "upsert" && externalIDField == "" {
		return nil, fmt.Errorf("externalIdField is required for upsert")
	}

	outcomes := make([]dmlOutcome, 0, len(records))
	succeeded := 0
	for i, rec := range records {
		out := applyDML(s, operation, objectName, externalIDField, rec)
		out.Index = i
		if out.Success {
			succeeded++
		}
		outcomes = append(outcomes, out)
	}

	return marshalText(map[string]any{
		"operation": operation,
		"object":    objectName,
		"processed": len(records),
		"succeeded": succeeded,
		"failed":    len(records) - succeeded,
		"results":   outcomes,
	})
}

// applyDML satu record; error per-record dilaporkan, tidak menghentikan batch.
func applyDML(s *salesforce.Session, operation, objectName, externalIDField string, rec map[string]any) dmlOutcome {
	switch operation {
	case "insert":
		obj := s.SObject(objectName)
		for k, v := range rec {
			obj.Set(k, v)
		}
		created := obj.Create()
		if created == nil {
			return dmlOutcome{Error: "create rejected by salesforce"}
		}
		return dmlOutcome{Success: true, ID: created.StringField("Id")}

	case "update":
		id, _ := rec["Id"].(string)
		if id == "" {
			return dmlOutcome{Error: "record is missing Id"}
		}
		obj := s.SObject(objectName)
		for k, v := range rec {
			obj.Set(k, v)
		}
		if obj.Update() == nil {
			return dmlOutcome{Error: "update rejected by salesforce"}
		}
		return dmlOutcome{Success: true, ID: id}

	case "delete":
		id, _ := rec["Id"].(string)
		if id == "" {
			return dmlOutcome{Error: "record is missing Id"}
		}
		if err := s.SObject(objectName).Delete(id); err != nil {
			return dmlOutcome{Error: err.Error()}
		}
		return dmlOutcome{Success: true, ID: id}

	case "upsert":
		extVal, _ := rec[externalIDField].(string)
		if extVal == "" {
			return dmlOutcome{Error: fmt.Sprintf("record is missing external id field %q", externalIDField)}
		}
		// PATCH /sobjects/{obj}/{extField}/{value} - body tanpa field kuncinya
		body := make(map[string]any, len(rec))
		for k, v := range rec {
			if k != externalIDField {
				body[k] = v
			}
		}
		path := s.DataPath("/sobjects/" + objectName + "/" + externalIDField + "/" + url.PathEscape(extVal))
		if _, err := s.RestSend(http.MethodPatch, path, body); err != nil {
			return dmlOutcome{Error: err.Error()}
		}
		return dmlOutcome{Success: true}
	}
	return dmlOutcome{Error: "unreachable operation"}
}
