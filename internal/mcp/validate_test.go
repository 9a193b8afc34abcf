// internal/mcp/validate_test.go

package mcp_test

import (
	"strings"
	"testing"

	"mcp-salesforce/internal/mcp"
)

func validateDef() mcp.ToolDef {
	return mcp.ToolDef{
		Name: "sample_tool",
		Args: []mcp.ArgSpec{
			{Name: "objectName", Kind: mcp.KindString, Required: true},
			{Name: "fields", Kind: mcp.KindArray, Required: true},
			{Name: "limit", Kind: mcp.KindNumber},
			{Name: "dryRun", Kind: mcp.KindBoolean},
			{Name: "filters", Kind: mcp.KindObject},
		},
	}
}

// Field required yang hilang dilaporkan sesuai urutan deklarasi (yang pertama menang).
func TestValidateReportsFirstMissingFieldInDeclaredOrder(t *testing.T) {
	_, rpcErr := mcp.ValidateArgs(validateDef(), map[string]any{
		"fields": []any{"Id"}, // objectName sengaja hilang
	})
	if rpcErr == nil {
		t.Fatalf("expected error for missing objectName")
	}
	if rpcErr.Code != mcp.CodeInvalidParams {
		t.Fatalf("expected code %d, got %d", mcp.CodeInvalidParams, rpcErr.Code)
	}
	if !strings.Contains(rpcErr.Message, `"objectName"`) {
		t.Fatalf("error should name objectName, got: %s", rpcErr.Message)
	}

	// Dua-duanya hilang: tetap objectName yang dilaporkan, tanpa agregasi.
	_, rpcErr = mcp.ValidateArgs(validateDef(), map[string]any{})
	if rpcErr == nil || !strings.Contains(rpcErr.Message, `"objectName"`) {
		t.Fatalf("expected first-missing-field objectName, got: %v", rpcErr)
	}
	if strings.Contains(rpcErr.Message, `"fields"`) {
		t.Fatalf("errors must not be aggregated: %s", rpcErr.Message)
	}
}

func TestValidateRejectsWrongCoarseShape(t *testing.T) {
	cases := []map[string]any{
		{"objectName": 42, "fields": []any{"Id"}},                      // string salah
		{"objectName": "Account", "fields": "Id"},                      // array salah
		{"objectName": "Account", "fields": []any{"Id"}, "limit": "5"}, // number salah (optional pun dicek)
		{"objectName": "Account", "fields": []any{"Id"}, "dryRun": 1},  // boolean salah
	}
	for i, raw := range cases {
		if _, rpcErr := mcp.ValidateArgs(validateDef(), raw); rpcErr == nil {
			t.Fatalf("case %d: expected shape error for %v", i, raw)
		}
	}
}

func TestValidateProducesTypedRecordWithOptionalAbsent(t *testing.T) {
	out, rpcErr := mcp.ValidateArgs(validateDef(), map[string]any{
		"objectName": "Account",
		"fields":     []any{"Id", "Name"},
		"limit":      float64(10),
		"extra":      "ignored", // field tak dideklarasikan dibuang
	})
	if rpcErr != nil {
		t.Fatalf("unexpected error: %v", rpcErr)
	}
	if out["objectName"] != "Account" {
		t.Fatalf("objectName not carried over: %v", out)
	}
	if _, present := out["dryRun"]; present {
		t.Fatalf("absent optional must stay absent, got: %v", out)
	}
	if _, present := out["extra"]; present {
		t.Fatalf("undeclared field must be dropped, got: %v", out)
	}
}

// Arguments nil (params.arguments absen) diperlakukan sebagai object kosong.
func TestValidateNilArgumentsBehavesAsEmpty(t *testing.T) {
	_, rpcErr := mcp.ValidateArgs(validateDef(), nil)
	if rpcErr == nil || !strings.Contains(rpcErr.Message, `"objectName"`) {
		t.Fatalf("nil arguments should fail on first required field, got: %v", rpcErr)
	}

	noReq := mcp.ToolDef{Name: "no_req", Args: []mcp.ArgSpec{{Name: "opt", Kind: mcp.KindString}}}
	out, rpcErr := mcp.ValidateArgs(noReq, nil)
	if rpcErr != nil || len(out) != 0 {
		t.Fatalf("tool without required args should accept nil arguments, got: %v %v", out, rpcErr)
	}
}
