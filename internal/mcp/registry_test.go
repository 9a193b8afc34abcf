// internal/mcp/registry_test.go

package mcp_test

import (
	"testing"

	"mcp-salesforce/internal/mcp"
)

func TestRegisterPreservesOrderAndOverwrites(t *testing.T) {
	mcp.Register(mcp.ToolDef{Name: "reg_alpha", Description: "first"})
	mcp.Register(mcp.ToolDef{Name: "reg_beta", Description: "second"})
	// Duplikat: definisi diganti, posisi urutan pertama dipertahankan.
	mcp.Register(mcp.ToolDef{Name: "reg_alpha", Description: "replaced"})

	var alphaIdx, betaIdx = -1, -1
	for i, d := range mcp.List() {
		switch d.Name {
		case "reg_alpha":
			alphaIdx = i
			if d.Description != "replaced" {
				t.Fatalf("duplicate register must overwrite, got %q", d.Description)
			}
		case "reg_beta":
			betaIdx = i
		}
	}
	if alphaIdx == -1 || betaIdx == -1 {
		t.Fatalf("registered tools missing from List")
	}
	if alphaIdx > betaIdx {
		t.Fatalf("re-register must keep first position: alpha=%d beta=%d", alphaIdx, betaIdx)
	}
}

func TestDescriptorsMatchListOrder(t *testing.T) {
	defs := mcp.List()
	descs := mcp.Descriptors()
	if len(defs) != len(descs) {
		t.Fatalf("descriptor count %d != def count %d", len(descs), len(defs))
	}
	seen := map[string]bool{}
	for i := range defs {
		if descs[i].Name != defs[i].Name {
			t.Fatalf("order diverged at %d: %s vs %s", i, descs[i].Name, defs[i].Name)
		}
		if seen[descs[i].Name] {
			t.Fatalf("duplicate tool name in catalog: %s", descs[i].Name)
		}
		seen[descs[i].Name] = true
	}
}

func TestInputSchemaShape(t *testing.T) {
	def := mcp.ToolDef{
		Name: "schema_tool",
		Args: []mcp.ArgSpec{
			{Name: "objectName", Kind: mcp.KindString, Required: true, Description: "API name"},
			{Name: "limit", Kind: mcp.KindNumber},
		},
	}
	schema := mcp.InputSchema(def)
	if schema["type"] != "object" {
		t.Fatalf("schema must be object-typed: %v", schema)
	}
	props, _ := schema["properties"].(map[string]any)
	obj, _ := props["objectName"].(map[string]any)
	if obj["type"] != mcp.KindString || obj["description"] != "API name" {
		t.Fatalf("property projection wrong: %v", obj)
	}
	required, _ := schema["required"].([]string)
	if len(required) != 1 || required[0] != "objectName" {
		t.Fatalf("required list wrong: %v", required)
	}

	// Tanpa field required, key "required" tidak dipancarkan.
	none := mcp.InputSchema(mcp.ToolDef{Name: "x", Args: []mcp.ArgSpec{{Name: "a", Kind: mcp.KindString}}})
	if _, present := none["required"]; present {
		t.Fatalf("empty required must be omitted: %v", none)
	}
}
