// internal/mcp/registry.go
// Registri mapping nama tool ke definisi (schema argumen + handler)

package mcp

import (
	"sync"

	"mcp-salesforce/internal/salesforce"
)

// Coarse kinds yang dipahami validator. Sengaja kasar: presence + bentuk,
// bukan validitas semantik (itu urusan Salesforce).
const (
	KindString  = "string"
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindArray   = "array"
	KindObject  = "object"
)

// ArgSpec satu field argumen tool. Urutan deklarasi = urutan validasi.
type ArgSpec struct {
	Name        string
	Kind        string
	Required    bool
	Description string
}

// ToolHandler eksekusi satu tool terhadap sesi Salesforce yang sudah login.
type ToolHandler func(s *salesforce.Session, args map[string]any) (*ToolResult, error)

// ToolDef definisi lengkap satu tool.
type ToolDef struct {
	Name        string
	Description string
	Args        []ArgSpec
	Handler     ToolHandler
}

// ToolDescriptor bentuk publik untuk tools/list dan GET /tools.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Registry menyimpan peta nama tool -> ToolDef plus urutan registrasi,
// supaya tools/list stabil byte-per-byte antar panggilan.
type Registry struct {
	mu    sync.RWMutex
	data  map[string]ToolDef
	order []string
}

var reg = &Registry{data: make(map[string]ToolDef)}

// Register mendaftarkan definisi tool. Nama duplikat menimpa definisi lama
// tanpa mengubah urutan registrasi pertama.
func Register(def ToolDef) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.data[def.Name]; !exists {
		reg.order = append(reg.order, def.Name)
	}
	reg.data[def.Name] = def
}

// Get mengambil definisi berdasarkan nama tool.
func Get(name string) (ToolDef, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	d, ok := reg.data[name]
	return d, ok
}

// List mengembalikan semua definisi dalam urutan registrasi.
func List() []ToolDef {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]ToolDef, 0, len(reg.order))
	for _, name := range reg.order {
		out = append(out, reg.data[name])
	}
	return out
}

// Descriptors proyeksi publik registry (dipakai tools/list & GET /tools).
func Descriptors() []ToolDescriptor {
	defs := List()
	out := make([]ToolDescriptor, 0, len(defs))
	for _, d := range defs {
		out = append(out, ToolDescriptor{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: InputSchema(d),
		})
	}
	return out
}

// InputSchema menurunkan JSON schema (object/properties/required) dari ArgSpec.
func InputSchema(def ToolDef) map[string]any {
	props := map[string]any{}
	required := []string{}
	for _, a := range def.Args {
		p := map[string]any{"type": a.Kind}
		if a.Description != "" {
			p["description"] = a.Description
		}
		props[a.Name] = p
		if a.Required {
			required = append(required, a.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
