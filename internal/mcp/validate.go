// internal/mcp/validate.go
// Validator generik argumen tool: interpretasi ArgSpec, bukan branching ad hoc.

package mcp

import "encoding/json"

// ValidateArgs mengecek raw arguments terhadap ArgSpec sebuah tool.
// Kegagalan dilaporkan untuk field pertama yang bermasalah sesuai urutan
// deklarasi (first-failure-wins, tanpa agregasi). Sukses menghasilkan record
// baru berisi hanya field yang dideklarasikan; optional yang absen ya absen.
func ValidateArgs(def ToolDef, raw map[string]any) (map[string]any, *RPCError) {
	if raw == nil {
		raw = map[string]any{}
	}
	out := make(map[string]any, len(def.Args))
	for _, spec := range def.Args {
		v, present := raw[spec.Name]
		if !present || v == nil {
			if spec.Required {
				return nil, ErrInvalidArguments(def.Name, spec.Name, "is required")
			}
			continue
		}
		if !kindMatches(spec.Kind, v) {
			return nil, ErrInvalidArguments(def.Name, spec.Name, "must be of type "+spec.Kind)
		}
		out[spec.Name] = v
	}
	return out, nil
}

// kindMatches cek bentuk kasar nilai hasil json.Unmarshal ke any.
func kindMatches(kind string, v any) bool {
	switch kind {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		switch v.(type) {
		case float64, json.Number, int, int64:
			return true
		}
		return false
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindArray:
		_, ok := v.([]any)
		return ok
	case KindObject:
		_, ok := v.(map[string]any)
		return ok
	}
	return false
}
