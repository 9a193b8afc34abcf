// internal/mcp/dispatch.go
// Dispatcher: lookup tool -> validasi argumen -> sesi Salesforce baru -> handler.

package mcp

import (
	"errors"

	"mcp-salesforce/internal/salesforce"
)

// ===== Dependency Injection =====
// Diinject dari layer app (lihat app.New). Test boleh inject factory palsu.
var sessionFactory salesforce.SessionFactory

func SetSessionFactory(f salesforce.SessionFactory) { sessionFactory = f }

// Dispatch menjalankan satu tools/call yang sudah lolos auth.
// Validasi SELALU mendahului eksekusi: handler tidak pernah dipanggil dengan
// argumen yang gagal cek required-field. Tiap call membuka sesi sendiri dari
// Credentials per-request; tidak ada retry, cache, maupun pool.
func Dispatch(name string, rawArgs map[string]any, creds salesforce.Credentials) (*ToolResult, *RPCError) {
	def, ok := Get(name)
	if !ok {
		return nil, ErrUnknownTool(name)
	}

	args, vErr := ValidateArgs(def, rawArgs)
	if vErr != nil {
		return nil, vErr
	}

	if sessionFactory == nil {
		return nil, ErrExecution(errors.New("session factory not configured"))
	}
	session, err := sessionFactory(creds)
	if err != nil {
		return nil, ErrExecution(err)
	}

	result, err := def.Handler(session, args)
	if err != nil {
		return nil, ErrExecution(err)
	}
	if result == nil {
		return nil, ErrExecution(errors.New("tool returned no result"))
	}
	return result, nil
}
