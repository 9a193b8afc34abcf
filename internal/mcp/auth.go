// internal/mcp/auth.go
// Auth guard: cek shared secret sebelum routing, khusus method tools/call.

package mcp

import (
	"log"
	"net/http"

	"mcp-salesforce/internal/middleware"
)

// SecretHeader header yang membawa shared secret dari caller.
const SecretHeader = "X-Secret-Key"

// AuthPolicy kebijakan proses-wide, dibentuk sekali dari config.
type AuthPolicy struct {
	RequireAuth bool
	SecretKey   string
}

// CheckAuth memutuskan pass/reject SEBELUM routing.
//   - RequireAuth false          -> selalu pass.
//   - RequireAuth true, key ""   -> pass + warning (misconfig, bukan lockout).
//   - method selain tools/call   -> selalu pass; discovery tetap terbuka.
//   - tools/call                 -> wajib X-Secret-Key, exact match case-sensitive.
//
// Return nil kalau pass. Kegagalan dilog dengan IP + method, TANPA nilai secret.
func CheckAuth(pol AuthPolicy, method string, r *http.Request) *RPCError {
	if !pol.RequireAuth {
		return nil
	}
	if pol.SecretKey == "" {
		log.Println("[WARN] REQUIRE_AUTH is enabled but SECRET_KEY is empty; letting request through")
		return nil
	}
	if method != "tools/call" {
		return nil
	}

	supplied := r.Header.Get(SecretHeader)
	if supplied == "" {
		logJSON(rpcLog{
			Level:     "warn",
			Event:     "mcp.auth",
			RequestID: r.Header.Get(middleware.HeaderRequestID),
			Method:    method,
			Remote:    r.RemoteAddr,
			Error:     "missing secret key header",
		})
		return ErrAuthMissing()
	}
	if supplied != pol.SecretKey {
		logJSON(rpcLog{
			Level:     "warn",
			Event:     "mcp.auth",
			RequestID: r.Header.Get(middleware.HeaderRequestID),
			Method:    method,
			Remote:    r.RemoteAddr,
			Error:     "invalid secret key",
		})
		return ErrAuthInvalid()
	}
	return nil
}
