// internal/mcp/router.go
// Envelope router: parse JSON-RPC -> auth guard -> branch method -> response.
// Jaminan terluar: kegagalan apa pun tetap keluar sebagai envelope utuh.

package mcp

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"mcp-salesforce/internal/middleware"
	"mcp-salesforce/internal/salesforce"
)

// ServerVersion dilaporkan di serverInfo saat initialize.
const ServerVersion = "1.0.0"

// ====== Structured log payload ======

type rpcLog struct {
	At         string `json:"@t,omitempty"`    // RFC3339 timestamp
	Level      string `json:"level,omitempty"` // info|warn|error
	Event      string `json:"event,omitempty"` // mcp.rpc | mcp.auth
	RequestID  string `json:"request_id,omitempty"`
	Method     string `json:"method,omitempty"`
	Tool       string `json:"tool,omitempty"`
	Remote     string `json:"remote,omitempty"`
	Code       int    `json:"code,omitempty"` // kode RPCError kalau gagal
	DurationMS int64  `json:"duration_ms,omitempty"`
	Error      string `json:"error,omitempty"`
}

func logJSON(l rpcLog) {
	l.At = time.Now().Format(time.RFC3339Nano)
	if l.Level == "" {
		l.Level = "info"
	}
	b, _ := json.Marshal(l)
	log.Println(string(b))
}

// ====== Router Handler ======

// NewRouterHandler membuat handler POST /mcp. Policy & identitas server
// dipass eksplisit dari config; tidak ada baca env di sini.
func NewRouterHandler(pol AuthPolicy, service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		raw, err := io.ReadAll(r.Body)
		if err == nil {
			defer r.Body.Close()
		}

		var req RPCRequest
		if err != nil || json.Unmarshal(raw, &req) != nil {
			// Body tak terbaca / bukan JSON valid: parse error, id null.
			writeEnvelope(w, http.StatusOK, ErrResponse(json.RawMessage("null"),
				&RPCError{Code: CodeParseError, Message: "parse error: invalid JSON-RPC envelope"}))
			logJSON(rpcLog{
				Level:     "error",
				Event:     "mcp.rpc",
				RequestID: r.Header.Get(middleware.HeaderRequestID),
				Remote:    r.RemoteAddr,
				Code:      CodeParseError,
				Error:     "malformed envelope",
			})
			return
		}

		// Kredensial Salesforce SELALU diekstrak, apa pun hasil auth guard;
		// dipakai hanya oleh tools/call. Satu nilai per request, tidak di-cache.
		creds := salesforce.CredentialsFromHeaders(r.Header)

		// Auth guard jalan sebelum routing; satu-satunya outcome non-200.
		if authErr := CheckAuth(pol, req.Method, r); authErr != nil {
			writeEnvelope(w, http.StatusUnauthorized, ErrResponse(req.ID, authErr))
			return
		}

		var resp RPCResponse
		tool := ""

		switch req.Method {
		case "initialize":
			resp = OKResponse(req.ID, map[string]any{
				"protocolVersion": ProtocolVersion,
				"capabilities":    map[string]any{"tools": map[string]any{}},
				"serverInfo":      map[string]any{"name": service, "version": ServerVersion},
			})

		case "tools/list":
			resp = OKResponse(req.ID, map[string]any{"tools": Descriptors()})

		case "tools/call":
			var params CallParams
			if len(req.Params) > 0 {
				if err := json.Unmarshal(req.Params, &params); err != nil {
					resp = ErrResponse(req.ID, ErrInvalidParams("invalid tools/call params: "+err.Error()))
					break
				}
			}
			if params.Name == "" {
				resp = ErrResponse(req.ID, ErrInvalidParams("params.name is required"))
				break
			}
			tool = params.Name
			result, rpcErr := Dispatch(params.Name, params.Arguments, creds)
			if rpcErr != nil {
				resp = ErrResponse(req.ID, rpcErr)
			} else {
				resp = OKResponse(req.ID, result)
			}

		default:
			resp = ErrResponse(req.ID, ErrMethodNotFound(req.Method))
		}

		writeEnvelope(w, http.StatusOK, resp)

		l := rpcLog{
			Event:      "mcp.rpc",
			RequestID:  r.Header.Get(middleware.HeaderRequestID),
			Method:     req.Method,
			Tool:       tool,
			Remote:     r.RemoteAddr,
			DurationMS: time.Since(start).Milliseconds(),
		}
		if resp.Error != nil {
			l.Level = "warn"
			l.Code = resp.Error.Code
			l.Error = resp.Error.Message
		}
		logJSON(l)
	}
}

// writeEnvelope serialisasi response. Kalau result ternyata tidak bisa
// di-marshal, downgrade ke ExecutionError generik dengan pesan penyebab —
// router tidak pernah mengirim kegagalan transport mentah.
func writeEnvelope(w http.ResponseWriter, status int, resp RPCResponse) {
	b, err := json.Marshal(resp)
	if err != nil {
		fallback := ErrResponse(resp.ID, ErrExecution(err))
		b, _ = json.Marshal(fallback)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
