// internal/mcp/errors.go
// Taksonomi error JSON-RPC; satu constructor per jenis kegagalan.

package mcp

import "fmt"

// Kode standar JSON-RPC + kode server-range khusus auth.
// Dua kasus 401 dibedakan kodenya supaya client bisa membedakan
// "lupa kirim secret" vs "secret salah".
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603

	CodeAuthMissing = -32001
	CodeAuthInvalid = -32002
)

func ErrMalformedEnvelope(cause error) *RPCError {
	return &RPCError{Code: CodeParseError, Message: fmt.Sprintf("parse error: %v", cause)}
}

func ErrMethodNotFound(method string) *RPCError {
	return &RPCError{Code: CodeMethodNotFound, Message: fmt.Sprintf("method not found: %s", method)}
}

func ErrUnknownTool(name string) *RPCError {
	return &RPCError{Code: CodeInvalidParams, Message: fmt.Sprintf("unknown tool: %s", name)}
}

func ErrInvalidArguments(tool, field, reason string) *RPCError {
	return &RPCError{
		Code:    CodeInvalidParams,
		Message: fmt.Sprintf("invalid arguments for %s: field %q %s", tool, field, reason),
	}
}

func ErrInvalidParams(msg string) *RPCError {
	return &RPCError{Code: CodeInvalidParams, Message: msg}
}

func ErrExecution(cause error) *RPCError {
	return &RPCError{Code: CodeInternalError, Message: fmt.Sprintf("execution failed: %v", cause)}
}

func ErrAuthMissing() *RPCError {
	return &RPCError{Code: CodeAuthMissing, Message: "authentication required: missing " + SecretHeader + " header"}
}

func ErrAuthInvalid() *RPCError {
	return &RPCError{Code: CodeAuthInvalid, Message: "authentication failed: invalid secret key"}
}
