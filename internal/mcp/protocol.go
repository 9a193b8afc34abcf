// internal/mcp/protocol.go
// Definisi struktur dasar JSON-RPC 2.0 + MCP protocol

package mcp

import "encoding/json"

const (
	// JSONRPCVersion literal wajib di setiap envelope.
	JSONRPCVersion = "2.0"

	// ProtocolVersion versi MCP yang dilaporkan saat initialize.
	ProtocolVersion = "2024-11-05"
)

// RPCRequest envelope masuk. ID disimpan raw supaya echo kembali verbatim
// (number, string, null, atau absen sama sekali).
type RPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// RPCResponse envelope keluar: tepat satu dari Result/Error terisi.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError objek error JSON-RPC.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CallParams params untuk method tools/call.
type CallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// TextContent satu item konten bertipe text.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult hasil eksekusi satu tool; diteruskan apa adanya ke result.
type ToolResult struct {
	Content []TextContent `json:"content"`
}

// TextResult helper membuat ToolResult satu blok text.
func TextResult(text string) *ToolResult {
	return &ToolResult{Content: []TextContent{{Type: "text", Text: text}}}
}

// OKResponse bungkus result sukses dengan id ter-echo.
func OKResponse(id json.RawMessage, result any) RPCResponse {
	return RPCResponse{JSONRPC: JSONRPCVersion, ID: id, Result: result}
}

// ErrResponse bungkus error dengan id ter-echo.
func ErrResponse(id json.RawMessage, rpcErr *RPCError) RPCResponse {
	return RPCResponse{JSONRPC: JSONRPCVersion, ID: id, Error: rpcErr}
}
