// middleware/cors.go
// CORS permisif untuk client MCP berbasis browser; preflight dibalas 204.

package middleware

import (
	"net/http"
	"strings"
)

var allowedHeaders = strings.Join([]string{
	"Content-Type",
	HeaderRequestID,
	"X-Secret-Key",
	"X-Salesforce-Username",
	"X-Salesforce-Password",
	"X-Salesforce-Token",
	"X-Salesforce-Instance-Url",
}, ", ")

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
