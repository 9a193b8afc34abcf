// middleware/request_id.go
// Korelasi request: satu X-Request-ID per request, nilai client dihormati.
// Nilai yang sama dipakai rpcLog (field request_id) dan dibalikkan ke caller.

package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID nama header korelasi; dirujuk juga oleh logging JSON-RPC.
const HeaderRequestID = "X-Request-ID"

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
			// Ditulis balik ke request supaya handler hilir membaca nilai yang sama.
			r.Header.Set(HeaderRequestID, id)
		}
		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r)
	})
}
