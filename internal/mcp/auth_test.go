// internal/mcp/auth_test.go

package mcp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mcp-salesforce/internal/mcp"
)

func authReq(secret string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	if secret != "" {
		r.Header.Set(mcp.SecretHeader, secret)
	}
	return r
}

func TestAuthDisabledAlwaysPasses(t *testing.T) {
	pol := mcp.AuthPolicy{RequireAuth: false, SecretKey: "abc"}
	for _, method := range []string{"initialize", "tools/list", "tools/call", "whatever"} {
		if err := mcp.CheckAuth(pol, method, authReq("")); err != nil {
			t.Fatalf("method %s: expected pass with auth disabled, got %v", method, err)
		}
	}
}

// Misconfig (require tapi secret kosong) bukan lockout: request tetap lewat.
func TestAuthEmptySecretPassesWithWarning(t *testing.T) {
	pol := mcp.AuthPolicy{RequireAuth: true, SecretKey: ""}
	if err := mcp.CheckAuth(pol, "tools/call", authReq("")); err != nil {
		t.Fatalf("empty configured secret must pass, got %v", err)
	}
}

// Discovery methods tidak pernah dicek, dengan/tanpa header.
func TestAuthDiscoveryMethodsAlwaysPass(t *testing.T) {
	pol := mcp.AuthPolicy{RequireAuth: true, SecretKey: "abc"}
	for _, method := range []string{"initialize", "tools/list"} {
		if err := mcp.CheckAuth(pol, method, authReq("")); err != nil {
			t.Fatalf("method %s without header: expected pass, got %v", method, err)
		}
		if err := mcp.CheckAuth(pol, method, authReq("totally-wrong")); err != nil {
			t.Fatalf("method %s with wrong header: expected pass, got %v", method, err)
		}
	}
}

func TestAuthToolsCallMatrix(t *testing.T) {
	pol := mcp.AuthPolicy{RequireAuth: true, SecretKey: "abc"}

	if err := mcp.CheckAuth(pol, "tools/call", authReq("")); err == nil || err.Code != mcp.CodeAuthMissing {
		t.Fatalf("missing header: expected code %d, got %v", mcp.CodeAuthMissing, err)
	}
	if err := mcp.CheckAuth(pol, "tools/call", authReq("wrong")); err == nil || err.Code != mcp.CodeAuthInvalid {
		t.Fatalf("wrong secret: expected code %d, got %v", mcp.CodeAuthInvalid, err)
	}
	// Exact match case-sensitive.
	if err := mcp.CheckAuth(pol, "tools/call", authReq("ABC")); err == nil || err.Code != mcp.CodeAuthInvalid {
		t.Fatalf("case mismatch must be rejected, got %v", err)
	}
	if err := mcp.CheckAuth(pol, "tools/call", authReq("abc")); err != nil {
		t.Fatalf("correct secret: expected pass, got %v", err)
	}
}
