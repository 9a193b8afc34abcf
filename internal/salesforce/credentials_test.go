// internal/salesforce/credentials_test.go

package salesforce_test

import (
	"net/http"
	"strings"
	"testing"

	"mcp-salesforce/internal/salesforce"
)

func TestCredentialsFromHeadersFull(t *testing.T) {
	h := http.Header{}
	h.Set(salesforce.HeaderUsername, "user@example.com")
	h.Set(salesforce.HeaderPassword, "hunter2")
	h.Set(salesforce.HeaderToken, "tok123")
	h.Set(salesforce.HeaderInstanceURL, "https://test.salesforce.com")

	c := salesforce.CredentialsFromHeaders(h)
	if c.Username != "user@example.com" || c.Password != "hunter2" || c.SecurityToken != "tok123" {
		t.Fatalf("header mapping wrong: %+v", c)
	}
	if c.InstanceURL != "https://test.salesforce.com" {
		t.Fatalf("instance url not carried over: %s", c.InstanceURL)
	}
	if c.AuthMode != salesforce.AuthModeUserPassword {
		t.Fatalf("auth mode must be fixed, got %s", c.AuthMode)
	}
}

// Instance URL absen -> default login.salesforce.com.
func TestCredentialsDefaultInstanceURL(t *testing.T) {
	h := http.Header{}
	h.Set(salesforce.HeaderUsername, "user@example.com")

	c := salesforce.CredentialsFromHeaders(h)
	if c.InstanceURL != salesforce.DefaultLoginURL {
		t.Fatalf("expected default instance url, got %s", c.InstanceURL)
	}
	if c.SecurityToken != "" {
		t.Fatalf("absent token must be empty, got %q", c.SecurityToken)
	}
}

// AuthMode tidak boleh bisa dioverride dari header client.
func TestCredentialsAuthModeNotOverridable(t *testing.T) {
	h := http.Header{}
	h.Set("X-Salesforce-Auth-Mode", "OAuth")

	c := salesforce.CredentialsFromHeaders(h)
	if c.AuthMode != salesforce.AuthModeUserPassword {
		t.Fatalf("auth mode hijacked: %s", c.AuthMode)
	}
}

// String() tidak boleh membocorkan password atau token.
func TestCredentialsStringRedacts(t *testing.T) {
	c := salesforce.Credentials{
		AuthMode:      salesforce.AuthModeUserPassword,
		Username:      "user@example.com",
		Password:      "hunter2",
		SecurityToken: "tok123",
		InstanceURL:   salesforce.DefaultLoginURL,
	}
	s := c.String()
	if strings.Contains(s, "hunter2") || strings.Contains(s, "tok123") {
		t.Fatalf("secret leaked into String(): %s", s)
	}
	if !strings.Contains(s, "user@example.com") {
		t.Fatalf("username should stay visible for debugging: %s", s)
	}
}
