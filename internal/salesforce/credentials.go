// internal/salesforce/credentials.go
// Ekstraksi kredensial Salesforce dari HTTP header (per-request, tanpa validasi)

package salesforce

import (
	"fmt"
	"net/http"
)

const (
	// DefaultLoginURL dipakai kalau client tidak mengirim x-salesforce-instance-url.
	DefaultLoginURL = "https://login.salesforce.com"

	// AuthModeUserPassword satu-satunya mode auth yang didukung gateway ini.
	// Sengaja TIDAK dibaca dari input client (lock-in, bukan oversight).
	AuthModeUserPassword = "User_Password"
)

// Header names yang dikenali extractor. Enumerasi eksplisit, tanpa reflection.
const (
	HeaderUsername    = "X-Salesforce-Username"
	HeaderPassword    = "X-Salesforce-Password"
	HeaderToken       = "X-Salesforce-Token"
	HeaderInstanceURL = "X-Salesforce-Instance-Url"
)

// Credentials hidup satu request saja; tidak pernah di-cache atau dipersist.
type Credentials struct {
	AuthMode      string
	Username      string
	Password      string
	SecurityToken string // optional
	InstanceURL   string // default: DefaultLoginURL
}

// CredentialsFromHeaders memetakan header -> Credentials.
// Pure & total: field optional yang absen tetap terisi default yang jelas.
func CredentialsFromHeaders(h http.Header) Credentials {
	c := Credentials{
		AuthMode:      AuthModeUserPassword,
		Username:      h.Get(HeaderUsername),
		Password:      h.Get(HeaderPassword),
		SecurityToken: h.Get(HeaderToken),
		InstanceURL:   h.Get(HeaderInstanceURL),
	}
	if c.InstanceURL == "" {
		c.InstanceURL = DefaultLoginURL
	}
	return c
}

// String meredaksi secret supaya Credentials aman masuk log.
func (c Credentials) String() string {
	return fmt.Sprintf("salesforce.Credentials{AuthMode:%s Username:%s Password:%s Token:%s InstanceURL:%s}",
		c.AuthMode, c.Username, redact(c.Password), redact(c.SecurityToken), c.InstanceURL)
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "***"
}
