// internal/salesforce/client.go
// Wrapper tipis di atas simpleforce: satu sesi Salesforce per tools/call.

package salesforce

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/simpleforce/simpleforce"
)

// DefaultAPIVersion versi REST API yang dipakai untuk path /services/data/vXX.X.
const DefaultAPIVersion = "56.0"

// Session membungkus client simpleforce yang sudah login.
// Lifetime = satu tools/call; tidak ada pool, tidak ada reuse.
type Session struct {
	client     *simpleforce.Client
	apiVersion string
}

// SessionFactory dipakai dispatcher untuk membuka sesi baru per request.
// Tanpa context: simpleforce tidak mendukung cancellation, dan disconnect
// client memang tidak dipropagasi ke call yang sedang jalan.
type SessionFactory func(creds Credentials) (*Session, error)

// NewSession constructor untuk wiring manual (dipakai juga oleh test).
func NewSession(client *simpleforce.Client, apiVersion string) *Session {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	return &Session{client: client, apiVersion: apiVersion}
}

// Connect implementasi SessionFactory default: login username-password.
func Connect(creds Credentials) (*Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("missing salesforce credentials: %s and %s headers are required",
			HeaderUsername, HeaderPassword)
	}
	client := simpleforce.NewClient(creds.InstanceURL, simpleforce.DefaultClientID, DefaultAPIVersion)
	if client == nil {
		return nil, fmt.Errorf("salesforce client init failed for %s", creds.InstanceURL)
	}
	if err := client.LoginPassword(creds.Username, creds.Password, creds.SecurityToken); err != nil {
		return nil, fmt.Errorf("salesforce login failed: %w", err)
	}
	return NewSession(client, DefaultAPIVersion), nil
}

// ConnectFactory mengembalikan factory dengan api version tertentu.
func ConnectFactory(apiVersion string) SessionFactory {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	return func(creds Credentials) (*Session, error) {
		s, err := Connect(creds)
		if err != nil {
			return nil, err
		}
		s.apiVersion = apiVersion
		return s, nil
	}
}

// Query menjalankan SOQL.
func (s *Session) Query(soql string) (*simpleforce.QueryResult, error) {
	return s.client.Query(soql)
}

// Describe mengambil metadata satu object.
func (s *Session) Describe(objectName string) (*simpleforce.SObjectMeta, error) {
	meta := s.client.SObject(objectName).Describe()
	if meta == nil {
		return nil, fmt.Errorf("describe failed for object %q", objectName)
	}
	return meta, nil
}

// SObject entry point untuk operasi CRUD.
func (s *Session) SObject(typeName string) *simpleforce.SObject {
	return s.client.SObject(typeName)
}

// ExecuteAnonymous menjalankan Apex anonymous block.
func (s *Session) ExecuteAnonymous(apexCode string) (*simpleforce.ExecuteAnonymousResult, error) {
	return s.client.ExecuteAnonymous(apexCode)
}

// DataPath membentuk path REST relatif instance, mis. DataPath("/sobjects").
func (s *Session) DataPath(suffix string) string {
	return "/services/data/v" + s.apiVersion + suffix
}

// RestGet GET mentah ke path REST (describe-global, SOSL, tooling, dll).
func (s *Session) RestGet(path string) ([]byte, error) {
	return s.client.ApexREST(http.MethodGet, path, nil)
}

// RestSend kirim payload JSON dengan method POST/PATCH/DELETE.
func (s *Session) RestSend(method, path string, payload any) ([]byte, error) {
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(b)
		return s.client.ApexREST(method, path, body)
	}
	return s.client.ApexREST(method, path, nil)
}

// ToolingQuery menjalankan query lewat Tooling API dan mengembalikan raw JSON.
func (s *Session) ToolingQuery(soql string) ([]byte, error) {
	return s.RestGet(s.DataPath("/tooling/query/?q=" + url.QueryEscape(soql)))
}
