// internal/config/config.go
// Loader konfigurasi dari environment variables

package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppName string
	Host    string
	Port    string

	// Auth gateway (bukan auth Salesforce; itu datang per-request via header).
	SecretKey   string
	RequireAuth bool

	SFAPIVersion string
}

// Load dibaca sekali di main; hasilnya immutable dan dipass eksplisit
// ke app/router (tidak ada baca env ambient di jalur request).
func Load() *Config {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "mcp-salesforce")
	c.Host = getEnv("HOST", "0.0.0.0")
	c.Port = getEnv("PORT", "8080")

	c.SecretKey = getEnv("SECRET_KEY", "")
	c.RequireAuth = getEnvBool("REQUIRE_AUTH", false)

	c.SFAPIVersion = getEnv("SF_API_VERSION", "56.0")

	if c.RequireAuth && c.SecretKey == "" {
		log.Println("[WARN] REQUIRE_AUTH is enabled but SECRET_KEY is empty; tools/call will NOT be protected")
	}

	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
