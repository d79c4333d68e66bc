package config

import (
	"os"
	"strings"
)

// MigrateOnStart runs gorm AutoMigrate during server startup.
//
// Set via env:
// - MIGRATE_ON_START=true
func MigrateOnStart() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MIGRATE_ON_START")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// CacheDisabled turns the user-snapshot cache into a no-op: every request
// takes the record-store path. Useful for local debugging without Redis.
//
// Set via env:
// - CACHE_DISABLED=true
func CacheDisabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("CACHE_DISABLED")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}
