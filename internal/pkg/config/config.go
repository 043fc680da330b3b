// Package config reads typed application settings. Values are addressed by
// dotted keys ("server.port", "modules.identity.otp_ttl_minutes") and every
// getter silently falls back to the zero value for missing or malformed
// entries, so callers never branch on lookup errors.
package config

import (
	"io"
	"time"
)

// Config is the read surface handed to modules. Implementations own the
// source (file, bytes) and any reload machinery behind it.
type Config interface {
	io.Closer

	GetBool(key string) bool
	GetString(key string) string

	GetInt(key string) int
	GetInt32(key string) int32
	GetInt64(key string) int64
	GetUint(key string) uint
	GetUint16(key string) uint16
	GetUint32(key string) uint32
	GetUint64(key string) uint64
	GetFloat32(key string) float32
	GetFloat64(key string) float64

	// The duration getters read a bare integer and apply the unit, so the
	// file says "otp_ttl_minutes: 5" rather than a Go duration string.
	GetSecond(key string) time.Duration
	GetMinute(key string) time.Duration
	GetHour(key string) time.Duration
	GetDay(key string) time.Duration

	// GetBinary decodes a base64 string value.
	GetBinary(key string) []byte

	// GetArray splits a comma-separated string value.
	GetArray(key string) []string

	// GetMap parses a "k1:v1,k2:v2" string value.
	GetMap(key string) map[string]string
}
