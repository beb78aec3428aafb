// Package store provides the persistent keyed-value storage the check dialog
// reads and writes across sessions.
package store

// Store is a flat string-keyed store. Reads take a fallback that is returned
// when the key is absent or holds a value of another type.
type Store interface {
	Bool(key string, fallback bool) bool
	SetBool(key string, value bool)
	String(key, fallback string) string
	SetString(key, value string)
	Float(key string, fallback float64) float64
	SetFloat(key string, value float64)
}
