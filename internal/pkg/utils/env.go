package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// GetEnvString returns the value of key, or defaultValue when key is unset.
// A variable set to the empty string is returned as is.
func GetEnvString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// GetEnvInt falls back to defaultValue when key is unset or not an integer.
func GetEnvInt(key string, defaultValue int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("invalid integer for %s: %v, using default %d", key, err, defaultValue)
		return defaultValue
	}
	return parsed
}
