package utils

import (
	"strconv"
	"strings"
	"time"
)

// GetString returns the first non-empty string.
func GetString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}

// StringToInt converts the given string to an int. Invalid input yields 0.
func StringToInt(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))

	if err != nil {
		return 0
	}

	return i
}

// GetInt returns the first non-zero int.
func GetInt(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}

	return 0
}

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}

// IsTrueString reports whether s reads as an enabled flag.
func IsTrueString(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "1") || strings.EqualFold(s, "yes") || strings.EqualFold(s, "on")
}

// ParseDuration parses s and falls back to def when s is empty or invalid.
func ParseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}

	d, err := time.ParseDuration(s)

	if err != nil || d <= 0 {
		return def
	}

	return d
}
