package common

import (
	"fmt"
	"time"
)

// GetResponseTime formats the elapsed time since init in milliseconds.
func GetResponseTime(init time.Time) string {
	timeDiff := time.Since(init).Milliseconds()
	return fmt.Sprintf("%dms", timeDiff)
}

// CacheKey joins a cache prefix and an identifier.
func CacheKey(prefix, id string) string {
	return prefix + id
}
