package shared

import (
	"math"
	"strconv"
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a key prefix and its parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// ParseID converts a path id into an integer. Integral numeric forms such as
// "1.0" or "1e1" are accepted. Anything else, or a value below 1, becomes 0,
// which is never issued, so it degrades into a lookup miss.
func ParseID(raw string) int {
	raw = strings.TrimSpace(raw)

	if id, err := strconv.Atoi(raw); err == nil {
		return max(id, 0)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 1 || f > math.MaxInt32 || f != math.Trunc(f) {
		return 0
	}

	return int(f)
}
