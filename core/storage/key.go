package storage

import (
	"fmt"
	"strings"
)

// CleanKey normalizes an object key for provider calls: strips the leading
// slash and rejects keys containing parent-directory segments. Backends call
// this before every operation so a hostile key never reaches the provider.
func CleanKey(key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
	}
	return key, nil
}

// SanitizeFilename strips path separators and control characters from a
// user-supplied filename so it is safe to embed in an object key or a
// Content-Disposition header. Empty input sanitizes to "unnamed".
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)

	// Drop any directory part the client may have sent.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r < 0x20 || r == 0x7f:
			// control characters
		case r == '"' || r == '\'' || r == '`':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}

	name = b.String()
	if name == "" || name == "." || name == ".." {
		return "unnamed"
	}
	return name
}
