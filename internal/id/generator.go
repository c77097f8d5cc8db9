package id

import "github.com/segmentio/ksuid"

// GenerateIDWithPrefix creates a new KSUID with the given prefix.
// KSUIDs are time-ordered, collision-resistant, and URL-safe.
//
// Format: <prefix><27-char-ksuid>
// Example: prod_2ArTLVPddDx8vZk7CqEbiYp1
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}

// HasPrefix reports whether s looks like an id produced with prefix.
func HasPrefix(s, prefix string) bool {
	if len(s) != len(prefix)+27 || s[:len(prefix)] != prefix {
		return false
	}
	_, err := ksuid.Parse(s[len(prefix):])
	return err == nil
}
