// Package assets locates the art and audio files that belong to a general.
package assets

import "strings"

// LookupFunc resolves one candidate key. An empty value or ok == false is a miss.
type LookupFunc func(key string) (value string, ok bool)

// Candidates returns the keys tried for name, in order: the name itself, the part
// after the last underscore, and the name without one trailing "f".
// Repeated keys are dropped so each is looked up once.
func Candidates(name string) []string {
	suffix := name
	if idx := strings.LastIndex(name, "_"); idx >= 0 {
		suffix = name[idx+1:]
	}

	out := make([]string, 0, 3)
	for _, key := range []string{name, suffix, strings.TrimSuffix(name, "f")} {
		if !containsKey(out, key) {
			out = append(out, key)
		}
	}
	return out
}

// ResolveVariant returns the first non-empty lookup result across Candidates(name).
func ResolveVariant(name string, lookup LookupFunc) (string, bool) {
	if lookup == nil {
		return "", false
	}
	for _, key := range Candidates(name) {
		if value, ok := lookup(key); ok && value != "" {
			return value, true
		}
	}
	return "", false
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
