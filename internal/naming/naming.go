// Package naming derives source-level identifiers from registry keys.
package naming

import "strings"

// Identifier converts a kebab-case registry key into the PascalCase
// identifier used for contract names, generated file names, and factory
// lookups: "fhe-counter" becomes "FheCounter".
func Identifier(key string) string {
	segments := strings.Split(key, "-")
	var b strings.Builder
	for _, s := range segments {
		if s == "" {
			continue
		}
		b.WriteString(strings.ToUpper(s[:1]))
		b.WriteString(s[1:])
	}
	return b.String()
}

// LocalName converts a registry key into the lowerCamelCase form used for
// local variables in generated deployment scripts: "fhe-counter" becomes
// "fheCounter".
func LocalName(key string) string {
	id := Identifier(key)
	if id == "" {
		return id
	}
	return strings.ToLower(id[:1]) + id[1:]
}
