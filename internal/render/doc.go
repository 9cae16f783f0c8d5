// Package render produces the text of every file placed into a generated
// project. Generators are pure: they take descriptor data and return strings,
// so the same inputs always produce the same bytes. Templates are embedded
// and parsed once on first use.
package render