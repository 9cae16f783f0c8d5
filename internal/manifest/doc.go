// Package manifest models and validates the package.json manifest written
// into generated projects. The scaffolder validates its own output against
// the embedded schema after writing; violations surface as warnings, never
// as errors.
package manifest