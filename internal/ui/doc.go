// Package ui holds the color palette and print helpers shared by the CLI
// commands. Colors degrade to plain text automatically when stdout is not a
// terminal or NO_COLOR is set.
package ui
