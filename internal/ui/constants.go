// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard box border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a bordered box with
	// one column of padding on each side.
	BorderWidth = 4
)
