// Package style provides shared styling primitives: brand colors and
// icons for consistent presentation across the CLI.
package style

// Brand Colors.
const (
	Slate  = "#667085"
	Green  = "#22A06B"
	Red    = "#D93025"
	Yellow = "#F59E0B"
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)
