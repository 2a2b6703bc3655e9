package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code; ColorDefault keeps the terminal's own.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorRed                // power pellets, chasing adversaries
	ColorGreen              // path pellets, patrolling adversaries
	ColorYellow             // dots
	ColorBlue               // walls, scared adversaries
	ColorMagenta            // planned paths
	ColorBrightYellow       // player
)
