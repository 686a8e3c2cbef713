package core

// Color is the foreground of a screen cell. The palette holds only what
// the runner draws; front-ends map it with ANSI.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorRed                // spike body
	ColorGreen              // progress bar
	ColorMagenta            // portal
	ColorCyan               // player
	ColorBrightRed          // spike apex
	ColorBrightYellow       // player marker, overlay titles
	ColorBrightWhite        // HUD text
	ColorGray               // ground, ceiling, particles
)

// ansiCodes are 256-color palette indexes. ColorDefault has none.
var ansiCodes = [...]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
	ColorGray:         "245",
}

// ANSI returns the 256-color index for c, or "" for the terminal default
// and unknown colors.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
