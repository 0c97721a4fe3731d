package format

// Facing codes packed into the high byte of a global palette entry.
const (
	FacingDown  = 0
	FacingUp    = 1
	FacingNorth = 2
	FacingSouth = 3
	FacingWest  = 4
	FacingEast  = 5
)

var facingNames = [...]string{
	FacingDown:  "down",
	FacingUp:    "up",
	FacingNorth: "north",
	FacingSouth: "south",
	FacingWest:  "west",
	FacingEast:  "east",
}

// FacingString maps a facing code to its direction name. The second return
// is false for any code outside the six known directions; such entries carry
// no facing suffix.
func FacingString(code byte) (string, bool) {
	if int(code) < len(facingNames) {
		return facingNames[code], true
	}
	return "", false
}
