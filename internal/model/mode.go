package model

type Mode string

const (
	ModeRegular   Mode = "regular"
	ModeOpen      Mode = "open"
	ModeChallenge Mode = "challenge"
	ModeX         Mode = "xmatch"
	ModeSalmon    Mode = "salmon"

	// ModeFest is the festival feed. It is never rendered as a mode of its
	// own: its slots are merged into the festival-eligible modes.
	ModeFest Mode = "fest"
)

// VersusModes are the battle modes rendered with two stages per slot.
var VersusModes = []Mode{ModeRegular, ModeOpen, ModeChallenge, ModeX}

// FestEligible reports whether a festival variant may replace the mode's
// normal rotation.
func (m Mode) FestEligible() bool {
	switch m {
	case ModeRegular, ModeOpen, ModeChallenge:
		return true
	default:
		return false
	}
}
