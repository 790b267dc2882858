package model

// DifficultyRank summarizes a cooperative loadout. RankUnknown is used
// whenever a loadout cannot be rated.
type DifficultyRank string

const (
	RankSS      DifficultyRank = "SS"
	RankS       DifficultyRank = "S"
	RankA       DifficultyRank = "A"
	RankB       DifficultyRank = "B"
	RankC       DifficultyRank = "C"
	RankD       DifficultyRank = "D"
	RankE       DifficultyRank = "E"
	RankUnknown DifficultyRank = "?"
)

// Board is the merged, timeline-aligned result of one run. Renderer and
// snapshot serializer both read it; neither writes to it.
type Board struct {
	Timeline Timeline

	// CoopTimeline is the cooperative mode's own slot grid. The cooperative
	// rotation runs on a different cadence than battles.
	CoopTimeline Timeline

	// Slots holds the merged slots of every rendered mode.
	Slots map[Mode]Aligned

	// Fest holds the festival feed aligned to the timeline. Its tricolor
	// data drives the tricolor overlay.
	Fest Aligned

	// FestActive flags the slots in which the festival feed has stages.
	FestActive [SlotCount]bool

	// Ranks holds the cooperative difficulty rank per slot.
	Ranks [SlotCount]DifficultyRank
}

// Now returns the current slot of the given mode.
func (b *Board) Now(mode Mode) RotationEntry {
	return b.Slots[mode][SlotNow]
}

// AnyFestActive reports whether at least one slot is festival-active.
func (b *Board) AnyFestActive() bool {
	for _, active := range b.FestActive {
		if active {
			return true
		}
	}
	return false
}
