package model

import (
	"strconv"
	"time"

	"gopkg.in/guregu/null.v3"
)

// SlotCount is the number of canonical slots on the board.
const SlotCount = 5

type Slot int

const (
	SlotNow Slot = iota
	SlotNext
	SlotNext2
	SlotNext3
	SlotNext4
)

var slotNames = [SlotCount]string{"now", "next", "next2", "next3", "next4"}

func (s Slot) String() string {
	if s < 0 || int(s) >= SlotCount {
		return "slot" + strconv.Itoa(int(s))
	}
	return slotNames[s]
}

// Slots lists every slot in board order.
func Slots() []Slot {
	return []Slot{SlotNow, SlotNext, SlotNext2, SlotNext3, SlotNext4}
}

// Window is the time window of one slot. A padded window has both bounds null.
type Window struct {
	Start null.Time `json:"start"`
	End   null.Time `json:"end"`
}

func WindowOf(start, end time.Time) Window {
	return Window{
		Start: null.TimeFrom(start),
		End:   null.TimeFrom(end),
	}
}

func (w Window) IsNull() bool {
	return !w.Start.Valid
}

// Includes reports whether t falls into [Start, End).
func (w Window) Includes(t time.Time) bool {
	if w.IsNull() {
		return false
	}
	if w.Start.Time.After(t) {
		return false
	}
	if w.End.Valid && !w.End.Time.After(t) {
		return false
	}
	return true
}

// Timeline is the canonical slot grid of one run. It must not be modified
// once built.
type Timeline [SlotCount]Window

// Aligned holds one feed's entries placed onto the timeline.
type Aligned [SlotCount]RotationEntry
