package model

import (
	"time"
)

type Stage struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Rule struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type Boss struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type Weapon struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// RotationEntry is one scheduled occurrence of a mode over the half-open
// interval [StartTime, EndTime). The zero value is the empty placeholder.
type RotationEntry struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Rule      *Rule     `json:"rule,omitempty"`
	Stages    []Stage   `json:"stages,omitempty"`

	// StagesListed is set when the record carries a non-null stages field,
	// even an empty one.
	StagesListed bool `json:"-"`

	// cooperative mode
	Stage    *Stage   `json:"stage,omitempty"`
	Boss     *Boss    `json:"boss,omitempty"`
	Weapons  []Weapon `json:"weapons,omitempty"`
	IsBigRun bool     `json:"isBigRun,omitempty"`

	// festival variant
	IsFest         bool    `json:"isFest,omitempty"`
	IsTricolor     bool    `json:"isTricolor,omitempty"`
	TricolorStages []Stage `json:"tricolorStages,omitempty"`
}

// Empty reports whether the entry is a placeholder for a slot with no data.
func (e RotationEntry) Empty() bool {
	return e.StartTime.IsZero()
}

// HasStages reports whether the entry carries usable stage data. The
// cooperative mode's single stage counts as a stage list of one.
func (e RotationEntry) HasStages() bool {
	return len(e.Stages) > 0 || e.Stage != nil
}

// Window returns the entry's time window.
func (e RotationEntry) Window() Window {
	if e.Empty() {
		return Window{}
	}
	return WindowOf(e.StartTime, e.EndTime)
}

// WeaponNames returns at most four weapon display names.
func (e RotationEntry) WeaponNames() []string {
	names := make([]string, 0, MaxWeapons)
	for _, w := range e.Weapons {
		if len(names) == MaxWeapons {
			break
		}
		names = append(names, w.Name)
	}
	return names
}

// StageNames returns at most two stage display names.
func (e RotationEntry) StageNames() []string {
	names := make([]string, 0, MaxStages)
	for _, s := range e.Stages {
		if len(names) == MaxStages {
			break
		}
		names = append(names, s.Name)
	}
	return names
}

const (
	MaxStages  = 2
	MaxWeapons = 4
)
