package schedule

import (
	"time"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

var t0 = time.Date(2024, 1, 1, 15, 0, 0, 0, time.FixedZone("JST", 9*60*60))

// at returns the i-th two-hour window start after t0.
func at(i int) time.Time {
	return t0.Add(time.Duration(i) * 2 * time.Hour)
}

func entry(i int, stages ...string) model.RotationEntry {
	e := model.RotationEntry{
		StartTime: at(i),
		EndTime:   at(i + 1),
		Rule:      &model.Rule{Key: "AREA", Name: "ガチエリア"},
	}
	for _, s := range stages {
		e.Stages = append(e.Stages, model.Stage{Name: s})
	}
	return e
}

func reference(n int) []model.RotationEntry {
	entries := make([]model.RotationEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, entry(i, "R1", "R2"))
	}
	return entries
}
