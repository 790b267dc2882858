package schedule

import (
	"github.com/samber/lo"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/spl3err"
)

// Build derives the canonical slot grid from the first entries of the
// reference feed, padding with null windows when the feed is short. An empty
// reference feed leaves no way to establish slot boundaries.
func Build(reference []model.RotationEntry) (model.Timeline, error) {
	var timeline model.Timeline
	if len(reference) == 0 {
		return timeline, spl3err.ErrReferenceFeedEmpty
	}
	for i := 0; i < model.SlotCount && i < len(reference); i++ {
		timeline[i] = model.WindowOf(reference[i].StartTime, reference[i].EndTime)
	}
	return timeline, nil
}

// Align places entries onto the timeline by start time equality. Slots with
// no matching entry, or with a null window, get the empty placeholder.
// Entry order in the input does not matter.
func Align(entries []model.RotationEntry, timeline model.Timeline) model.Aligned {
	var aligned model.Aligned
	for i, w := range timeline {
		if w.IsNull() {
			continue
		}
		if e, ok := lo.Find(entries, func(e model.RotationEntry) bool {
			return e.StartTime.Equal(w.Start.Time)
		}); ok {
			aligned[i] = e
		}
	}
	return aligned
}
