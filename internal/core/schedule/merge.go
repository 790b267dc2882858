package schedule

import (
	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

// FestActive flags every slot in which the aligned festival feed carries a
// non-null stages field, empty or not. The flags are shared by all
// festival-eligible modes.
func FestActive(fest model.Aligned) [model.SlotCount]bool {
	var active [model.SlotCount]bool
	for i := range fest {
		active[i] = fest[i].StagesListed || fest[i].HasStages()
	}
	return active
}

// Merge picks the festival or normal variant of every slot. The preferred
// variant is used when it has stages, otherwise the other one when it has
// stages, otherwise the (blank) preferred one.
func Merge(normal, festival model.Aligned, active [model.SlotCount]bool) model.Aligned {
	var merged model.Aligned
	for i := range merged {
		preferred, other := normal[i], festival[i]
		if active[i] {
			preferred, other = festival[i], normal[i]
		}

		switch {
		case preferred.HasStages():
			merged[i] = preferred
		case other.HasStages():
			merged[i] = other
		default:
			merged[i] = preferred
		}
	}
	return merged
}
