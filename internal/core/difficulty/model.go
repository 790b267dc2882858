package difficulty

import (
	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

// Rating is one weapon's row of the rating table.
type Rating struct {
	Score *float64 `json:"score"`
}

// Table maps weapon display names to ratings. It is read-only during a run.
type Table map[string]Rating

// Policy holds the score weighting and the rank thresholds, highest first.
type Policy struct {
	AverageWeight float64
	MinimumWeight float64
	Thresholds    [4]float64
}

// thresholdRanks pairs with Policy.Thresholds; anything below the last
// threshold is RankE.
var thresholdRanks = [4]model.DifficultyRank{model.RankA, model.RankB, model.RankC, model.RankD}

var DefaultPolicy = Policy{
	AverageWeight: 0.6,
	MinimumWeight: 0.4,
	Thresholds:    [4]float64{420, 380, 340, 300},
}

func PolicyFromConfig(conf *appconfig.Config) Policy {
	p := Policy{
		AverageWeight: conf.DifficultyAverageWeight,
		MinimumWeight: conf.DifficultyMinimumWeight,
		Thresholds:    DefaultPolicy.Thresholds,
	}
	if len(conf.DifficultyThresholds) == len(p.Thresholds) {
		copy(p.Thresholds[:], conf.DifficultyThresholds)
	}
	return p
}
