package difficulty

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/width"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/spl3err"
)

const (
	randomMarker   = "random"
	randomMarkerJA = "ランダム"
)

var (
	bearContains = []string{"クマサン", "クマブキ", "grizzco"}
	bearPrefixes = []string{"クマ", "bear"}
)

// normalizeName folds full-width ASCII and half-width katakana so that feed
// spelling drift does not affect matching.
func normalizeName(name string) string {
	return strings.TrimSpace(width.Fold.String(name))
}

func IsRandom(name string) bool {
	n := normalizeName(name)
	return strings.Contains(strings.ToLower(n), randomMarker) || strings.Contains(n, randomMarkerJA)
}

// IsBear reports whether the weapon belongs to the special bear family.
func IsBear(name string) bool {
	n := strings.ToLower(normalizeName(name))
	for _, marker := range bearContains {
		if strings.Contains(n, marker) {
			return true
		}
	}
	for _, prefix := range bearPrefixes {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	return false
}

// Score classifies a cooperative loadout. See Rate for the rules.
func Score(weapons []string, table Table, policy Policy) model.DifficultyRank {
	rank, _ := Rate(weapons, table, policy)
	return rank
}

// Rate classifies a cooperative loadout. Rules apply in order: random or
// empty loadouts are unknown; bear weapons rank SS (all four) or S; a short
// loadout or any unrated weapon is unknown; otherwise the weighted score is
// compared against the policy thresholds. The error is ErrRatingIncomplete
// when the rank is unknown because of missing data.
func Rate(weapons []string, table Table, policy Policy) (model.DifficultyRank, error) {
	if len(weapons) == 0 || lo.SomeBy(weapons, IsRandom) {
		return model.RankUnknown, nil
	}

	switch bears := lo.CountBy(weapons, IsBear); {
	case bears == model.MaxWeapons:
		return model.RankSS, nil
	case bears > 0:
		return model.RankS, nil
	}

	if len(weapons) != model.MaxWeapons {
		return model.RankUnknown, spl3err.ErrRatingIncomplete.Msg("loadout has %d of %d weapons", len(weapons), model.MaxWeapons)
	}

	scores := make([]float64, 0, len(weapons))
	for _, name := range weapons {
		rating, ok := table.lookup(name)
		if !ok || rating.Score == nil {
			return model.RankUnknown, spl3err.ErrRatingIncomplete.Msg("no rating for weapon %q", name)
		}
		scores = append(scores, *rating.Score)
	}

	avg := lo.Sum(scores) / float64(len(scores))
	d := policy.AverageWeight*avg + policy.MinimumWeight*lo.Min(scores)

	for i, threshold := range policy.Thresholds {
		if d >= threshold {
			return thresholdRanks[i], nil
		}
	}
	return model.RankE, nil
}

func (t Table) lookup(name string) (Rating, bool) {
	if r, ok := t[name]; ok {
		return r, true
	}
	r, ok := t[normalizeName(name)]
	return r, ok
}
