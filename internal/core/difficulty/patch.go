package difficulty

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/feed"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

// weaponListPaths are the places a snapshot may carry the cooperative
// loadout, in lookup order.
var weaponListPaths = []string{
	"salmonRun.weapons",
	"salmonRun.weaponList",
	"salmon.weapons",
	"coop.weapons",
	"salmonWeapons",
}

// rankHolders are objects that receive a "difficulty" field when present.
var rankHolders = []string{"salmonRun", "salmon", "coop"}

// ExtractWeapons returns the first non-empty weapon list found in a
// snapshot document.
func ExtractWeapons(doc []byte) []string {
	for _, p := range weaponListPaths {
		list := gjson.GetBytes(doc, p)
		if !list.IsArray() || len(list.Array()) == 0 {
			continue
		}
		if names := feed.WeaponNames(list); len(names) > 0 {
			return names
		}
	}
	return nil
}

// Patch writes rank to the top-level "salmonDifficulty" field and into every
// cooperative object the document carries.
func Patch(doc []byte, rank model.DifficultyRank) ([]byte, error) {
	out, err := sjson.SetBytes(doc, "salmonDifficulty", string(rank))
	if err != nil {
		return nil, errors.Wrap(err, "failed to set salmonDifficulty")
	}
	for _, holder := range rankHolders {
		if !gjson.GetBytes(out, holder).IsObject() {
			continue
		}
		out, err = sjson.SetBytes(out, holder+".difficulty", string(rank))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to set %s.difficulty", holder)
		}
	}
	return out, nil
}
