package feed

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/model"
)

// Candidate paths are tried in order; the first non-empty string wins. Feed
// shape drift should only ever require changes in this file.
var (
	namePaths   = []string{"name", "name.ja_JP", "name.ja", "name.jp", "name.en_US"}
	imagePaths  = []string{"image", "image.url", "thumbnail", "thumbnailImage.url"}
	startPaths  = []string{"start_time", "startTime"}
	endPaths    = []string{"end_time", "endTime"}
	ruleKeys    = []string{"key", "id"}
	bossIDPaths = []string{"id", "key"}
)

// FirstString returns the first present, non-blank string among paths.
func FirstString(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		v := r.Get(p)
		if v.Type == gjson.String {
			if s := strings.TrimSpace(v.Str); s != "" {
				return s
			}
		}
	}
	return ""
}

func firstTime(r gjson.Result, paths ...string) (time.Time, bool) {
	s := FirstString(r, paths...)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func firstBool(r gjson.Result, paths ...string) bool {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() {
			return v.Bool()
		}
	}
	return false
}

// Stage normalizes a stage record, which may be a bare name.
func Stage(r gjson.Result) (model.Stage, bool) {
	if r.Type == gjson.String {
		name := strings.TrimSpace(r.Str)
		return model.Stage{Name: name}, name != ""
	}
	if !r.IsObject() {
		return model.Stage{}, false
	}
	s := model.Stage{
		Name:  FirstString(r, namePaths...),
		Image: FirstString(r, imagePaths...),
	}
	return s, s.Name != "" || s.Image != ""
}

// Stages normalizes a stage list. A null or absent list yields nil.
func Stages(r gjson.Result) []model.Stage {
	if r.IsObject() || r.Type == gjson.String {
		if s, ok := Stage(r); ok {
			return []model.Stage{s}
		}
		return nil
	}
	if !r.IsArray() {
		return nil
	}
	var out []model.Stage
	r.ForEach(func(_, v gjson.Result) bool {
		if s, ok := Stage(v); ok {
			out = append(out, s)
		}
		return true
	})
	return out
}

// WeaponName extracts a weapon display name from a bare string, {name},
// {name:{ja_JP}} or {weapon:{...}}.
func WeaponName(r gjson.Result) string {
	switch {
	case r.Type == gjson.String:
		return strings.TrimSpace(r.Str)
	case !r.IsObject():
		return ""
	}
	if name := FirstString(r, namePaths...); name != "" {
		return name
	}
	if w := r.Get("weapon"); w.IsObject() {
		return WeaponName(w)
	}
	return ""
}

func Weapon(r gjson.Result) (model.Weapon, bool) {
	name := WeaponName(r)
	if name == "" {
		return model.Weapon{}, false
	}
	image := FirstString(r, imagePaths...)
	if image == "" {
		image = FirstString(r.Get("weapon"), imagePaths...)
	}
	return model.Weapon{Name: name, Image: image}, true
}

// WeaponNames normalizes every weapon of a list, dropping unnamed records.
func WeaponNames(r gjson.Result) []string {
	var out []string
	r.ForEach(func(_, v gjson.Result) bool {
		if name := WeaponName(v); name != "" {
			out = append(out, name)
		}
		return true
	})
	return out
}

func Rule(r gjson.Result) *model.Rule {
	if r.Type == gjson.String {
		return &model.Rule{Key: r.Str, Name: r.Str}
	}
	if !r.IsObject() {
		return nil
	}
	rule := model.Rule{
		Key:  FirstString(r, ruleKeys...),
		Name: FirstString(r, namePaths...),
	}
	if rule.Key == "" && rule.Name == "" {
		return nil
	}
	return &rule
}

func Boss(r gjson.Result) *model.Boss {
	if !r.IsObject() {
		return nil
	}
	boss := model.Boss{
		ID:   FirstString(r, bossIDPaths...),
		Name: FirstString(r, namePaths...),
	}
	if boss.ID == "" && boss.Name == "" {
		return nil
	}
	return &boss
}

// Entry normalizes one rotation record. Records without a valid, non-empty
// time window are rejected.
func Entry(r gjson.Result) (model.RotationEntry, bool) {
	start, ok := firstTime(r, startPaths...)
	if !ok {
		return model.RotationEntry{}, false
	}
	end, ok := firstTime(r, endPaths...)
	if !ok || !start.Before(end) {
		return model.RotationEntry{}, false
	}

	stages := r.Get("stages")
	e := model.RotationEntry{
		StartTime:    start,
		EndTime:      end,
		Rule:         Rule(r.Get("rule")),
		Stages:       Stages(stages),
		StagesListed: stages.Exists() && stages.Type != gjson.Null,
		Boss:         Boss(r.Get("boss")),
		IsBigRun:     firstBool(r, "is_big_run", "isBigRun"),
		IsFest:       firstBool(r, "is_fest", "isFest"),
		IsTricolor:   firstBool(r, "is_tricolor", "isTricolor"),
	}

	if st, ok := Stage(r.Get("stage")); ok {
		e.Stage = &st
	}

	r.Get("weapons").ForEach(func(_, v gjson.Result) bool {
		if w, ok := Weapon(v); ok && len(e.Weapons) < model.MaxWeapons {
			e.Weapons = append(e.Weapons, w)
		}
		return true
	})

	if ts := r.Get("tricolor_stages"); ts.Exists() {
		e.TricolorStages = Stages(ts)
	} else {
		e.TricolorStages = Stages(r.Get("tricolor_stage"))
	}

	return e, true
}
