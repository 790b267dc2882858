package gametime

import (
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultZone = "Asia/Tokyo"

// weekdays are indexed by time.Weekday (Sunday first).
var weekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// Location loads the named zone, falling back to a fixed JST offset when the
// host has no tzdata.
func Location(name string) *time.Location {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("zone", name).Msg("failed to load time zone, falling back to UTC+9")
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// Range formats a battle window as "15:00~17:00".
func Range(start, end time.Time, loc *time.Location) string {
	return start.In(loc).Format("15:04") + "~" + end.In(loc).Format("15:04")
}

// CoopStamp formats a cooperative window bound as "01/02(月) 15:04".
func CoopStamp(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return t.Format("01/02") + "(" + weekdays[t.Weekday()] + ") " + t.Format("15:04")
}

// Hour returns the wall-clock hour of t in loc.
func Hour(t time.Time, loc *time.Location) int {
	return t.In(loc).Hour()
}
