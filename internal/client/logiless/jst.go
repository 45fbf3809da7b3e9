package logiless

import (
	"fmt"
	"time"
)

// Tokyo is a fixed +09:00 offset. The upstream API speaks JST exclusively,
// so date handling must not depend on the runtime's local zone or tzdata.
var Tokyo = time.FixedZone("JST", 9*60*60)

// ParseTokyo interprets an upstream timestamp string as +09:00 local time.
// Upstream omits the offset and uses either "T" or space as the separator.
func ParseTokyo(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, Tokyo); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("logiless: invalid timestamp %q", s)
}

// ParseTokyoDate interprets a "YYYY-MM-DD" date as midnight +09:00.
func ParseTokyoDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, Tokyo)
	if err != nil {
		return time.Time{}, fmt.Errorf("logiless: invalid date %q", s)
	}
	return t, nil
}

// formatQueryTime serializes a timestamp for updated_at_from/updated_at_to
// query parameters: JST wall-clock time, space separated, no offset suffix.
func formatQueryTime(t time.Time) string {
	return t.In(Tokyo).Format("2006-01-02 15:04:05")
}
