package xl

import (
	"fmt"
	"strconv"
	"time"
)

const msPerDay = 24 * 60 * 60 * 1000

var (
	oaEpoch   = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC).Unix()
	oaMinDate = time.Date(100, 1, 1, 0, 0, 0, 0, time.UTC)
)

// ToOADate converts t into an OLE Automation date: days since 1899-12-30,
// with the time of day as the fraction. The wall clock of t is used as-is.
//
// Dates before 1899-12-30 keep the time of day as a positive fraction of a
// negative day count, so -1.25 is 1899-12-29 06:00. A time on 0001-01-01 is
// taken as a bare time of day.
func ToOADate(t time.Time) (float64, error) {
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)

	var millis int64
	if wall.Year() == 1 && wall.YearDay() == 1 {
		millis = (int64(wall.Hour())*3600+int64(wall.Minute())*60+int64(wall.Second()))*1000 + int64(wall.Nanosecond()/1e6)
	} else {
		if wall.Before(oaMinDate) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidDate, t.Format(time.RFC3339))
		}
		millis = (wall.Unix()-oaEpoch)*1000 + int64(wall.Nanosecond()/1e6)
	}

	if millis < 0 {
		frac := millis % msPerDay
		if frac != 0 {
			millis -= (msPerDay + frac) * 2
		}
	}
	return float64(millis) / msPerDay, nil
}

func formatOADate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
