// Package duration parses the retention ages accepted by
// "pathkit vacuum --older-than".
//
// An age is a whole number followed by one unit letter: h (hours), d (days),
// w (weeks), m (30-day months) or y (365-day years). Audit entries are
// written per invocation, so hours are allowed for pruning a busy log.
package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalid is returned for an age that does not parse.
var ErrInvalid = errors.New("invalid duration")

const day = 24 * time.Hour

var units = map[string]time.Duration{
	"h": time.Hour,
	"d": day,
	"w": 7 * day,
	"m": 30 * day,
	"y": 365 * day,
}

var pattern = regexp.MustCompile(`^(\d+)([hdwmy])$`)

// Parse converts an age such as "12h", "30d" or "1y" to a time.Duration.
func Parse(s string) (time.Duration, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w format %q (use 12h, 7d, 4w, 3m or 1y)", ErrInvalid, s)
	}

	unit := units[m[2]]
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalid, s)
	}
	return time.Duration(n) * unit, nil
}
