package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamps arrive in three shapes: RFC3339 strings from the payment gateway,
// epoch numbers (seconds or milliseconds) from storage, and time.Time from our
// own code. Everything is normalized to unix seconds on ingress; the domain
// never compares mixed representations.

var ErrUnparsableTimestamp = errors.New("unparsable timestamp")

// epochMillisFloor: values above this are assumed to be milliseconds.
// (Seconds would put the date past year 33658.)
const epochMillisFloor = int64(1e12)

// Clock supplies the current time as canonical unix seconds.
type Clock interface {
	Now() int64
}

type systemClock struct{}

func (systemClock) Now() int64 { return time.Now().UTC().Unix() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// FixedClock is a Clock pinned to a settable instant, for tests.
type FixedClock struct {
	Unix int64
}

func (c *FixedClock) Now() int64 { return c.Unix }

// FromTime normalizes a time.Time.
func FromTime(t time.Time) int64 {
	return t.UTC().Unix()
}

// FromEpoch normalizes an epoch number, accepting seconds or milliseconds.
func FromEpoch(v int64) int64 {
	if v >= epochMillisFloor {
		return v / 1000
	}
	return v
}

// FromRFC3339 normalizes an RFC3339(Nano) string.
func FromRFC3339(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableTimestamp, s)
	}
	return t.UTC().Unix(), nil
}

// FromAny normalizes whatever a collaborator handed us: RFC3339 or numeric
// strings, float/int epoch values, or time.Time.
func FromAny(v any) (int64, error) {
	switch x := v.(type) {
	case time.Time:
		return FromTime(x), nil
	case int64:
		return FromEpoch(x), nil
	case int:
		return FromEpoch(int64(x)), nil
	case float64:
		return FromEpoch(int64(x)), nil
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return FromEpoch(n), nil
		}
		return FromRFC3339(s)
	}
	return 0, fmt.Errorf("%w: %T", ErrUnparsableTimestamp, v)
}

// ToRFC3339 renders canonical unix seconds for presentation payloads.
func ToRFC3339(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}
