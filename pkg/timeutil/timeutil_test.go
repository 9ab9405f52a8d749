package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestFromEpoch(t *testing.T) {
	if got := FromEpoch(1_700_000_000); got != 1_700_000_000 {
		t.Fatalf("seconds must pass through, got %d", got)
	}
	if got := FromEpoch(1_700_000_000_123); got != 1_700_000_000 {
		t.Fatalf("milliseconds must be scaled down, got %d", got)
	}
}

func TestFromRFC3339(t *testing.T) {
	got, err := FromRFC3339("2023-11-14T22:13:20Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1_700_000_000 {
		t.Fatalf("expected 1700000000, got %d", got)
	}

	// Offsets normalize to UTC.
	offset, err := FromRFC3339("2023-11-14T19:13:20-03:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offset != got {
		t.Fatalf("offset form should normalize to the same instant, got %d vs %d", offset, got)
	}

	if _, err := FromRFC3339("not-a-time"); !errors.Is(err, ErrUnparsableTimestamp) {
		t.Fatalf("expected ErrUnparsableTimestamp, got %v", err)
	}
}

func TestFromAny(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int64
	}{
		{name: "time.Time", in: time.Unix(1_700_000_000, 0), want: 1_700_000_000},
		{name: "int64 seconds", in: int64(1_700_000_000), want: 1_700_000_000},
		{name: "int millis", in: int(1_700_000_000_000), want: 1_700_000_000},
		{name: "float64", in: float64(1_700_000_000), want: 1_700_000_000},
		{name: "numeric string", in: "1700000000", want: 1_700_000_000},
		{name: "rfc3339 string", in: "2023-11-14T22:13:20Z", want: 1_700_000_000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromAny(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		if _, err := FromAny(struct{}{}); !errors.Is(err, ErrUnparsableTimestamp) {
			t.Fatalf("expected ErrUnparsableTimestamp, got %v", err)
		}
	})
}

func TestToRFC3339RoundTrip(t *testing.T) {
	s := ToRFC3339(1_700_000_000)
	if s != "2023-11-14T22:13:20Z" {
		t.Fatalf("unexpected rendering: %s", s)
	}
	back, err := FromRFC3339(s)
	if err != nil || back != 1_700_000_000 {
		t.Fatalf("round trip failed: %d %v", back, err)
	}
}
