package query

import (
	"testing"
	"time"
)

func TestTimeFromFiletimeEpoch(t *testing.T) {
	got := TimeFromFiletime(filetimeUnixDiff)
	if !got.Equal(time.Unix(0, 0)) {
		t.Errorf("epoch offset should convert to the Unix epoch, got %v", got)
	}
}

func TestTimeFromFiletimeSaturates(t *testing.T) {
	for _, ticks := range []uint64{0, 1, filetimeUnixDiff - 1} {
		got := TimeFromFiletime(ticks)
		if !got.Equal(time.Unix(0, 0)) {
			t.Errorf("TimeFromFiletime(%d) should clamp to the Unix epoch, got %v", ticks, got)
		}
	}
}

func TestTimeFromFiletimeExact(t *testing.T) {
	tests := []struct {
		ticks uint64
		want  time.Time
	}{
		{filetimeUnixDiff + 10_000_000, time.Unix(1, 0)},
		{filetimeUnixDiff + 1, time.Unix(0, 100)},
		{filetimeUnixDiff + 15_000_000, time.Unix(1, 500_000_000)},
		// 2020-01-01T00:00:00Z is 1577836800 Unix seconds.
		{filetimeUnixDiff + 1_577_836_800*10_000_000, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got := TimeFromFiletime(tt.ticks)
		if !got.Equal(tt.want) {
			t.Errorf("TimeFromFiletime(%d): expected %v, got %v", tt.ticks, tt.want, got)
		}
	}
}

func TestTimeFromFiletimeMonotonic(t *testing.T) {
	ticks := []uint64{
		filetimeUnixDiff,
		filetimeUnixDiff + 1,
		filetimeUnixDiff + 99,
		filetimeUnixDiff + 10_000_000,
		filetimeUnixDiff + 10_000_001,
		filetimeUnixDiff + 1<<40,
	}

	for i := 1; i < len(ticks); i++ {
		a := TimeFromFiletime(ticks[i-1])
		b := TimeFromFiletime(ticks[i])
		if !a.Before(b) {
			t.Errorf("conversion not strictly monotonic: %d -> %v, %d -> %v",
				ticks[i-1], a, ticks[i], b)
		}
	}
}
