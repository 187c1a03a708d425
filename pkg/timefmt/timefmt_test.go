package timefmt_test

import (
	"testing"

	"listenote/pkg/timefmt"
)

func TestMMSS(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{999, "00:00"},
		{1_000, "00:01"},
		{59_999, "00:59"},
		{60_000, "01:00"},
		{73_456, "01:13"},
		{3_600_000, "60:00"},
		{4_504_000, "75:04"},
		{-1, "00:00"},
	}
	for _, tc := range cases {
		if got := timefmt.MMSS(tc.ms); got != tc.want {
			t.Errorf("MMSS(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}
