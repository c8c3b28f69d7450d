package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		name string
		rate int
		want time.Duration
	}{
		{"unset uses default", 0, time.Second / defaultTickRate},
		{"negative uses default", -3, time.Second / defaultTickRate},
		{"in range", 20, 50 * time.Millisecond},
		{"capped", 10000, time.Second / maxTickRate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tickInterval(tc.rate); got != tc.want {
				t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.want)
			}
		})
	}
}
