package utils

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "zero duration",
			duration: 0,
			want:     "0s",
		},
		{
			name:     "negative duration",
			duration: -5 * time.Second,
			want:     "0s",
		},
		{
			name:     "milliseconds",
			duration: 500 * time.Millisecond,
			want:     "500ms",
		},
		{
			name:     "seconds",
			duration: 45 * time.Second,
			want:     "45s",
		},
		{
			name:     "minutes and seconds",
			duration: 90 * time.Second,
			want:     "1m 30s",
		},
		{
			name:     "whole minutes",
			duration: 15 * time.Minute,
			want:     "15m 0s",
		},
		{
			name:     "hours and minutes",
			duration: 2*time.Hour + 5*time.Minute,
			want:     "2h 5m",
		},
		{
			name:     "seconds dropped above an hour",
			duration: time.Hour + 30*time.Second,
			want:     "1h 0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.duration); got != tt.want {
				t.Errorf("FormatDuration(%s) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}
