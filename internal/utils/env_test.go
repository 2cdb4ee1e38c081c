package utils

import (
	"testing"
	"time"
)

func TestGetEnvAsIntPositiveOnly(t *testing.T) {
	cases := []struct {
		name string
		val  string
		want int
	}{
		{"unset falls back", "", 300},
		{"valid value wins", "60", 60},
		{"zero falls back", "0", 300},
		{"negative falls back", "-5", 300},
		{"garbage falls back", "soon", 300},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.val != "" {
				t.Setenv("LANGFU_TEST_TTL", tc.val)
			}
			if got := GetEnvAsInt("LANGFU_TEST_TTL", 300, nil); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestGetEnvAsSeconds(t *testing.T) {
	t.Setenv("LANGFU_TEST_TTL", "90")
	if got := GetEnvAsSeconds("LANGFU_TEST_TTL", 300, nil); got != 90*time.Second {
		t.Fatalf("got %v, want 90s", got)
	}
	t.Setenv("LANGFU_TEST_TTL", "-1")
	if got := GetEnvAsSeconds("LANGFU_TEST_TTL", 300, nil); got != 300*time.Second {
		t.Fatalf("got %v, want the 300s default", got)
	}
}
