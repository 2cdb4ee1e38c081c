package services

import (
	"testing"
	"time"
)

func TestComputeNextReview(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		correct bool
		want    time.Duration
	}{
		{name: "incorrect_one_day", correct: false, want: 24 * time.Hour},
		{name: "correct_three_days", correct: true, want: 72 * time.Hour},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeNextReview(tc.correct, now)
			if diff := got.Sub(now); diff != tc.want {
				t.Fatalf("ComputeNextReview(%v) interval = %v, want %v", tc.correct, diff, tc.want)
			}
			if !got.After(now) {
				t.Fatalf("next review %v must be strictly after now %v", got, now)
			}
		})
	}
}

func TestComputeNextReviewFixedInterval(t *testing.T) {
	// The policy is flat: spacing does not widen over repeated correct
	// answers.
	now := time.Now()
	first := ComputeNextReview(true, now)
	second := ComputeNextReview(true, first)
	if first.Sub(now) != second.Sub(first) {
		t.Fatalf("interval must stay fixed, got %v then %v", first.Sub(now), second.Sub(first))
	}
}
