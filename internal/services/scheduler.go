package services

import (
  "time"
)

const (
  // Interval applied after a failed review.
  ReviewIntervalFail = 24 * time.Hour
  // Interval applied after a correct review.
  ReviewIntervalPass = 72 * time.Hour
)

// ComputeNextReview maps a review outcome to the next due date. The policy is
// a fixed two-bucket interval: one day after a miss, three days after a hit.
// It does not grow with mastery level, so callers must not assume spacing
// widens over repeated correct answers.
func ComputeNextReview(correct bool, now time.Time) time.Time {
  if correct {
    return now.Add(ReviewIntervalPass)
  }
  return now.Add(ReviewIntervalFail)
}
