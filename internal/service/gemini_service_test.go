package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoffJitters(t *testing.T) {
	s := &GeminiService{baseDelay: time.Second, maxDelay: 90 * time.Second}

	base := 4 * time.Second // attempt 3 doubles twice
	seen := map[time.Duration]struct{}{}
	for i := 0; i < 64; i++ {
		delay := s.calculateBackoff(3)
		assert.GreaterOrEqual(t, delay, base-base/8)
		assert.Less(t, delay, base+base/8)
		seen[delay] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "backoff should not be constant")
}

func TestCalculateBackoffRespectsMaxDelay(t *testing.T) {
	s := &GeminiService{baseDelay: time.Second, maxDelay: 2 * time.Second}

	delay := s.calculateBackoff(10)
	assert.Less(t, delay, 2*time.Second+2*time.Second/8)
}
