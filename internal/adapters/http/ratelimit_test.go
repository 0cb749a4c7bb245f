package httpadapter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuoteLimiter_FullTableKeepsActiveBuckets(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewQuoteLimiter(1, 1)
	l.max = 2
	l.now = func() time.Time { return clock }

	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))

	// a new address cannot push out buckets that are still draining
	assert.False(t, l.allow("10.0.0.3"))
	assert.False(t, l.allow("10.0.0.1"), "throttling survives a full table")
	assert.Len(t, l.limiters, 2)

	clock = clock.Add(2 * time.Second)
	assert.True(t, l.allow("10.0.0.3"), "refilled buckets make room")
	assert.Len(t, l.limiters, 1)
}

func TestQuoteLimiter_RotatingAddresses(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewQuoteLimiter(0.1, 1)
	l.max = 8
	l.now = func() time.Time { return clock }

	assert.True(t, l.allow("victim"))
	for i := 0; i < 100; i++ {
		l.allow(fmt.Sprintf("10.1.%d.%d", i/256, i%256))
	}
	assert.False(t, l.allow("victim"))
	assert.Len(t, l.limiters, 8)
}
