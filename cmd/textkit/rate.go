package main

import (
	"sync"
)

type windowLimiter struct {
	mutex        sync.Mutex
	windowEnd    int64
	counts       map[string]int
	perMinuteCap int
}

func newWindowLimiter(perMinuteCap int) *windowLimiter {
	return &windowLimiter{
		windowEnd:    timeNow().Unix() + 60,
		counts:       make(map[string]int),
		perMinuteCap: perMinuteCap,
	}
}

func (limiter *windowLimiter) allow(bucketKey string) bool {
	limiter.mutex.Lock()
	defer limiter.mutex.Unlock()
	currentUnix := timeNow().Unix()
	if currentUnix >= limiter.windowEnd {
		limiter.windowEnd = currentUnix + 60
		limiter.counts = make(map[string]int)
	}
	if limiter.counts[bucketKey] >= limiter.perMinuteCap {
		return false
	}
	limiter.counts[bucketKey] = limiter.counts[bucketKey] + 1
	return true
}
