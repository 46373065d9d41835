package ratelimit

import "time"

var ParseIncrResult = parseIncrResult

func (m *MemoryCounter) SetClock(now func() time.Time) {
	m.now = now
}
