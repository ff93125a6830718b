package testutil

import (
	"time"

	"github.com/dtroode/scribehub/internal/clock"
)

// FixedTime is the instant stub clocks start at in tests.
var FixedTime = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)

// MakeStubClock returns a clock frozen at FixedTime.
func MakeStubClock() *clock.StubClock {
	return clock.NewStubClock(FixedTime)
}
