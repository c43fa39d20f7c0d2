package clock

import "time"

// Precision matches what the document store keeps for datetimes, so a
// timestamp handed back on create equals the one read back later.
const Precision = time.Millisecond

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return Normalize(time.Now())
}

// Normalize converts t to UTC at store precision.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(Precision)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: Normalize(t)}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = Normalize(t)
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
