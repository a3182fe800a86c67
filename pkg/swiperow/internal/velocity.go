package internal

import "time"

const velocitySamples = 16

type velocitySample struct {
	at     time.Time
	offset float64
}

// VelocityTracker estimates release velocity from recent offset samples.
// Samples live in a fixed ring so adding one never allocates.
type VelocityTracker struct {
	samples [velocitySamples]velocitySample
	next    int
	count   int
	window  time.Duration
}

// NewVelocityTracker creates a tracker that only considers samples newer
// than window when estimating velocity.
func NewVelocityTracker(window time.Duration) VelocityTracker {
	return VelocityTracker{window: window}
}

// Add records the offset observed at the given time.
func (v *VelocityTracker) Add(at time.Time, offset float64) {
	v.samples[v.next] = velocitySample{at: at, offset: offset}
	v.next = (v.next + 1) % velocitySamples
	if v.count < velocitySamples {
		v.count++
	}
}

// Velocity returns the offset change per second between the oldest sample
// inside the window and the newest sample. Returns 0 with fewer than two
// usable samples.
func (v *VelocityTracker) Velocity() float64 {
	if v.count < 2 {
		return 0
	}

	newest := v.samples[(v.next-1+velocitySamples)%velocitySamples]
	oldest := newest

	for i := 2; i <= v.count; i++ {
		s := v.samples[(v.next-i+velocitySamples)%velocitySamples]
		if v.window > 0 && newest.at.Sub(s.at) > v.window {
			break
		}
		oldest = s
	}

	dt := newest.at.Sub(oldest.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (newest.offset - oldest.offset) / dt
}

// Reset discards all samples.
func (v *VelocityTracker) Reset() {
	v.next = 0
	v.count = 0
}
