package core

import "time"

// maxCatchUp bounds how many ticks a stalled driver replays before the
// pacer resynchronizes to the present.
const maxCatchUp = 8

// Pacer schedules generation ticks at a steady rate for drivers that have
// no frame loop of their own.
type Pacer struct {
	step time.Duration
	next time.Time
}

// NewPacer constructs a Pacer targeting the given ticks per second.
func NewPacer(tps int) *Pacer {
	if tps <= 0 {
		tps = 60
	}
	return &Pacer{step: time.Second / time.Duration(tps)}
}

// Ticks reports how many generation steps are due at now, advancing the
// internal deadline. A stall beyond maxCatchUp ticks drops the backlog.
func (p *Pacer) Ticks(now time.Time) int {
	if p.next.IsZero() {
		p.next = now.Add(p.step)
		return 1
	}
	ticks := 0
	for !now.Before(p.next) {
		ticks++
		p.next = p.next.Add(p.step)
		if ticks >= maxCatchUp {
			p.next = now.Add(p.step)
			break
		}
	}
	return ticks
}

// Until returns how long the driver may sleep before the next tick is due.
func (p *Pacer) Until(now time.Time) time.Duration {
	if p.next.IsZero() || now.After(p.next) {
		return 0
	}
	return p.next.Sub(now)
}
