package pursuit

import "time"

// Timer is a flag that stays up until an absolute deadline.
// It never fires by itself; callers compare it against the tick clock.
type Timer struct {
	until time.Time
	armed bool
}

// Arm raises the flag for d from now. Arming an active timer restarts it.
func (t *Timer) Arm(now time.Time, d time.Duration) {
	t.until = now.Add(d)
	t.armed = true
}

// Active reports whether the flag is up at now. The deadline itself is
// already outside the active window.
func (t Timer) Active(now time.Time) bool {
	return t.armed && now.Before(t.until)
}

// Remaining returns the time left before expiry, or zero.
func (t Timer) Remaining(now time.Time) time.Duration {
	if !t.Active(now) {
		return 0
	}
	return t.until.Sub(now)
}

// Expire lowers an armed flag whose deadline has passed and reports whether
// it did so.
func (t *Timer) Expire(now time.Time) bool {
	if t.armed && !now.Before(t.until) {
		t.armed = false
		return true
	}
	return false
}

// Shift moves the deadline of an armed timer by d.
func (t *Timer) Shift(d time.Duration) {
	if t.armed {
		t.until = t.until.Add(d)
	}
}

// Clear lowers the flag.
func (t *Timer) Clear() {
	*t = Timer{}
}

// expireTimers is the once-per-tick expiry step. It lowers elapsed flags and
// brings back adversaries whose respawn delay is over.
func expireTimers(w *World, spawn func(x, y float64)) {
	if w.Scared.Expire(w.Now) {
		w.logger.Debug("adversaries recovered")
	}
	if w.PathView.Expire(w.Now) {
		w.logger.Debug("path view ended")
	}

	kept := w.respawns[:0]
	for _, r := range w.respawns {
		if w.Now.Before(r.at) {
			kept = append(kept, r)
			continue
		}
		spawn(r.x, r.y)
		w.logger.Debug("adversary respawned", "x", r.x, "y", r.y)
	}
	w.respawns = kept
}

// shiftTimers moves every deadline by d, used to freeze timers while paused.
func shiftTimers(w *World, d time.Duration) {
	w.Scared.Shift(d)
	w.PathView.Shift(d)
	for i := range w.respawns {
		w.respawns[i].at = w.respawns[i].at.Add(d)
	}
}
