package core

// Timer is a deadline driven by externally supplied millisecond timestamps.
// It never reads a clock itself. A one-shot timer fires at most once; an
// interval timer re-arms itself after every fire.
type Timer struct {
	deadline uint64
	period   uint64
	repeat   bool
	spent    bool
}

// Once creates a timer that fires a single time once ts >= deadline.
func Once(deadline uint64) *Timer {
	return &Timer{deadline: deadline}
}

// Interval creates a repeating timer whose first deadline is now+period.
func Interval(now, period uint64) *Timer {
	return &Timer{deadline: now + period, period: period, repeat: true}
}

// Deadline returns the timestamp at which the timer fires next.
func (t *Timer) Deadline() uint64 {
	return t.deadline
}

// Fire reports whether the timer is due at ts. When it is, the deviation
// ts-deadline is returned and an interval timer is re-armed to ts+period.
// The next deadline is measured from the firing timestamp, not from the
// missed deadline, so sustained lag shifts the phase instead of bursting.
func (t *Timer) Fire(ts uint64) (deviation uint64, fired bool) {
	if t.spent || ts < t.deadline {
		return 0, false
	}
	deviation = ts - t.deadline
	if t.repeat {
		t.deadline = ts + t.period
	} else {
		t.spent = true
	}
	return deviation, true
}

// Check fires the timer at ts and, if due, invokes fn with the deviation
// exactly once and returns its result.
func Check[T any](t *Timer, ts uint64, fn func(deviation uint64) T) (T, bool) {
	var zero T
	deviation, fired := t.Fire(ts)
	if !fired {
		return zero, false
	}
	return fn(deviation), true
}

// Catchup returns how many periods a late fire has to make up for:
// (deviation+period)/period. A fire exactly on time yields 1.
// The division truncates, so a fire late by less than one period still
// runs a single step and only whole missed periods add more.
func Catchup(deviation, period uint64) int {
	if period == 0 {
		return 1
	}
	return int((deviation + period) / period)
}
