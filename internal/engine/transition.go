package engine

// resetState returns the idle state at the start of a cycle.
func resetState(set Settings) State {
	return State{
		Phase:            Focus,
		Running:          false,
		Paused:           false,
		CurrentSession:   1,
		RemainingSeconds: set.Seconds(Focus),
	}
}

// complete advances st past a phase whose countdown has reached zero. It
// returns the next state and the occasions to announce, in order.
func complete(st State, set Settings) (State, []Occasion) {
	next := st
	next.Paused = false

	if st.Phase == Focus {
		next.Phase = set.BreakAfter(st.CurrentSession)
		next.RemainingSeconds = set.Seconds(next.Phase)

		if set.AutoStart {
			next.Running = true

			return next, []Occasion{BreakStarted}
		}

		next.Running = false

		return next, []Occasion{BreakPending}
	}

	occasions := []Occasion{BreakFinished}

	next.CurrentSession++

	if next.CurrentSession > set.SessionsPerCycle {
		return resetState(set), append(occasions, CycleCompleted, Reset)
	}

	next.Phase = Focus
	next.RemainingSeconds = set.Seconds(Focus)

	if set.AutoStart {
		next.Running = true

		return next, append(occasions, FocusStarted)
	}

	next.Running = false

	return next, append(occasions, FocusPending)
}

// applySettings adjusts st after the settings changed to set. The session
// counter is clamped to the new cycle length and a break is re-classified
// against it. The countdown adopts the new phase length when the timer is not
// running or when the new length is longer than what remains, so a running
// phase can only be shortened by a reset.
func applySettings(st State, set Settings) State {
	st.CurrentSession = min(st.CurrentSession, set.SessionsPerCycle)

	if st.Phase.IsBreak() {
		st.Phase = set.BreakAfter(st.CurrentSession)
	}

	length := set.Seconds(st.Phase)

	if !st.Running || length > st.RemainingSeconds {
		st.RemainingSeconds = length
	}

	return st
}

// normalize repairs a state loaded from storage so that every invariant
// holds before the engine takes ownership of it.
func normalize(st State, set Settings) State {
	if !st.Phase.Valid() {
		st.Phase = Focus
	}

	if st.Running && st.Paused {
		st.Paused = false
	}

	st.CurrentSession = max(1, min(st.CurrentSession, set.SessionsPerCycle))

	if st.Phase.IsBreak() {
		st.Phase = set.BreakAfter(st.CurrentSession)
	}

	if st.RemainingSeconds <= 0 {
		st.RemainingSeconds = set.Seconds(st.Phase)
	}

	return st
}
