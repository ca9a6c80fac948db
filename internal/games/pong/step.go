package pong

// Events is a bit set describing what happened during one tick.
type Events uint8

const (
	EventWallBounce  Events = 1 << iota // Ball reflected off a side wall
	EventTopHit                         // Ball returned by the top paddle
	EventBottomHit                      // Ball returned by the bottom paddle
	EventPointTop                       // Top side scored
	EventPointBottom                    // Bottom side scored
	EventMatchWon                       // The point just scored decided the match
)

// Has reports whether all events in f are set.
func (e Events) Has(f Events) bool {
	return e&f == f
}

// Scored reports whether either side scored.
func (e Events) Scored() bool {
	return e&(EventPointTop|EventPointBottom) != 0
}

// Step advances the world by one tick.
//
// The order within a tick is fixed: paddles move, the ball integrates, side
// walls resolve, paddle contact is tested, then goal lines. A miss awards the
// point and starts a fresh round in the same transition. A decided match is
// returned unchanged.
func Step(w World, in Input, s Settings, launch Launcher) (World, Events) {
	if w.Status.Over() {
		return w, 0
	}

	var ev Events
	w.Tick++
	w.Paddles = movePaddles(w.Paddles, in, s)

	b := integrate(w.Ball)

	var walled bool
	if b, walled = bounceWalls(b, s); walled {
		ev |= EventWallBounce
	}

	if x, ok := contactTop(b, w.Paddles.Top, s); ok {
		b = rebound(b, SideTop, x, w.Paddles.Top, s)
		w.Rally++
		ev |= EventTopHit
	} else if x, ok := contactBottom(b, w.Paddles.Bottom, s); ok {
		b = rebound(b, SideBottom, x, w.Paddles.Bottom, s)
		w.Rally++
		ev |= EventBottomHit
	}
	w.Ball = b

	switch conceded(b, s) {
	case SideTop:
		w, ev = award(w, SideBottom, s, launch), ev|EventPointBottom
	case SideBottom:
		w, ev = award(w, SideTop, s, launch), ev|EventPointTop
	}
	if w.Status.Over() {
		ev |= EventMatchWon
	}
	return w, ev
}

// award gives side a point, decides the match if the limit is reached and
// starts the next round. Scores and the new round land together.
func award(w World, side Side, s Settings, launch Launcher) World {
	switch side {
	case SideTop:
		w.Scores.Top++
	case SideBottom:
		w.Scores.Bottom++
	}

	if s.ScoreLimit > 0 && w.Scores.Of(side) >= s.ScoreLimit {
		w.Status = MatchStatus{State: Won, Winner: side}
	}
	return newRound(w, s, launch)
}
