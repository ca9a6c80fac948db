package replay

import "github.com/vovakirdan/tui-pong/internal/games/pong"

// Replay is everything needed to reproduce a match.
type Replay struct {
	Ruleset  string
	Seed     int64
	Settings pong.Settings
	Runs     []Run
}

// Ticks returns the recorded match length in ticks.
func (r Replay) Ticks() uint64 {
	return CountTicks(r.Runs)
}

// Play re-simulates a match headless and returns the final frame.
func Play(s pong.Settings, seed int64, runs []Run) (pong.Snapshot, error) {
	e, err := pong.NewEngine(s, seed)
	if err != nil {
		return pong.Snapshot{}, err
	}

	c := NewCursor(runs)
	for {
		f, ok := c.Next()
		if !ok {
			break
		}
		f.Apply(e)
	}
	return e.Snapshot(), nil
}

// Cursor walks a journal one frame at a time, for paced playback.
type Cursor struct {
	runs []Run
	run  int
	used uint32
	pos  uint64
}

// NewCursor creates a cursor at the first frame.
func NewCursor(runs []Run) *Cursor {
	return &Cursor{runs: runs}
}

// Next returns the next frame, or false once the journal is exhausted.
func (c *Cursor) Next() (Frame, bool) {
	for c.run < len(c.runs) && c.used >= c.runs[c.run].Count {
		c.run++
		c.used = 0
	}
	if c.run >= len(c.runs) {
		return 0, false
	}
	c.used++
	c.pos++
	return c.runs[c.run].Frame, true
}

// Pos returns the number of frames consumed so far.
func (c *Cursor) Pos() uint64 {
	return c.pos
}
