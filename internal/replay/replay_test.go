package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// scriptedInput is a deterministic stand-in for a human pair of players.
func scriptedInput(i int) pong.Input {
	return pong.Input{
		TopLeft:     i%60 < 20,
		TopRight:    i%60 >= 40,
		BottomLeft:  i%45 < 15,
		BottomRight: i%45 >= 30,
	}
}

func TestFrameRoundTrip(t *testing.T) {
	in := pong.Input{TopRight: true, BottomLeft: true}
	f := FrameOf(in, true)

	assert.Equal(t, in, f.Input())
	assert.True(t, f.Reset())
	assert.Equal(t, FrameTopRight|FrameBottomLeft|FrameReset, f)
	assert.False(t, FrameOf(pong.Input{}, false).Reset())
}

func TestRecorderRunLength(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 5; i++ {
		r.Record(FrameTopLeft)
	}
	r.Record(0)
	r.Record(0)
	r.Record(FrameReset)

	assert.Equal(t, uint64(8), r.Ticks())
	assert.Equal(t, []Run{
		{Frame: FrameTopLeft, Count: 5},
		{Frame: 0, Count: 2},
		{Frame: FrameReset, Count: 1},
	}, r.Runs())
}

func TestEncodeDecode(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 500; i++ {
		r.Record(FrameOf(scriptedInput(i), i == 250))
	}

	data, err := r.Encode()
	require.NoError(t, err)

	runs, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, r.Runs(), runs)
	assert.Equal(t, uint64(500), CountTicks(runs))
}

func TestDecodeRejectsCorrupt(t *testing.T) {
	_, err := Decode([]byte{0xc1, 0x00})
	require.ErrorIs(t, err, ErrCorrupt)

	future, err := msgpack.Marshal(journal{Version: formatVersion + 1})
	require.NoError(t, err)
	_, err = Decode(future)
	require.ErrorIs(t, err, ErrCorrupt)

	empty, err := msgpack.Marshal(journal{Version: formatVersion, Runs: []Run{{Frame: FrameTopLeft, Count: 0}}})
	require.NoError(t, err)
	_, err = Decode(empty)
	require.ErrorIs(t, err, ErrCorrupt)

	unknown, err := msgpack.Marshal(journal{Version: formatVersion, Runs: []Run{{Frame: 0x80, Count: 1}}})
	require.NoError(t, err)
	_, err = Decode(unknown)
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestPlayReproducesLiveMatch(t *testing.T) {
	s := pong.DefaultSettings()
	s.ScoreLimit = 3
	const seed = 4242

	live, err := pong.NewEngine(s, seed)
	require.NoError(t, err)

	rec := NewRecorder()
	for i := 0; i < 4000; i++ {
		reset := i == 1500 || (live.Over() && i%100 == 0)
		if !reset && !live.Running() {
			continue // no tick runs, nothing to record
		}
		f := FrameOf(scriptedInput(i), reset)
		f.Apply(live)
		rec.Record(f)
	}

	data, err := rec.Encode()
	require.NoError(t, err)
	runs, err := Decode(data)
	require.NoError(t, err)

	got, err := Play(s, seed, runs)
	require.NoError(t, err)
	assert.Equal(t, live.Snapshot(), got)
	assert.Equal(t, live.World().Tick, got.Tick)
}

func TestPlayDifferentSeedDiverges(t *testing.T) {
	s := pong.DefaultSettings()
	rec := NewRecorder()
	for i := 0; i < 600; i++ {
		rec.Record(FrameOf(scriptedInput(i), false))
	}

	var differ bool
	a, err := Play(s, 1, rec.Runs())
	require.NoError(t, err)
	for seed := int64(2); seed < 10 && !differ; seed++ {
		b, err := Play(s, seed, rec.Runs())
		require.NoError(t, err)
		differ = a != b
	}
	assert.True(t, differ, "different seeds should eventually serve differently")
}

func TestPlayRejectsInvalidSettings(t *testing.T) {
	s := pong.DefaultSettings()
	s.BallSpeed = 0
	_, err := Play(s, 1, nil)
	require.ErrorIs(t, err, pong.ErrInvalidSettings)
}

func TestCursor(t *testing.T) {
	c := NewCursor([]Run{{Frame: FrameTopLeft, Count: 2}, {Frame: FrameReset, Count: 1}})

	var got []Frame
	for {
		f, ok := c.Next()
		if !ok {
			break
		}
		got = append(got, f)
	}
	assert.Equal(t, []Frame{FrameTopLeft, FrameTopLeft, FrameReset}, got)
	assert.Equal(t, uint64(3), c.Pos())

	_, ok := NewCursor(nil).Next()
	assert.False(t, ok)
}

func TestSettingsYAML(t *testing.T) {
	s := pong.DefaultSettings()
	s.Collision = pong.CollisionPoint
	s.Miss = pong.MissOnExit
	s.ScoreLimit = 9

	data, err := MarshalSettings(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), "collision: point")

	back, err := UnmarshalSettings(data)
	require.NoError(t, err)
	assert.Equal(t, s, back)

	_, err = UnmarshalSettings([]byte("board_width: 0\n"))
	require.ErrorIs(t, err, pong.ErrInvalidSettings)
}
