package replay

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// ErrCorrupt is returned when an encoded journal cannot be decoded.
var ErrCorrupt = errors.New("replay: corrupt journal")

const formatVersion = 1

// Run is Count consecutive ticks with the same frame.
type Run struct {
	Frame Frame  `msgpack:"f"`
	Count uint32 `msgpack:"n"`
}

type journal struct {
	Version int   `msgpack:"v"`
	Runs    []Run `msgpack:"r"`
}

// Recorder collects frames as the engine consumes them.
type Recorder struct {
	runs  []Run
	ticks uint64
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one tick.
func (r *Recorder) Record(f Frame) {
	r.ticks++
	if n := len(r.runs); n > 0 && r.runs[n-1].Frame == f && r.runs[n-1].Count < ^uint32(0) {
		r.runs[n-1].Count++
		return
	}
	r.runs = append(r.runs, Run{Frame: f, Count: 1})
}

// Ticks returns the number of recorded ticks.
func (r *Recorder) Ticks() uint64 {
	return r.ticks
}

// Runs returns a copy of the recorded runs.
func (r *Recorder) Runs() []Run {
	return append([]Run(nil), r.runs...)
}

// Encode serializes the recorded frames.
func (r *Recorder) Encode() ([]byte, error) {
	return Encode(r.runs)
}

// Encode serializes runs with msgpack.
func Encode(runs []Run) ([]byte, error) {
	data, err := msgpack.Marshal(journal{Version: formatVersion, Runs: runs})
	if err != nil {
		return nil, fmt.Errorf("replay: encode: %w", err)
	}
	return data, nil
}

// Decode parses runs produced by Encode.
func Decode(data []byte) ([]Run, error) {
	var j journal
	if err := msgpack.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if j.Version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, j.Version)
	}
	for i, run := range j.Runs {
		if run.Count == 0 || run.Frame&^frameMask != 0 {
			return nil, fmt.Errorf("%w: bad run %d (%+v)", ErrCorrupt, i, run)
		}
	}
	return j.Runs, nil
}

// CountTicks returns the number of ticks covered by runs.
func CountTicks(runs []Run) uint64 {
	var n uint64
	for _, run := range runs {
		n += uint64(run.Count)
	}
	return n
}

// MarshalSettings encodes settings as YAML for storage next to a journal.
func MarshalSettings(s pong.Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

// UnmarshalSettings decodes and validates settings stored by MarshalSettings.
func UnmarshalSettings(data []byte) (pong.Settings, error) {
	var s pong.Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return pong.Settings{}, fmt.Errorf("replay: settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return pong.Settings{}, err
	}
	return s, nil
}
