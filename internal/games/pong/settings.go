package pong

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is wrapped by every error returned from Settings.Validate.
var ErrInvalidSettings = errors.New("pong: invalid settings")

// CollisionPolicy selects how ball/paddle contact is detected.
type CollisionPolicy int

const (
	// CollisionSwept tests whether the paddle face lies between the ball's
	// previous and current leading edge, so fast balls cannot tunnel.
	CollisionSwept CollisionPolicy = iota
	// CollisionPoint tests only the ball's position after integration.
	CollisionPoint
)

// ReboundPolicy selects how velocity changes on a paddle hit.
type ReboundPolicy int

const (
	// ReboundShaped adds spin from the hit offset and speeds the rally up.
	ReboundShaped ReboundPolicy = iota
	// ReboundFlip only reverses vertical velocity.
	ReboundFlip
)

// WallPolicy selects how side walls are resolved.
type WallPolicy int

const (
	// WallClamp pins the ball to the wall before reflecting.
	WallClamp WallPolicy = iota
	// WallReflect reflects and leaves the ball where integration put it.
	WallReflect
)

// MissPolicy selects when a ball past a paddle counts as a miss.
type MissPolicy int

const (
	// MissOnContact scores as soon as the ball touches the goal line
	// (y < 0 at the top, y+size > height at the bottom).
	MissOnContact MissPolicy = iota
	// MissOnExit scores once the ball has fully crossed the goal line.
	MissOnExit
)

var (
	collisionNames = []string{"swept", "point"}
	reboundNames   = []string{"shaped", "flip"}
	wallNames      = []string{"clamp", "reflect"}
	missNames      = []string{"contact", "exit"}
)

func policyName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("unknown(%d)", v)
	}
	return names[v]
}

func parsePolicy(kind string, names []string, text []byte) (int, error) {
	for i, n := range names {
		if string(text) == n {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s policy %q (want one of %v)", ErrInvalidSettings, kind, text, names)
}

func (p CollisionPolicy) String() string { return policyName(collisionNames, int(p)) }
func (p ReboundPolicy) String() string   { return policyName(reboundNames, int(p)) }
func (p WallPolicy) String() string      { return policyName(wallNames, int(p)) }
func (p MissPolicy) String() string      { return policyName(missNames, int(p)) }

// MarshalText implements encoding.TextMarshaler.
func (p CollisionPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *CollisionPolicy) UnmarshalText(text []byte) error {
	v, err := parsePolicy("collision", collisionNames, text)
	*p = CollisionPolicy(v)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (p ReboundPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ReboundPolicy) UnmarshalText(text []byte) error {
	v, err := parsePolicy("rebound", reboundNames, text)
	*p = ReboundPolicy(v)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (p WallPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *WallPolicy) UnmarshalText(text []byte) error {
	v, err := parsePolicy("wall", wallNames, text)
	*p = WallPolicy(v)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (p MissPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *MissPolicy) UnmarshalText(text []byte) error {
	v, err := parsePolicy("miss", missNames, text)
	*p = MissPolicy(v)
	return err
}

// Settings holds the fixed arena geometry, gameplay constants and policy
// selection for a match. All lengths are arena pixels, speeds are pixels per tick.
type Settings struct {
	BoardWidth   float64 `yaml:"board_width"`
	BoardHeight  float64 `yaml:"board_height"`
	PaddleWidth  float64 `yaml:"paddle_width"`
	PaddleHeight float64 `yaml:"paddle_height"`
	BallSize     float64 `yaml:"ball_size"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	BallSpeed    float64 `yaml:"ball_speed"`
	ScoreLimit   int     `yaml:"score_limit"` // 0 = unlimited

	// PaddleInset is the gap between a goal line and the back of its paddle.
	PaddleInset float64 `yaml:"paddle_inset"`
	// SnapMargin is how far past the paddle face the ball is placed after a hit.
	SnapMargin float64 `yaml:"snap_margin"`

	AngleGain   float64 `yaml:"angle_gain"`    // vx added per unit of hit offset
	SpeedUp     float64 `yaml:"speed_up"`      // |vy| multiplier per hit
	MaxVXFactor float64 `yaml:"max_vx_factor"` // |vx| cap as a multiple of BallSpeed
	MaxVYFactor float64 `yaml:"max_vy_factor"` // |vy| cap as a multiple of BallSpeed, 0 = uncapped

	Collision CollisionPolicy `yaml:"collision"`
	Rebound   ReboundPolicy   `yaml:"rebound"`
	Wall      WallPolicy      `yaml:"wall"`
	Miss      MissPolicy      `yaml:"miss"`
}

// DefaultSettings returns the classic 400x600 arena with the recommended
// swept/shaped/clamp policies and no score limit.
func DefaultSettings() Settings {
	return Settings{
		BoardWidth:   400,
		BoardHeight:  600,
		PaddleWidth:  80,
		PaddleHeight: 12,
		BallSize:     12,
		PaddleSpeed:  6,
		BallSpeed:    4,
		ScoreLimit:   0,
		PaddleInset:  8,
		SnapMargin:   2,
		AngleGain:    2,
		SpeedUp:      1.05,
		MaxVXFactor:  1.5,
		MaxVYFactor:  3,
		Collision:    CollisionSwept,
		Rebound:      ReboundShaped,
		Wall:         WallClamp,
		Miss:         MissOnContact,
	}
}

// MaxVX returns the horizontal speed cap applied after a shaped rebound.
func (s Settings) MaxVX() float64 {
	return s.MaxVXFactor * s.BallSpeed
}

// MaxVY returns the vertical speed cap, or 0 when vertical growth is uncapped.
func (s Settings) MaxVY() float64 {
	return s.MaxVYFactor * s.BallSpeed
}

// Validate checks the settings and reports every violated constraint.
// The returned error wraps ErrInvalidSettings.
func (s Settings) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSettings}, args...)...))
	}

	if s.BoardWidth <= 0 || s.BoardHeight <= 0 {
		bad("board must be positive, got %gx%g", s.BoardWidth, s.BoardHeight)
	}
	if s.PaddleWidth <= 0 || s.PaddleHeight <= 0 {
		bad("paddle must be positive, got %gx%g", s.PaddleWidth, s.PaddleHeight)
	}
	if s.PaddleWidth > s.BoardWidth {
		bad("paddle width %g exceeds board width %g", s.PaddleWidth, s.BoardWidth)
	}
	if s.BallSize <= 0 {
		bad("ball size must be positive, got %g", s.BallSize)
	}
	if s.BallSize > s.BoardWidth || s.BallSize > s.BoardHeight {
		bad("ball size %g does not fit the board", s.BallSize)
	}
	if s.PaddleSpeed < 0 {
		bad("paddle speed must not be negative, got %g", s.PaddleSpeed)
	}
	if s.BallSpeed <= 0 {
		bad("ball speed must be positive, got %g", s.BallSpeed)
	}
	if s.ScoreLimit < 0 {
		bad("score limit must not be negative, got %d", s.ScoreLimit)
	}
	if s.PaddleInset < 0 || s.SnapMargin < 0 {
		bad("paddle inset and snap margin must not be negative")
	}
	// Both paddle faces plus a resting ball must fit between the goal lines.
	if 2*(s.PaddleInset+s.PaddleHeight+s.SnapMargin)+s.BallSize >= s.BoardHeight {
		bad("paddle bands overlap on a board of height %g", s.BoardHeight)
	}
	if s.Rebound == ReboundShaped {
		if s.AngleGain < 0 {
			bad("angle gain must not be negative, got %g", s.AngleGain)
		}
		if s.SpeedUp < 1 {
			bad("speed up must be at least 1, got %g", s.SpeedUp)
		}
		if s.MaxVXFactor < 1 {
			bad("max vx factor must be at least 1, got %g", s.MaxVXFactor)
		}
		if s.MaxVYFactor != 0 && s.MaxVYFactor < 1 {
			bad("max vy factor must be 0 or at least 1, got %g", s.MaxVYFactor)
		}
	}
	if s.Collision < CollisionSwept || s.Collision > CollisionPoint {
		bad("unknown collision policy %d", s.Collision)
	}
	if s.Rebound < ReboundShaped || s.Rebound > ReboundFlip {
		bad("unknown rebound policy %d", s.Rebound)
	}
	if s.Wall < WallClamp || s.Wall > WallReflect {
		bad("unknown wall policy %d", s.Wall)
	}
	if s.Miss < MissOnContact || s.Miss > MissOnExit {
		bad("unknown miss policy %d", s.Miss)
	}

	return errors.Join(errs...)
}
