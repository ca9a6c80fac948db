// Package rulesets registers the built-in Pong rulesets.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/tui-pong/internal/rulesets"
package rulesets

import (
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// DefaultID is the ruleset used when none is named.
const DefaultID = "classic"

// TournamentLimit is the tournament score limit when the config sets none.
const TournamentLimit = 7

// policyRuleset overrides the four policies and optionally the score limit.
type policyRuleset struct {
	id, title, summary string

	collision pong.CollisionPolicy
	rebound   pong.ReboundPolicy
	wall      pong.WallPolicy

	// limit forces the score limit: 0 means unlimited, negative keeps the
	// configured value, falling back to fallbackLimit if that is 0.
	limit         int
	fallbackLimit int
}

func (r policyRuleset) ID() string      { return r.id }
func (r policyRuleset) Title() string   { return r.title }
func (r policyRuleset) Summary() string { return r.summary }

func (r policyRuleset) Apply(base pong.Settings) pong.Settings {
	base.Collision = r.collision
	base.Rebound = r.rebound
	base.Wall = r.wall

	switch {
	case r.limit >= 0:
		base.ScoreLimit = r.limit
	case base.ScoreLimit == 0:
		base.ScoreLimit = r.fallbackLimit
	}
	return base
}

// custom applies nothing: the loaded configuration is played as-is.
type custom struct{}

func (custom) ID() string                             { return "custom" }
func (custom) Title() string                          { return "Custom" }
func (custom) Summary() string                        { return "Policies and limits straight from the config file" }
func (custom) Apply(base pong.Settings) pong.Settings { return base }

func init() {
	registry.Register("classic", func() registry.Ruleset {
		return policyRuleset{
			id:        "classic",
			title:     "Classic",
			summary:   "Point collision, flat rebounds, endless play",
			collision: pong.CollisionPoint,
			rebound:   pong.ReboundFlip,
			wall:      pong.WallReflect,
			limit:     0,
		}
	})
	registry.Register("swept", func() registry.Ruleset {
		return policyRuleset{
			id:        "swept",
			title:     "Swept",
			summary:   "Swept collision, angled rebounds that speed up, endless play",
			collision: pong.CollisionSwept,
			rebound:   pong.ReboundShaped,
			wall:      pong.WallClamp,
			limit:     0,
		}
	})
	registry.Register("tournament", func() registry.Ruleset {
		return policyRuleset{
			id:            "tournament",
			title:         "Tournament",
			summary:       "Swept rules, first to the score limit wins",
			collision:     pong.CollisionSwept,
			rebound:       pong.ReboundShaped,
			wall:          pong.WallClamp,
			limit:         -1,
			fallbackLimit: TournamentLimit,
		}
	})
	registry.Register("custom", func() registry.Ruleset { return custom{} })
}

// Resolve creates the named ruleset, or the default one for an empty name,
// and applies it to base.
func Resolve(id string, base pong.Settings) (registry.Ruleset, pong.Settings, error) {
	if id == "" {
		id = DefaultID
	}
	r, err := registry.Create(id)
	if err != nil {
		return nil, pong.Settings{}, err
	}
	return r, r.Apply(base), nil
}
