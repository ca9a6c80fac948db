package rulesets

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "swept", "tournament", "custom"} {
		if !registry.Exists(id) {
			t.Errorf("ruleset %q not registered", id)
		}
	}
}

func TestApply(t *testing.T) {
	base := pong.DefaultSettings()

	tests := []struct {
		id        string
		limit     int
		collision pong.CollisionPolicy
		rebound   pong.ReboundPolicy
		wall      pong.WallPolicy
	}{
		{"classic", 0, pong.CollisionPoint, pong.ReboundFlip, pong.WallReflect},
		{"swept", 0, pong.CollisionSwept, pong.ReboundShaped, pong.WallClamp},
		{"tournament", TournamentLimit, pong.CollisionSwept, pong.ReboundShaped, pong.WallClamp},
		{"custom", 0, base.Collision, base.Rebound, base.Wall},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			_, s, err := Resolve(tc.id, base)
			if err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			if s.ScoreLimit != tc.limit {
				t.Errorf("ScoreLimit = %d, expected %d", s.ScoreLimit, tc.limit)
			}
			if s.Collision != tc.collision || s.Rebound != tc.rebound || s.Wall != tc.wall {
				t.Errorf("policies = %v/%v/%v, expected %v/%v/%v",
					s.Collision, s.Rebound, s.Wall, tc.collision, tc.rebound, tc.wall)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("ruleset produced invalid settings: %v", err)
			}
		})
	}
}

func TestTournamentKeepsConfiguredLimit(t *testing.T) {
	base := pong.DefaultSettings()
	base.ScoreLimit = 11

	_, s, err := Resolve("tournament", base)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if s.ScoreLimit != 11 {
		t.Errorf("ScoreLimit = %d, expected 11", s.ScoreLimit)
	}

	// Endless rulesets clear it.
	_, s, _ = Resolve("classic", base)
	if s.ScoreLimit != 0 {
		t.Errorf("classic ScoreLimit = %d, expected 0", s.ScoreLimit)
	}
}

func TestResolveDefaultAndUnknown(t *testing.T) {
	r, _, err := Resolve("", pong.DefaultSettings())
	if err != nil || r.ID() != DefaultID {
		t.Errorf("Resolve(\"\") = %v, %v; expected %s", r, err, DefaultID)
	}
	if _, _, err := Resolve("bogus", pong.DefaultSettings()); err == nil {
		t.Error("Resolve() of unknown ruleset should fail")
	}
}

func TestMissPolicyPreserved(t *testing.T) {
	base := pong.DefaultSettings()
	base.Miss = pong.MissOnExit
	for _, info := range registry.List() {
		_, s, err := Resolve(info.ID, base)
		if err != nil {
			t.Fatalf("Resolve(%s) failed: %v", info.ID, err)
		}
		if s.Miss != pong.MissOnExit {
			t.Errorf("%s changed miss policy to %v", info.ID, s.Miss)
		}
	}
}
