package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// movePaddles applies held intents to both paddles. For each paddle the left
// intent is applied before the right one, clamping after each, so holding
// both nets out to the right offset being applied last.
func movePaddles(p Paddles, in Input, s Settings) Paddles {
	maxX := s.BoardWidth - s.PaddleWidth

	if in.TopLeft {
		p.Top = core.ClampF(p.Top-s.PaddleSpeed, 0, maxX)
	}
	if in.TopRight {
		p.Top = core.ClampF(p.Top+s.PaddleSpeed, 0, maxX)
	}
	if in.BottomLeft {
		p.Bottom = core.ClampF(p.Bottom-s.PaddleSpeed, 0, maxX)
	}
	if in.BottomRight {
		p.Bottom = core.ClampF(p.Bottom+s.PaddleSpeed, 0, maxX)
	}
	return p
}

// integrate advances the ball one Euler step, remembering where it was.
func integrate(b Ball) Ball {
	b.PrevX, b.PrevY = b.X, b.Y
	b.X += b.VX
	b.Y += b.VY
	return b
}

// bounceWalls resolves the left and right walls. Reports whether a wall was hit.
func bounceWalls(b Ball, s Settings) (Ball, bool) {
	maxX := s.BoardWidth - s.BallSize
	if b.X >= 0 && b.X <= maxX {
		return b, false
	}

	// Reflect points vx back into the arena and leaves the ball where it is.
	// A ball already heading back in, e.g. after a shaped rebound, is not bounced again.
	if s.Wall == WallReflect {
		inward := math.Abs(b.VX)
		if b.X > maxX {
			inward = -inward
		}
		bounced := b.VX != inward
		b.VX = inward
		return b, bounced
	}

	if b.X < 0 {
		b.X = 0
		b.VX = math.Abs(b.VX)
	} else {
		b.X = maxX
		b.VX = -math.Abs(b.VX)
	}
	return b, true
}

// contactTop reports whether the ball hits the top paddle this tick and the
// ball's x at the moment of impact.
func contactTop(b Ball, paddleX float64, s Settings) (float64, bool) {
	if b.VY >= 0 {
		return 0, false
	}
	face := topFace(s)
	// Leading edge is the ball's top.
	return contact(b, face, b.PrevY, b.Y, b.Y < face, paddleX, SideTop, s)
}

// contactBottom reports whether the ball hits the bottom paddle this tick and
// the ball's x at the moment of impact.
func contactBottom(b Ball, paddleX float64, s Settings) (float64, bool) {
	if b.VY <= 0 {
		return 0, false
	}
	face := bottomFace(s)
	// Leading edge is the ball's bottom.
	prevEdge, edge := b.PrevY+s.BallSize, b.Y+s.BallSize
	return contact(b, face, prevEdge, edge, edge > face, paddleX, SideBottom, s)
}

func contact(b Ball, face, prevEdge, edge float64, past bool, paddleX float64, side Side, s Settings) (float64, bool) {
	if !past {
		return 0, false
	}
	paddle := PaddleBox(s, side, paddleX)

	if s.Collision == CollisionPoint {
		return b.X, b.box(s).OverlapsX(paddle)
	}

	// Swept: the face must lie between the previous and current leading edge.
	// A ball that was already past the face last tick has been missed.
	var crossed bool
	if side == SideTop {
		crossed = prevEdge >= face
	} else {
		crossed = prevEdge <= face
	}
	if !crossed {
		return 0, false
	}

	t := (face - prevEdge) / (edge - prevEdge)
	x := b.PrevX + (b.X-b.PrevX)*t
	at := core.NewBox(x, 0, s.BallSize, s.BallSize)
	return x, at.OverlapsX(paddle)
}

// HitOffset is the normalized distance of the ball's center from the paddle's
// center, clamped to [-1, 1]: -1 at the left edge, +1 at the right edge.
func HitOffset(ballX, paddleX float64, s Settings) float64 {
	ballCenter := ballX + s.BallSize/2
	paddleCenter := paddleX + s.PaddleWidth/2
	return core.ClampF((ballCenter-paddleCenter)/(s.PaddleWidth/2), -1, 1)
}

// rebound sends the ball back from a paddle and snaps it just outside the
// paddle face so the next tick cannot register the same hit.
func rebound(b Ball, side Side, impactX, paddleX float64, s Settings) Ball {
	switch s.Rebound {
	case ReboundShaped:
		maxVX := s.MaxVX()
		b.VX = core.ClampF(b.VX+HitOffset(impactX, paddleX, s)*s.AngleGain, -maxVX, maxVX)
		b.VY = -b.VY * s.SpeedUp
		if maxVY := s.MaxVY(); maxVY > 0 {
			b.VY = core.ClampF(b.VY, -maxVY, maxVY)
		}
	default:
		b.VY = -b.VY
	}

	if side == SideTop {
		b.Y = topFace(s) + s.SnapMargin
	} else {
		b.Y = bottomFace(s) - s.SnapMargin - s.BallSize
	}
	return b
}

// conceded returns the side whose goal line the ball has crossed, if any.
func conceded(b Ball, s Settings) Side {
	top, bottom := b.Y, b.Y+s.BallSize
	if s.Miss == MissOnExit {
		top, bottom = b.Y+s.BallSize, b.Y
	}

	switch {
	case top < 0:
		return SideTop
	case bottom > s.BoardHeight:
		return SideBottom
	default:
		return SideNone
	}
}
