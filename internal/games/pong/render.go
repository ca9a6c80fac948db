package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '╌'
)

// Minimum playfield size in cells (inside the border).
const (
	minFieldW = 12
	minFieldH = 6
)

// Render draws a snapshot into dst: a score header on the first row and the
// arena, scaled to fit, inside a border below it.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	fieldW := dst.Width() - 2
	fieldH := dst.Height() - 3
	if fieldW < minFieldW || fieldH < minFieldH || snap.BoardWidth <= 0 || snap.BoardHeight <= 0 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	drawHeader(dst, snap)

	frame := core.NewRect(0, 1, fieldW+2, fieldH+2)
	dst.DrawBox(frame, core.ColorGray)

	// Arena pixels to field cells.
	col := func(x float64) int {
		return core.Clamp(int(x/snap.BoardWidth*float64(fieldW)), 0, fieldW-1)
	}
	row := func(y float64) int {
		return core.Clamp(int(y/snap.BoardHeight*float64(fieldH)), 0, fieldH-1)
	}
	set := func(c, r int, ch rune, color core.Color) {
		dst.SetColor(frame.X+1+c, frame.Y+1+r, ch, color)
	}

	// Net
	for c := 0; c < fieldW; c += 2 {
		set(c, fieldH/2, NetChar, core.ColorGray)
	}

	drawPaddle := func(p core.Box, color core.Color) {
		r := row(p.Y + p.H/2)
		first, last := col(p.X), col(p.Right()-1)
		for c := first; c <= last; c++ {
			set(c, r, PaddleChar, color)
		}
	}
	drawPaddle(snap.TopPaddle, core.ColorCyan)
	drawPaddle(snap.BottomPaddle, core.ColorBrightMagenta)

	set(col(snap.Ball.CenterX()), row(snap.Ball.Y+snap.Ball.H/2), BallChar, core.ColorYellow)

	switch {
	case snap.Status.Over():
		drawCenteredMessage(dst,
			fmt.Sprintf("%s WINS!", upper(snap.Status.Winner)),
			fmt.Sprintf("%d - %d  |  Press R for a new match", snap.Scores.Top, snap.Scores.Bottom))
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawHeader writes the score line: top score left, bottom score right,
// round info in the middle.
func drawHeader(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("TOP %d", snap.Scores.Top), core.ColorCyan)

	bottom := fmt.Sprintf("BOTTOM %d", snap.Scores.Bottom)
	dst.DrawTextColor(dst.Width()-len(bottom)-1, 0, bottom, core.ColorBrightMagenta)

	info := fmt.Sprintf("round %d  rally %d", snap.Round, snap.Rally)
	if snap.ScoreLimit > 0 {
		info = fmt.Sprintf("first to %d  |  %s", snap.ScoreLimit, info)
	}
	dst.DrawTextCentered(0, info, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightCyan)
	dst.DrawTextColor(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorDefault)
}

func upper(s Side) string {
	switch s {
	case SideTop:
		return "TOP"
	case SideBottom:
		return "BOTTOM"
	default:
		return "NOBODY"
	}
}
