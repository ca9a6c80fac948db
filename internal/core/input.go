package core

// Action represents a semantic control, abstracted from physical key presses.
// Key bindings resolve to actions; the platform turns paddle actions into
// held intents and the rest into commands.
type Action int

const (
	ActionNone        Action = iota
	ActionTopLeft            // Top paddle left
	ActionTopRight           // Top paddle right
	ActionBottomLeft         // Bottom paddle left
	ActionBottomRight        // Bottom paddle right
	ActionReset              // Fresh match, scores zeroed
	ActionPause              // Pause/unpause the simulation
	ActionHelp               // Toggle the full key help
	ActionBack               // Leave the match (back to menu)
	ActionQuit               // Exit the program/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTopLeft:
		return "TopLeft"
	case ActionTopRight:
		return "TopRight"
	case ActionBottomLeft:
		return "BottomLeft"
	case ActionBottomRight:
		return "BottomRight"
	case ActionReset:
		return "Reset"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsPaddle reports whether the action steers a paddle.
func (a Action) IsPaddle() bool {
	return a >= ActionTopLeft && a <= ActionBottomRight
}
