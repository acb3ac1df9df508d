package core

// KeyAction maps a key name to an action. Names follow the Bubble Tea
// convention ("up", "enter", "esc", "ctrl+c", or the typed character),
// so every frontend shares one layout.
func KeyAction(name string) Action {
	switch name {
	case "ctrl+c", "q", "Q":
		return ActionQuit
	case "up", "w", "W", "k":
		return ActionUp
	case "down", "s", "S", "j":
		return ActionDown
	case "left", "a", "A", "h":
		return ActionLeft
	case "right", "d", "D", "l":
		return ActionRight
	case "enter":
		return ActionConfirm
	case "b", "esc":
		return ActionBack
	case "p", "P", " ":
		return ActionPause
	case "r", "R":
		return ActionRestart
	}
	return ActionNone
}
