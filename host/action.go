package host

// An Action is a logical input the host understands, independent of the
// physical key it is bound to.
type Action uint8

const (
	ActionNone Action = iota
	ActionConfirm
	ActionAbort
	ActionPass
	ActionCharSheet
	ActionHelp
	ActionTab
	ActionInteract
	ActionReroll
	ActionAutopickup
	ActionThreat
	ActionNextTarget
	ActionPrevTarget

	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionUpLeft
	ActionUpRight
	ActionDownLeft
	ActionDownRight
)

var actionNames = map[Action]string{
	ActionNone:       "none",
	ActionConfirm:    "confirm",
	ActionAbort:      "abort",
	ActionPass:       "pass",
	ActionCharSheet:  "charsheet",
	ActionHelp:       "help",
	ActionTab:        "tab",
	ActionInteract:   "interact",
	ActionReroll:     "reroll",
	ActionAutopickup: "autopickup",
	ActionThreat:     "threat",
	ActionNextTarget: "next-target",
	ActionPrevTarget: "prev-target",
	ActionUp:         "up",
	ActionDown:       "down",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionUpLeft:     "up-left",
	ActionUpRight:    "up-right",
	ActionDownLeft:   "down-left",
	ActionDownRight:  "down-right",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// DirectionAction converts a digital direction offset to the matching
// directional Action. Returns ActionNone for neutral or out-of-range
// offsets.
func DirectionAction(dx, dy int) Action {
	switch [2]int{dx, dy} {
	case [2]int{0, -1}:
		return ActionUp
	case [2]int{0, 1}:
		return ActionDown
	case [2]int{-1, 0}:
		return ActionLeft
	case [2]int{1, 0}:
		return ActionRight
	case [2]int{-1, -1}:
		return ActionUpLeft
	case [2]int{1, -1}:
		return ActionUpRight
	case [2]int{-1, 1}:
		return ActionDownLeft
	case [2]int{1, 1}:
		return ActionDownRight
	}
	return ActionNone
}
