package game

// Action is one of the discrete moves an agent can make on its turn.
type Action int

const (
	Stop Action = iota
	North
	South
	East
	West
)

// Directions in the order the engine enumerates legal actions. Stop is appended last.
var Directions = []Action{North, South, East, West}

var actionNames = map[Action]string{
	Stop:  "Stop",
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Reverse returns the opposite direction. Stop has no reverse.
func (a Action) Reverse() (Action, bool) {
	switch a {
	case North:
		return South, true
	case South:
		return North, true
	case East:
		return West, true
	case West:
		return East, true
	}
	return Stop, false
}

// Vector is the unit displacement of the action.
func (a Action) Vector() Vector {
	switch a {
	case North:
		return Vector{X: 0, Y: 1}
	case South:
		return Vector{X: 0, Y: -1}
	case East:
		return Vector{X: 1, Y: 0}
	case West:
		return Vector{X: -1, Y: 0}
	}
	return Vector{}
}
