// ABOUTME: Process-level state machine for the editor session.
// ABOUTME: Init and RawModeActive happen once; Render and Input alternate until Terminating.

package editor

// State is the editor's position in its process lifecycle.
type State int

const (
	StateInit State = iota
	StateRawModeActive
	StateRender
	StateInput
	StateTerminating
	StateRestoredExit
)

var stateNames = map[State]string{
	StateInit:          "init",
	StateRawModeActive: "raw-mode-active",
	StateRender:        "render",
	StateInput:         "input",
	StateTerminating:   "terminating",
	StateRestoredExit:  "restored-exit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
