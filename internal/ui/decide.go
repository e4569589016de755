package ui

import "github.com/seclab/labstatus/internal/model"

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSubmit
	ActionPrompt
)

type Action struct {
	Kind   ActionKind
	Target model.Status
}

const (
	keyFire   = "f"
	keyCoffee = "c"
	keyCustom = "|"
)

// Decide maps a key and the current remote status to what should happen.
//
// While open, f/c/| pick fire, coffee or a custom status and any other key
// closes. From any other known state a plain key opens; f/c/| are ignored.
// Nothing is sent while the status is unknown.
func Decide(key string, current model.Status) Action {
	if current == model.StatusError {
		return Action{Kind: ActionNone}
	}

	if current == model.StatusOpen {
		switch key {
		case keyFire:
			return Action{Kind: ActionSubmit, Target: model.StatusFire}
		case keyCoffee:
			return Action{Kind: ActionSubmit, Target: model.StatusCoffee}
		case keyCustom:
			return Action{Kind: ActionPrompt}
		default:
			return Action{Kind: ActionSubmit, Target: model.StatusClosed}
		}
	}

	switch key {
	case keyFire, keyCoffee, keyCustom:
		return Action{Kind: ActionNone}
	default:
		return Action{Kind: ActionSubmit, Target: model.StatusOpen}
	}
}
