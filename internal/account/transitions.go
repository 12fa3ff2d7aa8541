package account

import (
	"github.com/ytget/todolist/internal/model"
)

// Transition maps a navigation event to the view it activates
type Transition struct {
	Event  model.Event
	Target model.ViewID
}

// navigationTable lists every unconditional view switch. Submit events are
// absent: they depend on field values and go through the Submit methods.
var navigationTable = []Transition{
	{Event: model.EventLoginClicked, Target: model.ViewLogin},
	{Event: model.EventSignUpClicked, Target: model.ViewSignUp},
	{Event: model.EventCloseClicked, Target: model.ViewLanding},
	{Event: model.EventPopupConfirmed, Target: model.ViewLogin},
}

func buildTransitions(table []Transition) map[model.Event]model.ViewID {
	m := make(map[model.Event]model.ViewID, len(table))
	for _, tr := range table {
		m[tr.Event] = tr.Target
	}
	return m
}
