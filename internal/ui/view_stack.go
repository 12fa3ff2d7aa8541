package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/todolist/internal/model"
)

// ErrUnknownView is returned by ViewStack.Show for unregistered ids
var ErrUnknownView = errors.New("unknown view")

// ViewStack keeps one registered view visible at a time, like a card deck
type ViewStack struct {
	stack  *fyne.Container
	views  map[model.ViewID]fyne.CanvasObject
	active model.ViewID
}

// NewViewStack creates an empty view stack
func NewViewStack() *ViewStack {
	return &ViewStack{
		stack: container.NewStack(),
		views: make(map[model.ViewID]fyne.CanvasObject),
	}
}

// Register adds view under id, hidden unless id is already active
func (s *ViewStack) Register(id model.ViewID, view fyne.CanvasObject) error {
	if !id.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownView, id)
	}

	if old, exists := s.views[id]; exists {
		s.stack.Remove(old)
	}
	s.views[id] = view
	if id == s.active {
		view.Show()
	} else {
		view.Hide()
	}
	s.stack.Add(view)
	return nil
}

// Show makes the view registered under id the only visible one.
// Showing the active view again changes nothing.
func (s *ViewStack) Show(id model.ViewID) error {
	target, ok := s.views[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownView, id)
	}

	for other, view := range s.views {
		if other != id {
			view.Hide()
		}
	}
	target.Show()
	s.active = id
	s.stack.Refresh()
	return nil
}

// Active returns the id of the visible view
func (s *ViewStack) Active() model.ViewID {
	return s.active
}

// VisibleViews returns the ids whose view is currently visible
func (s *ViewStack) VisibleViews() []model.ViewID {
	var visible []model.ViewID
	for _, id := range model.AllViews() {
		if view, ok := s.views[id]; ok && view.Visible() {
			visible = append(visible, id)
		}
	}
	return visible
}

// Container returns the stack container
func (s *ViewStack) Container() fyne.CanvasObject {
	return s.stack
}
