package model

import "testing"

func TestViewID_IsValid(t *testing.T) {
	tests := []struct {
		view     ViewID
		expected bool
	}{
		{ViewLanding, true},
		{ViewLogin, true},
		{ViewSignUp, true},
		{ViewID(""), false},
		{ViewID("popup"), false},
		{ViewID("Login"), false},
	}

	for _, test := range tests {
		result := test.view.IsValid()
		if result != test.expected {
			t.Errorf("ViewID(%q).IsValid() = %v, expected %v", test.view, result, test.expected)
		}
	}
}

func TestAllViews(t *testing.T) {
	views := AllViews()
	expected := []ViewID{ViewLanding, ViewLogin, ViewSignUp}

	if len(views) != len(expected) {
		t.Fatalf("Expected %d views, got %d", len(expected), len(views))
	}
	for i, v := range expected {
		if views[i] != v {
			t.Errorf("AllViews()[%d] = %s, expected %s", i, views[i], v)
		}
	}
}

func TestEvent_IsSubmit(t *testing.T) {
	tests := []struct {
		event    Event
		expected bool
	}{
		{EventLoginClicked, false},
		{EventSignUpClicked, false},
		{EventCloseClicked, false},
		{EventLoginSubmitted, true},
		{EventSignUpSubmitted, true},
		{EventPopupConfirmed, false},
	}

	for _, test := range tests {
		if result := test.event.IsSubmit(); result != test.expected {
			t.Errorf("Event(%s).IsSubmit() = %v, expected %v", test.event, result, test.expected)
		}
	}
}
