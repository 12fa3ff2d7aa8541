package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubmitKind tells which form produced a SessionDraft
type SubmitKind string

const (
	SubmitLogin  SubmitKind = "login"
	SubmitSignUp SubmitKind = "signup"
)

// SessionDraft is the in-memory record of the most recent form submission.
// It is never persisted.
type SessionDraft struct {
	ID          string     // per-submit id, used to correlate log lines
	Kind        SubmitKind // form that was submitted last
	Email       string
	Username    string // only written by sign up
	Password    string
	SubmittedAt time.Time
}

// IsZero returns true if nothing has been submitted yet
func (d SessionDraft) IsZero() bool {
	return d.ID == ""
}

// Redacted returns a copy with the password replaced by a fixed-width mask
func (d SessionDraft) Redacted() SessionDraft {
	if d.Password != "" {
		d.Password = strings.Repeat("*", 8)
	}
	return d
}

// ApplyLogin overwrites email and password. Username is left as it was.
func (d *SessionDraft) ApplyLogin(email, password string) {
	d.stamp(SubmitLogin)
	d.Email = email
	d.Password = password
}

// ApplySignUp overwrites every credential field
func (d *SessionDraft) ApplySignUp(email, username, password string) {
	d.stamp(SubmitSignUp)
	d.Email = email
	d.Username = username
	d.Password = password
}

func (d *SessionDraft) stamp(kind SubmitKind) {
	d.Kind = kind
	d.SubmittedAt = time.Now()
	d.ID = newDraftID()
}

func newDraftID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// V7 only fails when the random source does
		return uuid.NewString()
	}
	return id.String()
}
