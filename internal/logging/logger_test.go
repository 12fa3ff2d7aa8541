package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ytget/todolist/internal/model"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize(""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Default logger should be a no-op")
	}
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")

	if err := Initialize(""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	core := GetLogger().Core()
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("Warn should be enabled")
	}
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("Info should be disabled at warn level")
	}
}

func TestInitialize_UnknownLevel(t *testing.T) {
	if err := Initialize("verbose"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestLogSubmit_NeverLogsPassword(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	var d model.SessionDraft
	d.ApplySignUp("user@example.com", "alice", "hunter2")
	LogSubmit(l, d, true)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	for key, value := range entries[0].ContextMap() {
		if s, ok := value.(string); ok && s == "hunter2" {
			t.Errorf("Password leaked through field %q", key)
		}
	}
	if entries[0].ContextMap()["username"] != "alice" {
		t.Errorf("Expected username field, got %v", entries[0].ContextMap())
	}
}

func TestLogSubmit_PasswordLengthHidden(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected string
	}{
		{"short", "p", "********"},
		{"long", "correct horse battery staple", "********"},
		{"empty", "", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)

			var d model.SessionDraft
			d.ApplyLogin("user@example.com", test.password)
			LogSubmit(zap.New(core), d, true)

			fields := logs.All()[0].ContextMap()
			if fields["password"] != test.expected {
				t.Errorf("Expected password field %q, got %v", test.expected, fields["password"])
			}
			if _, ok := fields["password_len"]; ok {
				t.Error("Password length must not be logged")
			}
		})
	}
}

func TestLogSubmit_RejectedIsWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	var d model.SessionDraft
	d.ApplyLogin("bad", "p")
	LogSubmit(l, d, false)

	if logs.Len() != 1 || logs.All()[0].Level != zapcore.WarnLevel {
		t.Errorf("Expected a single warn entry, got %v", logs.All())
	}
}
