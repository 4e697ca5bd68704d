package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		base := errors.New("boom")
		exitErr := NewExitError(base, ExitUser)
		if exitErr.Error() != "boom" {
			t.Errorf("Error() = %q, want %q", exitErr.Error(), "boom")
		}
		if !errors.Is(exitErr, base) {
			t.Error("errors.Is() failed to find wrapped error")
		}
	})

	t.Run("nil error reports code", func(t *testing.T) {
		exitErr := NewExitError(nil, ExitNoProject)
		if exitErr.Error() != "exit code 2" {
			t.Errorf("Error() = %q", exitErr.Error())
		}
	})

	t.Run("errors.As through wrapping", func(t *testing.T) {
		err := fmt.Errorf("context: %w", NewNoProjectError(ErrNoProjectRoot, "add CLAUDE.md"))

		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatal("errors.As() failed")
		}
		if exitErr.Code != ExitNoProject {
			t.Errorf("Code = %d, want %d", exitErr.Code, ExitNoProject)
		}
		if exitErr.Suggestion != "add CLAUDE.md" {
			t.Errorf("Suggestion = %q", exitErr.Suggestion)
		}
		if !errors.Is(err, ErrNoProjectRoot) {
			t.Error("errors.Is() failed to find sentinel")
		}
	})

	t.Run("user error carries suggestion", func(t *testing.T) {
		exitErr := NewUserError(ErrInvalidConfig, "fix it")
		if exitErr.Code != ExitUser || exitErr.Suggestion != "fix it" {
			t.Errorf("NewUserError() = %+v", exitErr)
		}
	})
}
