package translate

import "testing"

const (
	testMain = "opencode/claude-sonnet-4-5"
	testFast = "opencode/claude-haiku-4-5"
)

func TestModel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"target qualified passes through", "opencode/grok-code", "opencode/grok-code"},
		{"target qualified case insensitive", "OpenCode/Grok-Code", "OpenCode/Grok-Code"},
		{"source qualified maps to main", "anthropic/claude-opus-4", testMain},
		{"family marker maps to main", "claude-3-5-sonnet-latest", testMain},
		{"family marker mid string", "us.claude.v2", testMain},
		{"high tier shorthand", "opus", testMain},
		{"mid tier shorthand", "sonnet", testMain},
		{"low tier shorthand", "haiku", testFast},
		{"shorthand case insensitive", "Haiku", testFast},
		{"other namespace passes through", "openai/gpt-4o", "openai/gpt-4o"},
		{"unrecognized falls back to main", "mystery-model", testMain},
		{"empty falls back to main", "", testMain},
		{"whitespace trimmed", "  opus  ", testMain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Model(tt.input, testMain, testFast); got != tt.want {
				t.Errorf("Model(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Model must be total: every input yields some output.
func TestModelNeverEmpty(t *testing.T) {
	inputs := []string{"", " ", "/", "//", "claude", "opencode/", "anthropic/", "x/y/z", "\t"}
	for _, in := range inputs {
		if got := Model(in, testMain, testFast); got == "" && in != "" {
			t.Errorf("Model(%q) = empty string", in)
		}
	}
}
