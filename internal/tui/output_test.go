package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name       string
		forceColor bool
		noColor    bool
		plain      bool
		tty        bool
		env        map[string]string
		want       OutputMode
	}{
		{name: "terminal", tty: true, want: OutputModeInteractive},
		{name: "pipe", tty: false, want: OutputModePlain},
		{name: "plain flag", plain: true, tty: true, want: OutputModePlain},
		{name: "no-color flag", noColor: true, tty: true, want: OutputModePlain},
		{name: "NO_COLOR env", tty: true, env: map[string]string{"NO_COLOR": ""}, want: OutputModePlain},
		{name: "force color on pipe", forceColor: true, want: OutputModeStyled},
		{name: "dumb terminal", tty: true, env: map[string]string{"TERM": "dumb"}, want: OutputModePlain},
		{name: "CI terminal", tty: true, env: map[string]string{"CI": "true"}, want: OutputModeStyled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectOutputMode(tt.forceColor, tt.noColor, tt.plain, tt.tty, envOf(tt.env))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputModeString(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "7", FormatCount(7))
	assert.Equal(t, "1,024", FormatCount(1024))
	assert.Equal(t, "1 employee", Plural(1, "employee"))
	assert.Equal(t, "2,000 employees", Plural(2000, "employee"))
	assert.Equal(t, "0 employees", Plural(0, "employee"))
}

func TestTerminalWidthFallback(t *testing.T) {
	assert.Positive(t, TerminalWidth())
}
