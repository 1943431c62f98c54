// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapprep/internal/cli/output"
)

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererAuto creates a test renderer in auto mode without a TTY.
func NewTestRendererAuto() *TestRenderer {
	return NewTestRenderer(output.ModeAuto, false)
}

// NewTestRendererText creates a new test renderer in text mode (simulated TTY).
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText, true)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the combined stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes ANSI escape codes from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertContains checks that the string contains the expected substring.
func AssertContains(t *testing.T, s, expected string) {
	t.Helper()
	if !strings.Contains(s, expected) {
		t.Errorf("string %q does not contain expected %q", s, expected)
	}
}

// AssertNotContains checks that the string does not contain the substring.
func AssertNotContains(t *testing.T, s, unexpected string) {
	t.Helper()
	if strings.Contains(s, unexpected) {
		t.Errorf("string %q unexpectedly contains %q", s, unexpected)
	}
}

// AssertOutputMode checks that the renderer output matches expected mode characteristics.
func AssertOutputMode(t *testing.T, tr *TestRenderer, expectedMode output.OutputMode) {
	t.Helper()

	combinedOutput := tr.Output() + tr.ErrorOutput()

	switch expectedMode {
	case output.ModeJSON, output.ModeYAML, output.ModeTable:
		AssertNoANSI(t, combinedOutput)
	case output.ModeAuto:
		if !tr.IsTTY() {
			AssertNoANSI(t, combinedOutput)
		}
	case output.ModeText:
		// Text mode may contain ANSI codes if TTY
	}
}

// WriteConfig writes a leapprep.yaml with the given content into dir and
// returns its path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "leapprep.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
