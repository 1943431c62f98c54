package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantOut []string
	}{
		{
			name:    "default version",
			version: "0.1.0",
			wantOut: []string{"LeapPrep v0.1.0", "preprocessing"},
		},
		{
			name:    "custom version",
			version: "1.2.3",
			wantOut: []string{"LeapPrep v1.2.3"},
		},
		{
			name:    "dev version",
			version: "dev",
			wantOut: []string{"LeapPrep vdev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewVersionCommand(tt.version)
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs([]string{})

			require.NoError(t, cmd.Execute())

			for _, want := range tt.wantOut {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test")

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
}
