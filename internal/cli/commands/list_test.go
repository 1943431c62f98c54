package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapprep/internal/cli/config"
	clitest "github.com/leapstack-labs/leapprep/internal/cli/testutil"
	"github.com/leapstack-labs/leapprep/internal/registry"
)

func TestNewListCommand(t *testing.T) {
	cmd := NewListCommand(registry.Default)

	assert.Equal(t, "list", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestDescribe(t *testing.T) {
	infos := Describe(registry.Default)
	require.Len(t, infos, registry.Default.Count())

	byPath := make(map[string]OperationInfo, len(infos))
	for _, info := range infos {
		byPath[info.Group+" "+info.Name] = info
	}

	clip, ok := byPath["numeric clip"]
	require.True(t, ok)
	assert.Equal(t, "VALUES", clip.Input)
	require.Len(t, clip.Params, 2)
	assert.Equal(t, ParamInfo{Name: "min-value", Type: "float", Required: true}, clip.Params[0])

	normalize := byPath["numeric normalize"]
	assert.Equal(t, "0.0", normalize.Params[0].Default)

	punct := byPath["text remove-punctuation"]
	assert.Equal(t, []string{"strip-non-alphanumeric"}, punct.Aliases)
	assert.Equal(t, "TEXT", punct.Input)
}

func TestListTable(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, NewListCommand(registry.Default))
	require.NoError(t, err)

	clitest.AssertNoANSI(t, stdout)
	clitest.AssertContains(t, stdout, "OPERATION")
	clitest.AssertContains(t, stdout, "remove-duplicates VALUES")
	clitest.AssertContains(t, stdout, "--min-value (required)")
	clitest.AssertContains(t, stdout, "--new-min=0.0")
	clitest.AssertContains(t, stdout, "strip-non-alphanumeric")
}

func TestListStructured(t *testing.T) {
	dir := isolate(t)

	clitest.WriteConfig(t, dir, "output: json\n")
	_, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	stdout, _, err := execute(t, NewListCommand(registry.Default))
	require.NoError(t, err)

	var got struct {
		Operations []OperationInfo `json:"operations"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Len(t, got.Operations, registry.Default.Count())

	clitest.WriteConfig(t, dir, "output: yaml\n")
	_, err = config.LoadConfig("", nil)
	require.NoError(t, err)

	stdout, _, err = execute(t, NewListCommand(registry.Default))
	require.NoError(t, err)

	var fromYAML struct {
		Operations []OperationInfo `yaml:"operations"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &fromYAML))
	assert.Equal(t, got.Operations, fromYAML.Operations)
}
