package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, FindConfigFile(dir))

	alt := filepath.Join(dir, ConfigFileNameAlt)
	require.NoError(t, os.WriteFile(alt, []byte("output: json\n"), 0o600))
	assert.Equal(t, alt, FindConfigFile(dir))

	primary := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(primary, []byte("output: yaml\n"), 0o600))
	assert.Equal(t, primary, FindConfigFile(dir), ".yaml wins over .yml")
}

func TestFindConfigFileIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ConfigFileName), 0o750))
	assert.Empty(t, FindConfigFile(dir))
}

func TestFindConfigUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	assert.Empty(t, FindConfigUpward(nested))

	cfgPath := filepath.Join(root, "a", ConfigFileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("verbose: true\n"), 0o600))
	assert.Equal(t, cfgPath, FindConfigUpward(nested))
}

func TestParamDefaultsLookup(t *testing.T) {
	d := ParamDefaults{"new_min": 5, "fill_value": nil}

	v, ok := d.Lookup("new-min")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	v, ok = d.Lookup("new_min")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = d.Lookup("fill-value")
	assert.False(t, ok, "null means unset")

	_, ok = d.Lookup("seed")
	assert.False(t, ok)

	var empty ParamDefaults
	_, ok = empty.Lookup("seed")
	assert.False(t, ok)
}

func TestEnumerations(t *testing.T) {
	assert.True(t, IsOutputMode(DefaultOutput))
	assert.True(t, IsOutputMode("table"))
	assert.False(t, IsOutputMode("markdown"))

	assert.True(t, IsLogLevel(DefaultLogLevel))
	assert.False(t, IsLogLevel("trace"))

	assert.True(t, IsLogFormat(DefaultLogFormat))
	assert.True(t, IsLogFormat("json"))
	assert.False(t, IsLogFormat("logfmt"))
}
