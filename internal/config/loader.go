package config

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "leapprep.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "leapprep.yml"

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// FindConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// FindConfigUpward walks up from startDir looking for a config file and
// returns the first one found. Returns empty string if none exists within
// maxUpwardSearchLevels.
func FindConfigUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if path := FindConfigFile(dir); path != "" {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
	return ""
}
