package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// importsOf returns the imports of every non-test Go file in dir, keyed by file name.
func importsOf(t *testing.T, dir string) map[string][]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	fset := token.NewFileSet()
	out := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			out[entry.Name()] = append(out[entry.Name()], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return out
}

// TestCoreImportsOnly verifies pkg/core only imports the standard library.
// The Golden Rule: pkg/core imports ONLY stdlib.
func TestCoreImportsOnly(t *testing.T) {
	for file, imports := range importsOf(t, ".") {
		for _, importPath := range imports {
			// stdlib paths have no dot in their first element
			if strings.Contains(strings.SplitN(importPath, "/", 2)[0], ".") {
				t.Errorf("%s imports forbidden package: %s", file, importPath)
			}
		}
	}
}

// TestPrepImportsOnly verifies pkg/prep stays a pure library: stdlib,
// pkg/core, golang.org/x/text and gonum only.
func TestPrepImportsOnly(t *testing.T) {
	allowedPrefixes := []string{
		"github.com/leapstack-labs/leapprep/pkg/core",
		"golang.org/x/text/",
		"gonum.org/v1/gonum/",
	}

	for file, imports := range importsOf(t, filepath.Join("..", "prep")) {
		for _, importPath := range imports {
			if !strings.Contains(strings.SplitN(importPath, "/", 2)[0], ".") {
				continue
			}
			allowed := false
			for _, prefix := range allowedPrefixes {
				if strings.HasPrefix(importPath, prefix) {
					allowed = true
					break
				}
			}
			if !allowed {
				t.Errorf("prep/%s imports forbidden package: %s", file, importPath)
			}
		}
	}
}
