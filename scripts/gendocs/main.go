// Package main provides a generator that extracts CLI and operation metadata
// from LeapPrep source code and generates markdown documentation.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=cli -outdir=docs/cli
//	go run ./scripts/gendocs -gen=operations -outdir=docs/operations
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: cli, operations, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults based on gen type)")
)

func main() {
	flag.Parse()

	validGenFlags := map[string]bool{"cli": true, "operations": true, "all": true}
	if !validGenFlags[*genFlag] {
		log.Fatalf("unknown -gen value: %s (use: cli, operations, all)", *genFlag)
	}

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}

	log.Printf("Project root: %s", projectRoot)

	switch *genFlag {
	case "cli":
		if err := generateCLIDocs(outDir(projectRoot, "cli")); err != nil {
			log.Fatalf("failed to generate CLI docs: %v", err)
		}

	case "operations":
		if err := generateOperationDocs(outDir(projectRoot, "operations")); err != nil {
			log.Fatalf("failed to generate operation docs: %v", err)
		}

	case "all":
		if err := generateCLIDocs(filepath.Join(projectRoot, "docs", "cli")); err != nil {
			log.Fatalf("failed to generate CLI docs: %v", err)
		}
		if err := generateOperationDocs(filepath.Join(projectRoot, "docs", "operations")); err != nil {
			log.Fatalf("failed to generate operation docs: %v", err)
		}
	}

	log.Println("Done!")
}

func outDir(projectRoot, kind string) string {
	if *outDirFlag != "" {
		return *outDirFlag
	}
	return filepath.Join(projectRoot, "docs", kind)
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
