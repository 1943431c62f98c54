package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/leapstack-labs/leapprep/internal/cli"
	"github.com/leapstack-labs/leapprep/internal/cli/commands"
)

// generateCLIDocs generates CLI documentation from Cobra commands.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	// Create output directory
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Get root command
	rootCmd := cli.NewRootCmd()

	// Generate index page
	if err := generateCLIIndex(rootCmd, outDir); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	log.Printf("  Generated index.md")

	// Generate page for each command and operation
	return walkCommands(rootCmd, func(cmd *cobra.Command) error {
		if err := generateCommandPage(cmd, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", commandPath(cmd), err)
		}
		log.Printf("  Generated %s.md", pageName(cmd))
		return nil
	})
}

// walkCommands visits every documented command below root, depth first.
func walkCommands(root *cobra.Command, fn func(*cobra.Command) error) error {
	for _, cmd := range root.Commands() {
		if !documented(cmd) {
			continue
		}
		if err := fn(cmd); err != nil {
			return err
		}
		if err := walkCommands(cmd, fn); err != nil {
			return err
		}
	}
	return nil
}

func documented(cmd *cobra.Command) bool {
	return !cmd.Hidden && cmd.Name() != "help" && cmd.Name() != "__complete"
}

// commandPath is the command path without the binary name, e.g. "numeric clip".
func commandPath(cmd *cobra.Command) string {
	return strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()+" ")
}

// pageName is the file name (without extension) of a command page.
func pageName(cmd *cobra.Command) string {
	return strings.ReplaceAll(commandPath(cmd), " ", "-")
}

// generateCLIIndex generates the CLI overview page.
func generateCLIIndex(rootCmd *cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	// Frontmatter
	w.Frontmatter("CLI Reference", "Command-line interface reference for LeapPrep")
	w.GeneratedMarker()

	// Title and intro
	w.Header(1, "CLI Reference")
	w.Paragraph("LeapPrep provides a command-line interface for cleaning, numeric, text and structural preprocessing of JSON arrays and text.")

	// Installation
	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/leapprep/cmd/leapprep@latest")

	// Basic usage
	w.Header(2, "Basic Usage")
	w.CodeBlock("bash", "leapprep <group> <operation> <VALUES|TEXT> [options]")

	// Commands table
	w.Header(2, "Commands")

	headers := []string{"Command", "Description"}
	var rows [][]string

	for _, cmd := range rootCmd.Commands() {
		if !documented(cmd) {
			continue
		}
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), pageName(cmd))
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}

	w.Table(headers, rows)

	// Global flags
	w.Header(2, "Global Options")
	w.Paragraph("These flags are available for all commands:")
	writeFlagsTable(w, rootCmd.PersistentFlags())

	// Environment variables
	w.Header(2, "Environment Variables")
	w.Paragraph("LeapPrep reads these environment variables:")

	envHeaders := []string{"Variable", "Description"}
	envRows := [][]string{
		{InlineCode("LEAPPREP_OUTPUT"), "Output format (auto, text, json, yaml, table)"},
		{InlineCode("LEAPPREP_VERBOSE"), "Enable debug logging"},
		{InlineCode("LEAPPREP_LOG_LEVEL"), "Log level (debug, info, warn, error)"},
		{InlineCode("LEAPPREP_LOG_FORMAT"), "Log format (text, json)"},
		{InlineCode("LEAPPREP_DEFAULTS__<PARAM>"), "Default for an operation parameter, e.g. " + InlineCode("LEAPPREP_DEFAULTS__NEW_MAX=10")},
	}
	w.Table(envHeaders, envRows)

	w.Paragraph("Command-line flags take precedence over environment variables, which take precedence over " + InlineCode("leapprep.yaml") + ".")

	// Exit codes
	w.Header(2, "Exit Codes")
	exitHeaders := []string{"Code", "Meaning"}
	exitRows := [][]string{
		{InlineCode(fmt.Sprint(commands.ExitOK)), "Success"},
		{InlineCode(fmt.Sprint(commands.ExitFailure)), "Transform or configuration error (check stderr for details)"},
		{InlineCode(fmt.Sprint(commands.ExitInvalidInput)), "Invalid input: malformed VALUES, bad option values, missing required options"},
	}
	w.Table(exitHeaders, exitRows)

	// Getting help
	w.Header(2, "Getting Help")
	w.CodeBlock("bash", `# General help
leapprep help
leapprep --help

# Group and operation help
leapprep numeric --help
leapprep numeric clip --help`)

	// Write file
	filename := filepath.Join(outDir, "index.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

// generateCommandPage generates documentation for a single command.
func generateCommandPage(cmd *cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	// Frontmatter
	w.Frontmatter(commandPath(cmd), cmd.Short)
	w.GeneratedMarker()

	// Title and long description
	w.Header(1, commandPath(cmd))
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	// Usage
	w.Header(2, "Usage")
	useLine := cmd.UseLine()
	if cmd.HasSubCommands() {
		useLine = fmt.Sprintf("leapprep %s <operation> [options]", commandPath(cmd))
	} else if !strings.HasPrefix(useLine, "leapprep") {
		useLine = "leapprep " + useLine
	}
	w.CodeBlock("bash", useLine)

	// Aliases
	if len(cmd.Aliases) > 0 {
		w.Header(2, "Aliases")
		var aliases []string
		for _, alias := range cmd.Aliases {
			aliases = append(aliases, InlineCode(alias))
		}
		w.BulletList(aliases)
	}

	// Subcommands
	if cmd.HasSubCommands() {
		w.Header(2, "Subcommands")
		headers := []string{"Subcommand", "Description"}
		var rows [][]string
		for _, sub := range cmd.Commands() {
			if sub.Hidden {
				continue
			}
			rows = append(rows, []string{InlineCode(sub.Name()), cleanDescription(sub.Short)})
		}
		w.Table(headers, rows)
	}

	// Local flags
	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}

	// Inherited flags from parent
	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	// Examples
	if cmd.Example != "" {
		w.Header(2, "Examples")
		// Clean up example - remove common leading whitespace
		example := cleanExample(cmd.Example)
		w.CodeBlock("bash", example)
	}

	// Write file
	filename := filepath.Join(outDir, pageName(cmd)+".md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}

// writeFlagsTable writes a table of flags.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	headers := []string{"Option", "Short", "Default", "Description"}
	var rows [][]string

	flags.VisitAll(func(f *pflag.Flag) {
		// Skip hidden flags
		if f.Hidden {
			return
		}

		option := "--" + f.Name
		short := ""
		if f.Shorthand != "" {
			short = "-" + f.Shorthand
		}

		defVal := f.DefValue
		switch {
		case defVal == "":
			// Keep empty
		case defVal == "false" || defVal == "true":
			// Keep as-is for booleans
		case f.Value.Type() == "string" && defVal != "":
			defVal = InlineCode(defVal)
		}

		desc := cleanDescription(f.Usage)

		rows = append(rows, []string{
			InlineCode(option),
			short,
			defVal,
			desc,
		})
	})

	w.Table(headers, rows)
}

// cleanExample removes common leading whitespace from example text.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")
	if len(lines) == 0 {
		return example
	}

	// Find minimum indentation (ignoring empty lines)
	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent <= 0 {
		return strings.TrimSpace(example)
	}

	// Remove common indentation
	var result []string
	for _, line := range lines {
		if len(line) >= minIndent {
			result = append(result, line[minIndent:])
		} else {
			result = append(result, strings.TrimLeft(line, " \t"))
		}
	}

	return strings.TrimSpace(strings.Join(result, "\n"))
}
