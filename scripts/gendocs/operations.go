package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/leapprep/internal/cli/commands"
	_ "github.com/leapstack-labs/leapprep/internal/ops"
	"github.com/leapstack-labs/leapprep/internal/registry"
)

// generateOperationDocs writes an operation catalogue and one page per group.
func generateOperationDocs(outDir string) error {
	log.Printf("Generating operation docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	reg := registry.Default

	if err := os.WriteFile(filepath.Join(outDir, "index.md"), operationIndex(reg).Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	log.Printf("  Generated index.md")

	for _, g := range reg.Groups() {
		w := groupPage(g, reg.ByGroup(g.Name))
		if err := os.WriteFile(filepath.Join(outDir, g.Name+".md"), w.Bytes(), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", g.Name, err)
		}
		log.Printf("  Generated %s.md", g.Name)
	}

	return nil
}

func operationIndex(reg *registry.Registry) *MarkdownWriter {
	w := NewMarkdownWriter()

	w.Frontmatter("Operations", "Preprocessing operations available in LeapPrep")
	w.GeneratedMarker()

	w.Header(1, "Operations")
	w.Paragraph(fmt.Sprintf("LeapPrep ships **%d operations** in **%d groups**.", reg.Count(), len(reg.Groups())))

	var rows [][]string
	for _, info := range commands.Describe(reg) {
		link := fmt.Sprintf("[%s](/operations/%s#%s)", InlineCode(info.Group+" "+info.Name), info.Group, info.Name)
		rows = append(rows, []string{link, info.Input, cleanDescription(info.Summary)})
	}
	w.Table([]string{"Operation", "Input", "Summary"}, rows)

	w.Header(2, "Parameter Defaults")
	w.Paragraph("Every parameter can be given a project-wide default under " + InlineCode("defaults") +
		" in " + InlineCode("leapprep.yaml") + ", using the parameter name in snake_case. " +
		"An explicit flag always wins over the configured default.")
	w.CodeBlock("yaml", `defaults:
  new_min: 0.0
  new_max: 1.0
  fill_value: 0
  stopwords: [the, a]
  seed: 42`)

	return w
}

func groupPage(g registry.Group, ops []*registry.Operation) *MarkdownWriter {
	w := NewMarkdownWriter()

	w.Frontmatter(g.Name, g.Summary)
	w.GeneratedMarker()

	w.Header(1, g.Name)
	w.Paragraph(g.Summary + ".")

	for _, op := range ops {
		w.Header(2, op.Name)
		w.Paragraph(op.Description)

		w.CodeBlock("bash", fmt.Sprintf("leapprep %s %s [options]", op.Path(), op.Input))

		if len(op.Aliases) > 0 {
			aliases := make([]string, len(op.Aliases))
			for i, a := range op.Aliases {
				aliases[i] = InlineCode(a)
			}
			w.Paragraph(Bold("Aliases") + ": " + strings.Join(aliases, ", "))
		}

		if len(op.Params) > 0 {
			var rows [][]string
			for _, p := range op.Params {
				def := ""
				switch {
				case p.Required:
					def = "required"
				case p.HasDefault():
					def = InlineCode(p.Default.Repr())
				}
				rows = append(rows, []string{InlineCode("--" + p.Name), p.Kind.String(), def, cleanDescription(p.Usage)})
			}
			w.Table([]string{"Option", "Type", "Default", "Description"}, rows)
		}

		if op.Example != "" {
			w.CodeBlock("bash", op.Example)
		}
	}

	return w
}
