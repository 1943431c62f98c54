package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/cli/output"
	"github.com/leapstack-labs/leapprep/internal/registry"
)

// NewListCommand creates the list command.
func NewListCommand(reg *registry.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all available operations",
		Long: `List every registered operation with its group, aliases, parameters and summary.

Use --output to choose the format: text or table (a table), json, yaml`,
		Example: `  # List operations as a table
  leapprep list

  # List operations as JSON
  leapprep list --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, reg)
		},
	}

	return cmd
}

// OperationInfo is the structured form of one listed operation.
type OperationInfo struct {
	Group   string      `json:"group" yaml:"group"`
	Name    string      `json:"name" yaml:"name"`
	Aliases []string    `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Input   string      `json:"input" yaml:"input"`
	Summary string      `json:"summary" yaml:"summary"`
	Params  []ParamInfo `json:"params,omitempty" yaml:"params,omitempty"`
}

// ParamInfo is the structured form of one operation parameter.
type ParamInfo struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Default  string `json:"default,omitempty" yaml:"default,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// Describe builds the listing for every operation in reg.
func Describe(reg *registry.Registry) []OperationInfo {
	all := reg.All()
	infos := make([]OperationInfo, 0, len(all))
	for _, op := range all {
		info := OperationInfo{
			Group:   op.Group,
			Name:    op.Name,
			Aliases: op.Aliases,
			Input:   op.Input.String(),
			Summary: op.Summary,
		}
		for _, p := range op.Params {
			pi := ParamInfo{Name: p.Name, Type: p.Kind.String(), Required: p.Required}
			if p.HasDefault() {
				pi.Default = p.Default.Repr()
			}
			info.Params = append(info.Params, pi)
		}
		infos = append(infos, info)
	}
	return infos
}

func runList(cmd *cobra.Command, reg *registry.Registry) error {
	r := NewCommandContext(cmd).Renderer
	infos := Describe(reg)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(map[string]any{"operations": infos})
	case output.ModeYAML:
		return r.YAML(map[string]any{"operations": infos})
	default:
		listTable(r, infos)
		return nil
	}
}

func listTable(r *output.Renderer, infos []OperationInfo) {
	t := r.NewTable()
	t.SetTitle(r.Styles().Bold.Render(fmt.Sprintf("Operations (%d total)", len(infos))))
	t.AppendHeader(table.Row{"Group", "Operation", "Aliases", "Parameters", "Summary"})
	for _, info := range infos {
		t.AppendRow(table.Row{
			info.Group,
			info.Name + " " + info.Input,
			strings.Join(info.Aliases, ", "),
			formatParams(info.Params),
			info.Summary,
		})
	}
	t.Render()
}

func formatParams(params []ParamInfo) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		s := "--" + p.Name
		switch {
		case p.Required:
			s += " (required)"
		case p.Default != "":
			s += "=" + p.Default
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
