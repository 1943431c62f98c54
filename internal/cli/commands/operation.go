package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/codec"
	"github.com/leapstack-labs/leapprep/internal/registry"
	"github.com/leapstack-labs/leapprep/pkg/core"
)

// NewGroupCommand creates the parent command for one operation group.
func NewGroupCommand(g registry.Group, ops []*registry.Operation) *cobra.Command {
	cmd := &cobra.Command{
		Use:   g.Name,
		Short: g.Summary,
		Long:  g.Summary + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	for _, op := range ops {
		cmd.AddCommand(NewOperationCommand(op))
	}
	return cmd
}

// NewOperationCommand creates the command that runs a single operation.
func NewOperationCommand(op *registry.Operation) *cobra.Command {
	cmd := &cobra.Command{
		Use:     fmt.Sprintf("%s %s", op.Name, op.Input),
		Aliases: op.Aliases,
		Short:   op.Summary,
		Long:    operationLong(op),
		Example: "  " + op.Example,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return invalidInputf("%s expects exactly one %s argument, got %d", op.Path(), op.Input, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, op, args[0])
		},
	}
	addParamFlags(cmd.Flags(), op.Params)
	return cmd
}

func operationLong(op *registry.Operation) string {
	var sb strings.Builder
	sb.WriteString(op.Description)
	sb.WriteString("\n\n")
	switch op.Input {
	case registry.InputText:
		sb.WriteString("TEXT is a plain string argument.")
	default:
		sb.WriteString("VALUES is a JSON array, for example '[1, 2, null]'.")
	}
	return sb.String()
}

func runOperation(cmd *cobra.Command, op *registry.Operation, arg string) error {
	cmdCtx := NewCommandContext(cmd)
	logger := cmdCtx.Logger.With("op", op.Path())

	inv, err := decodeInput(op, arg)
	if err != nil {
		return err
	}
	inv.Params, err = resolveParams(cmd.Flags(), cmdCtx.Cfg, op.Params)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := apply(cmd.Context(), op, inv)
	if err != nil {
		logger.Debug("operation failed", "error", err)
		return err
	}
	logger.Debug("operation complete",
		"input_len", inputLen(op, inv),
		"output_len", valueLen(result),
		"duration", time.Since(start))

	return cmdCtx.Renderer.Result(result)
}

func decodeInput(op *registry.Operation, arg string) (registry.Invocation, error) {
	if op.Input == registry.InputText {
		return registry.Invocation{Text: arg}, nil
	}
	values, err := codec.DecodeArray(arg)
	if err != nil {
		return registry.Invocation{}, invalidInputf("VALUES must be a valid JSON array: %w", err)
	}
	return registry.Invocation{Values: values}, nil
}

// apply runs the operation, converting errors and panics into ErrTransform.
func apply(ctx context.Context, op *registry.Operation, inv registry.Invocation) (result core.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = core.Value{}
			err = transformErrorf("%s: unexpected failure: %v", op.Path(), r)
		}
	}()

	result, err = op.Apply(ctx, inv)
	if err != nil {
		return core.Value{}, transformErrorf("%s: %w", op.Path(), err)
	}
	return result, nil
}

func inputLen(op *registry.Operation, inv registry.Invocation) int {
	if op.Input == registry.InputText {
		return len(inv.Text)
	}
	return len(inv.Values)
}

func valueLen(v core.Value) int {
	if s, ok := v.AsText(); ok {
		return len(s)
	}
	return v.Len()
}
