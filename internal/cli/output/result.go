package output

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/leapprep/internal/codec"
	"github.com/leapstack-labs/leapprep/pkg/core"
)

// resultKey is the top-level key of structured results.
const resultKey = "result"

// Result writes an operation result in the effective mode.
func (r *Renderer) Result(v core.Value) error {
	switch r.EffectiveMode() {
	case ModeJSON:
		data, err := codec.MarshalJSON(resultKey, v)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		r.Println(string(data))
	case ModeYAML:
		data, err := codec.MarshalYAML(resultKey, v)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		r.Printf("%s", data)
	case ModeTable:
		r.resultTable(v)
	default:
		r.Println(r.styles.Label.Render("Result:") + " " + FormatResult(v))
	}
	return nil
}

// FormatResult renders v as it appears after "Result: ". Text is printed
// verbatim; everything else uses Python literal syntax.
func FormatResult(v core.Value) string {
	if s, ok := v.AsText(); ok {
		return s
	}
	return v.Repr()
}

func (r *Renderer) resultTable(v core.Value) {
	t := r.NewTable()
	t.AppendHeader(table.Row{"#", "Value", "Kind"})

	items, ok := v.AsList()
	if !ok {
		items = []core.Value{v}
	}
	for i, item := range items {
		t.AppendRow(table.Row{strconv.Itoa(i), FormatResult(item), item.Kind().String()})
	}
	t.SetCaption("%d item(s)", len(items))
	t.Render()
}

// NewTable returns a go-pretty table writer mirrored to standard output.
func (r *Renderer) NewTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	return t
}
