// Package registry holds the catalogue of preprocessing operations.
// Operation packages describe each operation as data (name, group, input
// shape, typed parameters, apply function) and register it from init();
// the CLI builds its command tree from whatever is registered.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/leapprep/pkg/core"
)

// Registration errors.
var (
	// ErrDuplicate is returned when a name or alias is already taken in a group.
	ErrDuplicate = errors.New("operation already registered")
	// ErrUnknownGroup is returned when an operation names an unregistered group.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrInvalidOperation is returned for descriptors missing required fields.
	ErrInvalidOperation = errors.New("invalid operation")
)

// InputKind is the shape of an operation's positional argument.
type InputKind int

// Input kinds.
const (
	// InputArray is a JSON array argument (VALUES).
	InputArray InputKind = iota
	// InputText is a plain string argument (TEXT).
	InputText
)

// String returns the argument placeholder used in usage lines.
func (k InputKind) String() string {
	if k == InputText {
		return "TEXT"
	}
	return "VALUES"
}

// ParamKind controls how a parameter's flag text is parsed.
type ParamKind int

// Parameter kinds.
const (
	// ParamFloat parses as a float64.
	ParamFloat ParamKind = iota
	// ParamInt parses as an int64.
	ParamInt
	// ParamScalar parses as any JSON value, falling back to plain text.
	ParamScalar
	// ParamArray parses as a JSON array.
	ParamArray
)

// String returns the type name shown in help and listings.
func (k ParamKind) String() string {
	switch k {
	case ParamFloat:
		return "float"
	case ParamInt:
		return "int"
	case ParamScalar:
		return "json"
	case ParamArray:
		return "json-array"
	default:
		return "unknown"
	}
}

// Param describes one named parameter of an operation.
type Param struct {
	Name     string     // Flag name, e.g. "new-min"
	Usage    string     // One-line help text
	Kind     ParamKind  // How the flag value is parsed
	Default  core.Value // Registered default; Missing means none
	Required bool       // Must come from a flag or config when true
}

// ConfigKey returns the key this parameter is read from under "defaults"
// in the config file, e.g. "new_min".
func (p Param) ConfigKey() string {
	return strings.ReplaceAll(p.Name, "-", "_")
}

// HasDefault reports whether a registered default exists.
func (p Param) HasDefault() bool {
	return p.Default.Kind() != core.KindMissing
}

// ApplyFunc runs an operation on a fully resolved invocation.
type ApplyFunc func(ctx context.Context, inv Invocation) (core.Value, error)

// Operation is a data-driven operation definition.
type Operation struct {
	Name        string    // Command name, e.g. "remove-missing"
	Group       string    // Group name, e.g. "clean"
	Aliases     []string  // Alternative command names
	Summary     string    // One-line description
	Description string    // Longer help text
	Example     string    // Example invocation(s)
	Input       InputKind // Shape of the positional argument
	Params      []Param   // Named parameters, in flag order
	Apply       ApplyFunc // The operation itself
}

// Param returns the parameter with the given name.
func (o *Operation) Param(name string) (Param, bool) {
	for _, p := range o.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Path returns "group name".
func (o *Operation) Path() string {
	return o.Group + " " + o.Name
}

// Group is a named category of operations.
type Group struct {
	Name    string
	Summary string
}

// Registry stores operations keyed by group and name.
type Registry struct {
	mu      sync.RWMutex
	groups  map[string]Group
	ops     map[string]*Operation // keyed by "group/name"
	aliases map[string]string     // "group/alias" -> "group/name"
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		groups:  make(map[string]Group),
		ops:     make(map[string]*Operation),
		aliases: make(map[string]string),
	}
}

func key(group, name string) string {
	return group + "/" + name
}

// RegisterGroup adds or replaces a group.
func (r *Registry) RegisterGroup(g Group) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups[g.Name] = g
}

// Register adds an operation. Names and aliases must be unique within the
// operation's group, and the group must already be registered.
func (r *Registry) Register(op *Operation) error {
	if op == nil || op.Name == "" || op.Group == "" || op.Apply == nil {
		return ErrInvalidOperation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[op.Group]; !ok {
		return fmt.Errorf("%w %q for %s", ErrUnknownGroup, op.Group, op.Name)
	}

	names := append([]string{op.Name}, op.Aliases...)
	for _, n := range names {
		k := key(op.Group, n)
		if _, taken := r.ops[k]; taken {
			return fmt.Errorf("%w: %s %s", ErrDuplicate, op.Group, n)
		}
		if _, taken := r.aliases[k]; taken {
			return fmt.Errorf("%w: %s %s", ErrDuplicate, op.Group, n)
		}
	}

	primary := key(op.Group, op.Name)
	r.ops[primary] = op
	for _, a := range op.Aliases {
		r.aliases[key(op.Group, a)] = primary
	}
	return nil
}

// MustRegister is Register for init() use; it panics on error.
func (r *Registry) MustRegister(op *Operation) {
	if err := r.Register(op); err != nil {
		panic(err)
	}
}

// Lookup finds an operation by group and name or alias.
func (r *Registry) Lookup(group, name string) (*Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	k := key(group, name)
	if op, ok := r.ops[k]; ok {
		return op, true
	}
	if primary, ok := r.aliases[k]; ok {
		return r.ops[primary], true
	}
	return nil, false
}

// Groups returns all registered groups sorted by name.
func (r *Registry) Groups() []Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByGroup returns the operations of one group sorted by name.
func (r *Registry) ByGroup(group string) []*Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Operation
	for _, op := range r.ops {
		if op.Group == group {
			out = append(out, op)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// All returns every operation sorted by group then name.
func (r *Registry) All() []*Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Operation, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Count returns the number of registered operations, aliases excluded.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ops)
}

// Default is the process-wide registry populated by operation packages.
var Default = New()
