// Package schema holds the static grammar for tabsh's table pipelines:
// which columns each producing command exposes, and which argument shapes
// each filter stage accepts. The registry is built once at startup and is
// read-only afterwards, so it is safe to share without locking.
package schema

import "sort"

// Semantic is the domain meaning of a column, independent of the runtime
// cell variant. It selects comparison rules and drives completion.
type Semantic int

const (
	Name Semantic = iota
	Size
	Kind
	Date
	Identifier
	Memory
	Count
	Generic
)

func (s Semantic) String() string {
	switch s {
	case Name:
		return "name"
	case Size:
		return "size"
	case Kind:
		return "kind"
	case Date:
		return "date"
	case Identifier:
		return "identifier"
	case Memory:
		return "memory"
	case Count:
		return "count"
	default:
		return "generic"
	}
}

// Column pairs a display name with its semantic type.
type Column struct {
	Name string
	Sem  Semantic
}

// Role classifies one argument position of a filter stage.
type Role int

const (
	// RoleField names a column of the running table.
	RoleField Role = iota
	// RoleOperator is a relational operator (>, <, >=, <=, ==).
	RoleOperator
	// RoleLiteral is a free literal parsed against the column type.
	RoleLiteral
	// RoleDirection is a sort direction (asc or desc).
	RoleDirection
	// RolePattern is a free-text substring.
	RolePattern
)

// Arg describes one argument position.
type Arg struct {
	Role Role
	// Allow restricts RoleField positions to columns with these semantic
	// types. Empty means any column.
	Allow []Semantic
	// Optional positions may be omitted, along with everything after them.
	Optional bool
}

// Stage is the ordered argument shape of one filter stage.
type Stage struct {
	Name string
	Args []Arg
}

// MinArgs is the number of leading non-optional argument positions.
func (s Stage) MinArgs() int {
	n := 0
	for _, a := range s.Args {
		if a.Optional {
			break
		}
		n++
	}
	return n
}

// Registry is the immutable pipeline grammar. Build it once with
// NewRegistry and pass it by reference into the executor and the
// completion subsystem.
type Registry struct {
	sources       map[string][]Column
	stages        map[string]Stage
	defaultSource []Column
}

// Every semantic type except Name; the where stage filters on value-like
// columns while contains handles the name-like ones.
var valueSemantics = []Semantic{Size, Kind, Date, Identifier, Memory, Count, Generic}

// NewRegistry builds the static grammar for the built-in producers and
// the five filter stages.
func NewRegistry() *Registry {
	dirColumns := []Column{
		{Name: "Name", Sem: Name},
		{Name: "Size", Sem: Size},
		{Name: "Kind", Sem: Kind},
		{Name: "Date", Sem: Date},
	}

	return &Registry{
		defaultSource: dirColumns,
		sources: map[string][]Column{
			"ls": dirColumns,
			"ps": {
				{Name: "PID", Sem: Identifier},
				{Name: "Name", Sem: Name},
				{Name: "Memory", Sem: Memory},
				{Name: "Threads", Sem: Count},
			},
		},
		stages: map[string]Stage{
			"where": {Name: "where", Args: []Arg{
				{Role: RoleField, Allow: valueSemantics},
				{Role: RoleOperator},
				{Role: RoleLiteral},
			}},
			"sort-by": {Name: "sort-by", Args: []Arg{
				{Role: RoleField},
				{Role: RoleDirection, Optional: true},
			}},
			"select": {Name: "select", Args: []Arg{
				{Role: RoleField},
				{Role: RoleField, Optional: true},
				{Role: RoleField, Optional: true},
				{Role: RoleField, Optional: true},
			}},
			"contains": {Name: "contains", Args: []Arg{
				{Role: RoleField, Allow: []Semantic{Name}},
				{Role: RolePattern, Optional: true},
			}},
			"limit": {Name: "limit", Args: []Arg{
				{Role: RoleLiteral},
			}},
		},
	}
}

// Source returns the column schema of a producing command. Unregistered
// producers fall back to the generic directory-style schema so completion
// still has something to offer.
func (r *Registry) Source(command string) []Column {
	if cols, ok := r.sources[command]; ok {
		return cols
	}
	return r.defaultSource
}

// HasSource reports whether the command has a registered column schema.
func (r *Registry) HasSource(command string) bool {
	_, ok := r.sources[command]
	return ok
}

// Stage returns the argument shape of a filter stage.
func (r *Registry) Stage(name string) (Stage, bool) {
	s, ok := r.stages[name]
	return s, ok
}

// StageNames returns the registered stage names, sorted.
func (r *Registry) StageNames() []string {
	names := make([]string, 0, len(r.stages))
	for name := range r.stages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SourceNames returns the registered producer names, sorted.
func (r *Registry) SourceNames() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FieldCandidates returns the columns of the source that an Arg in a
// RoleField position may name.
func FieldCandidates(source []Column, arg Arg) []Column {
	if len(arg.Allow) == 0 {
		return source
	}
	var out []Column
	for _, col := range source {
		for _, sem := range arg.Allow {
			if col.Sem == sem {
				out = append(out, col)
				break
			}
		}
	}
	return out
}
