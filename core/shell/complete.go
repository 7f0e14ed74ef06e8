package shell

import (
	"sort"
	"strings"
	"unicode"

	"github.com/tabsh/tabsh/commands"
	"github.com/tabsh/tabsh/core/schema"
	"github.com/tabsh/tabsh/core/table"
)

// Completer offers grammar-driven suggestions at the readline prompt:
// command names at the start of the line, stage names after a pipe, and
// fields, operators or directions according to the stage's argument
// shape. It only reads the immutable schema registry, so a single
// instance is safe across sessions.
type Completer struct {
	registry *schema.Registry
}

func NewCompleter(registry *schema.Registry) *Completer {
	return &Completer{registry: registry}
}

// Do implements readline.AutoCompleter. Candidates are returned as the
// text remaining after the word under the cursor.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	segment := text
	afterPipe := false
	if i := strings.LastIndex(text, "|"); i >= 0 {
		segment = text[i+1:]
		afterPipe = true
	}

	words := strings.Fields(segment)
	word := ""
	if len(words) > 0 && !endsInSpace(segment) {
		word = words[len(words)-1]
		words = words[:len(words)-1]
	}

	var candidates []string
	switch {
	case !afterPipe && len(words) == 0:
		candidates = c.commandNames()
	case afterPipe && len(words) == 0:
		candidates = c.registry.StageNames()
	case afterPipe:
		candidates = c.stageArgCandidates(text, words)
	}

	var out [][]rune
	for _, cand := range candidates {
		if strings.HasPrefix(cand, word) && cand != word {
			out = append(out, []rune(cand[len(word):]+" "))
		}
	}
	return out, len(word)
}

// stageArgCandidates suggests values for the argument position under the
// cursor, looked up from the stage grammar. Field positions offer the
// producing command's columns, narrowed by the stage's allow-list.
func (c *Completer) stageArgCandidates(fullLine string, words []string) []string {
	stage, ok := c.registry.Stage(words[0])
	if !ok {
		return nil
	}
	argIdx := len(words) - 1
	if argIdx >= len(stage.Args) {
		return nil
	}

	switch arg := stage.Args[argIdx]; arg.Role {
	case schema.RoleField:
		var names []string
		for _, col := range schema.FieldCandidates(c.sourceColumns(fullLine), arg) {
			names = append(names, col.Name)
		}
		return names
	case schema.RoleOperator:
		return table.Ops
	case schema.RoleDirection:
		return []string{"asc", "desc"}
	default:
		return nil
	}
}

// sourceColumns resolves the column schema of the line's producing
// command, falling back to the registry's generic default.
func (c *Completer) sourceColumns(line string) []schema.Column {
	first := line
	if i := strings.Index(line, "|"); i >= 0 {
		first = line[:i]
	}
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return c.registry.Source("")
	}
	return c.registry.Source(fields[0])
}

func (c *Completer) commandNames() []string {
	var names []string
	names = append(names, c.registry.SourceNames()...)
	for name := range commands.AllCommands {
		names = append(names, name)
	}
	names = append(names, "cd", "alias", "help", "exit")
	sort.Strings(names)
	return names
}

func endsInSpace(s string) bool {
	return len(s) > 0 && unicode.IsSpace(rune(s[len(s)-1]))
}
