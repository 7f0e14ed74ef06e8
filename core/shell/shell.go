// Package shell runs tabsh's interactive loop: readline with
// grammar-driven completion, prompt expansion, aliases, the in-loop
// builtins (cd, exit, alias, help) and dispatch into the pipeline
// executor.
package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/tabsh/tabsh/commands"
	"github.com/tabsh/tabsh/core/config"
	"github.com/tabsh/tabsh/core/pipeline"
	"github.com/tabsh/tabsh/core/proc"
	"github.com/tabsh/tabsh/core/schema"
)

// Options configures a Shell. Zero values fall back to the host OS:
// real filesystem, current directory, ambient environment.
type Options struct {
	Config   *config.Config
	Registry *schema.Registry

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	FS  afero.Fs
	Dir string

	Username string
	Hostname string
	Home     string

	// HistoryPath persists readline history between sessions when set.
	HistoryPath string

	PTY proc.PTY
}

// Shell is one interactive session.
type Shell struct {
	cfg      *config.Config
	registry *schema.Registry
	exec     *pipeline.Executor
	readline *readline.Instance
	proc     *proc.Proc

	username string
	hostname string
	home     string
	aliases  map[string]string

	// Set to true to quit the shell.
	Quit bool
}

// New builds a shell session around the given streams.
func New(opts Options) (*Shell, error) {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Registry == nil {
		opts.Registry = schema.NewRegistry()
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "/"
		}
		opts.Dir = wd
	}
	if opts.Username == "" {
		opts.Username = os.Getenv("USER")
	}
	if opts.Hostname == "" {
		opts.Hostname, _ = os.Hostname()
	}
	if opts.Home == "" {
		opts.Home = os.Getenv("HOME")
	}

	s := &Shell{
		cfg:      opts.Config,
		registry: opts.Registry,
		username: opts.Username,
		hostname: opts.Hostname,
		home:     opts.Home,
		aliases:  map[string]string{},
	}
	for name, expansion := range opts.Config.Aliases {
		s.aliases[name] = expansion
	}

	s.proc = &proc.Proc{
		Dir:       opts.Dir,
		FS:        opts.FS,
		Stdin:     opts.Stdin,
		Stdout:    opts.Stdout,
		Stderr:    opts.Stderr,
		PTY:       opts.PTY,
		Processes: commands.SystemProcesses,
		Memory:    commands.SystemMemory,
	}

	s.exec = &pipeline.Executor{
		Grammar: opts.Registry,
		Producers: func(name string) pipeline.ProducerFunc {
			if fn := commands.ResolveProducer(name); fn != nil {
				return pipeline.ProducerFunc(fn)
			}
			return nil
		},
		Plain: s.runPlain,
	}

	rlCfg := &readline.Config{
		Stdin:        readline.NewCancelableStdin(io.NopCloser(opts.Stdin)),
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
		AutoComplete: NewCompleter(opts.Registry),
		HistoryFile:  opts.HistoryPath,
		HistoryLimit: opts.Config.HistorySize,
	}
	if opts.PTY.Width > 0 {
		rlCfg.FuncGetWidth = func() int { return s.proc.PTY.Width }
		rlCfg.FuncIsTerminal = func() bool { return s.proc.PTY.IsPTY }
	}
	if err := rlCfg.Init(); err != nil {
		return nil, err
	}
	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}
	s.readline = rl

	return s, nil
}

// SetWindowWidth updates the terminal width, e.g. on SIGWINCH or an SSH
// window-change request.
func (s *Shell) SetWindowWidth(width int) {
	s.proc.PTY.Width = width
}

// Run reads and interprets lines until exit or EOF.
func (s *Shell) Run() int {
	defer s.readline.Close()

	for !s.Quit {
		s.readline.SetPrompt(s.prompt())
		line, err := s.readline.Readline()

		switch {
		case err == io.EOF:
			return 0 // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		case len(strings.TrimSpace(line)) == 0:
			continue

		default:
			s.Interpret(line)
		}
	}
	return 0
}

// Interpret runs one command line and returns its exit code.
func (s *Shell) Interpret(line string) int {
	line = s.expandAlias(strings.TrimSpace(line))

	if handled, code := s.builtin(line); handled {
		return code
	}
	return s.exec.Execute(s.proc, line)
}

// expandAlias substitutes the first token if it names an alias. Expansion
// happens once; aliases don't recurse.
func (s *Shell) expandAlias(line string) string {
	name, rest, _ := strings.Cut(line, " ")
	expansion, ok := s.aliases[name]
	if !ok {
		return line
	}
	if rest == "" {
		return expansion
	}
	return expansion + " " + rest
}

// builtin handles commands that must run inside the shell itself.
func (s *Shell) builtin(line string) (handled bool, code int) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true, 0
	}

	switch fields[0] {
	case "exit":
		s.Quit = true
		return true, 0
	case "cd":
		return true, s.cd(fields)
	case "alias":
		return true, s.alias(fields)
	case "help":
		return true, s.help()
	}
	return false, 0
}

func (s *Shell) cd(args []string) int {
	var target string
	switch len(args) {
	case 1:
		target = s.home
	case 2:
		target = s.proc.Abs(args[1])
	default:
		fmt.Fprintf(s.proc.Stderr, "cd: too many arguments\n")
		return 1
	}

	ok, err := afero.DirExists(s.proc.FS, target)
	if err != nil || !ok {
		fmt.Fprintf(s.proc.Stderr, "cd: %s: no such directory\n", target)
		return 1
	}
	s.proc.Dir = target
	return 0
}

func (s *Shell) alias(args []string) int {
	switch len(args) {
	case 1:
		names := make([]string, 0, len(s.aliases))
		for name := range s.aliases {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(s.proc.Stdout, "alias %s='%s'\n", name, s.aliases[name])
		}
		return 0
	default:
		// alias name='expansion', possibly split across tokens.
		def := strings.TrimSpace(strings.TrimPrefix(strings.Join(args[1:], " "), " "))
		name, expansion, found := strings.Cut(def, "=")
		if !found || name == "" {
			fmt.Fprintf(s.proc.Stderr, "alias: usage: alias [name=value]\n")
			return 1
		}
		s.aliases[name] = strings.Trim(expansion, `'"`)
		return 0
	}
}

func (s *Shell) help() int {
	w := s.proc.Stdout

	fmt.Fprintln(w, "Table producers:")
	for _, name := range s.registry.SourceNames() {
		var cols []string
		for _, col := range s.registry.Source(name) {
			cols = append(cols, col.Name)
		}
		fmt.Fprintf(w, "  %-10s -> %s\n", name, strings.Join(cols, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filter stages:")
	for _, name := range s.registry.StageNames() {
		stage, _ := s.registry.Stage(name)
		fmt.Fprintf(w, "  %s %s\n", name, stageUsage(stage))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	var names []string
	for name := range commands.AllCommands {
		names = append(names, name)
	}
	names = append(names, "cd", "alias", "help", "exit")
	sort.Strings(names)
	fmt.Fprintf(w, "  %s\n", strings.Join(names, " "))
	return 0
}

func stageUsage(stage schema.Stage) string {
	var parts []string
	for _, arg := range stage.Args {
		var part string
		switch arg.Role {
		case schema.RoleField:
			part = "<field>"
		case schema.RoleOperator:
			part = "<op>"
		case schema.RoleLiteral:
			part = "<value>"
		case schema.RoleDirection:
			part = "asc|desc"
		case schema.RolePattern:
			part = "<substring>"
		}
		if arg.Optional {
			part = "[" + part + "]"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

var promptColor = color.New(color.FgGreen, color.Bold)

// prompt expands the configured prompt: \u user, \h host, \w working
// directory with the home prefix collapsed to ~, \$ the prompt sigil.
// User and host are colorized on interactive terminals.
func (s *Shell) prompt() string {
	prompt := s.cfg.Prompt
	if prompt == "" {
		prompt = config.DefaultPrompt
	}

	pwd := s.proc.Dir
	if s.home != "" && strings.HasPrefix(pwd, s.home) {
		pwd = "~" + strings.TrimPrefix(pwd, s.home)
	}

	user, host := s.username, s.hostname
	if s.proc.PTY.IsPTY {
		user = promptColor.Sprint(user)
		host = promptColor.Sprint(host)
	}

	prompt = strings.ReplaceAll(prompt, `\u`, user)
	prompt = strings.ReplaceAll(prompt, `\h`, host)
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)
	prompt = strings.ReplaceAll(prompt, `\$`, "$")
	return prompt
}

// runPlain executes a non-table command: a plain builtin when one is
// registered, otherwise an external program through the host launcher.
func (s *Shell) runPlain(p *proc.Proc, argv []string) (bool, int) {
	if fn, ok := commands.AllCommands[argv[0]]; ok {
		return true, fn(p)
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return false, 127
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Dir = p.Dir
	cmd.Stdin = p.Stdin
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(p.Stderr, "tabsh: %s: %v\n", argv[0], err)
		return true, 1
	}
	return true, 0
}
