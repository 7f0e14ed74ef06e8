package commands

import (
	"fmt"
	"strings"

	"github.com/tabsh/tabsh/core/proc"
)

// Echo writes its arguments to standard output.
func Echo(p *proc.Proc) int {
	cmd := &SimpleCommand{
		Use:       "echo [STRING]...",
		Short:     "Display a line of text.",
		NeverBail: true,
	}

	noNewline := cmd.Flags().Bool('n', "do not output the trailing newline")

	return cmd.Run(p, func() int {
		fmt.Fprint(p.Stdout, strings.Join(cmd.Flags().Args(), " "))
		if !*noNewline {
			fmt.Fprintln(p.Stdout)
		}
		return 0
	})
}

var _ ProcessFunc = Echo

func init() {
	mustAddCommand("echo", Echo)
}
