package commands

import (
	"fmt"

	"github.com/tabsh/tabsh/core/proc"
)

// Pwd prints the working directory.
func Pwd(p *proc.Proc) int {
	cmd := &SimpleCommand{
		Use:       "pwd",
		Short:     "Print the name of the current working directory.",
		NeverBail: true,
	}

	return cmd.Run(p, func() int {
		fmt.Fprintln(p.Stdout, p.Dir)
		return 0
	})
}

var _ ProcessFunc = Pwd

func init() {
	mustAddCommand("pwd", Pwd)
}
