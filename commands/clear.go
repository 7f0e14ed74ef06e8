package commands

import (
	"fmt"

	"github.com/tabsh/tabsh/core/proc"
)

// Clear clears the terminal screen.
func Clear(p *proc.Proc) int {
	if p.PTY.IsPTY {
		// CSI 2J clears the screen, CSI H homes the cursor.
		fmt.Fprint(p.Stdout, "\033[2J\033[H")
	}
	return 0
}

var _ ProcessFunc = Clear

func init() {
	mustAddCommand("clear", Clear)
}
