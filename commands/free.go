package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/tabsh/tabsh/core/proc"
	"github.com/tabsh/tabsh/core/table"
)

// Free displays the amount of free and used system memory.
func Free(p *proc.Proc) int {
	cmd := &SimpleCommand{
		Use:   "free [OPTION]...",
		Short: "Display amount of free and used memory in the system.",

		// Never bail, even if args are bad.
		NeverBail: true,
	}

	humanSize := cmd.Flags().BoolLong("human-readable", 'h', "print human readable sizes")
	cmd.ShowHelp = cmd.Flags().BoolLong("help", '?', "show help and exit")

	return cmd.Run(p, func() int {
		lookup := p.Memory
		if lookup == nil {
			lookup = SystemMemory
		}
		info, err := lookup()
		if err != nil {
			fmt.Fprintf(p.Stderr, "free: %v\n", err)
			return 1
		}

		format := func(bytes uint64) string {
			if *humanSize {
				return table.FormatSize(int64(bytes))
			}
			return fmt.Sprintf("%d", bytes/1024)
		}

		tw := tabwriter.NewWriter(p.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "\ttotal\tused\tfree\tavailable\t")
		fmt.Fprintf(tw, "Mem:\t%s\t%s\t%s\t%s\t\n",
			format(info.Total), format(info.Used), format(info.Free), format(info.Available))
		tw.Flush()
		return 0
	})
}

var _ ProcessFunc = Free

func init() {
	mustAddCommand("free", Free)
}
