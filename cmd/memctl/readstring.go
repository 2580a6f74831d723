package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStringCmd())
}

func newStringCmd() *cobra.Command {
	var (
		pid  uint32
		max  uint64
		wide bool
	)
	cmd := &cobra.Command{
		Use:   "string <address>",
		Short: "Extract a NUL-terminated string from a target process",
		Long: `The string command reads a C string (or, with --wide, a UTF-16
string) at the given address. The scan never runs past --max bytes; a
foreign region with no terminator in range prints nothing.

Example:
  memctl string 0x7ff6a3b20000 --pid 4312 --max 512 --wide`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runString(args[0], pid, uintptr(max), wide)
		},
	}
	cmd.Flags().Uint32Var(&pid, "pid", 0, "Target process ID (0 = this process)")
	cmd.Flags().Uint64Var(&max, "max", 260, "Maximum bytes to scan for a terminator")
	cmd.Flags().BoolVar(&wide, "wide", false, "Decode as UTF-16LE")
	return cmd
}

func runString(addrArg string, pid uint32, max uintptr, wide bool) error {
	addr, err := parseAddr(addrArg)
	if err != nil {
		return err
	}

	v, closeTarget, err := targetView(pid, addr, max)
	if err != nil {
		return err
	}
	defer closeTarget()

	var s string
	if wide {
		s = v.ReadWideString()
	} else {
		s = v.ReadString()
	}
	if s == "" {
		printVerbose("No terminated string within %d bytes at %#x\n", max, addr)
		return nil
	}
	fmt.Println(s)
	return nil
}
