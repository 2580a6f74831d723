package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newProtectCmd())
}

func newProtectCmd() *cobra.Command {
	var (
		pid  uint32
		size uint64
		prot uint32
	)
	cmd := &cobra.Command{
		Use:   "protect <address>",
		Short: "Change page protection of a memory region",
		Long: `The protect command applies new page protection flags to a region of
the target process, e.g. 0x04 for PAGE_READWRITE or 0x20 for
PAGE_EXECUTE_READ.

Example:
  memctl protect 0x7ff6a3b20000 --pid 4312 --len 4096 --flags 0x04`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProtect(args[0], pid, uintptr(size), prot)
		},
	}
	cmd.Flags().Uint32Var(&pid, "pid", 0, "Target process ID (0 = this process)")
	cmd.Flags().Uint64Var(&size, "len", 4096, "Number of bytes to reprotect")
	cmd.Flags().Uint32Var(&prot, "flags", 0x04, "New protection flags")
	return cmd
}

func runProtect(addrArg string, pid uint32, size uintptr, prot uint32) error {
	addr, err := parseAddr(addrArg)
	if err != nil {
		return err
	}

	v, closeTarget, err := targetView(pid, addr, size)
	if err != nil {
		return err
	}
	defer closeTarget()

	if !v.Protect(prot) {
		return fmt.Errorf("reprotect of %#x+%d failed", addr, size)
	}
	printVerbose("Applied flags %#x to %#x+%d\n", prot, addr, size)
	return nil
}
